// Package config describes the page element contract and timings. Documents
// are YAML; every key is optional and falls back to the storefront defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSelector is returned when a configured selector is blank.
var ErrInvalidSelector = errors.New("config: selector must not be blank")

// Selectors locate the elements each widget binds to. Card-scoped selectors
// are matched inside a product card; carousel-scoped ones inside a carousel.
type Selectors struct {
	CheckoutForm string `yaml:"checkoutForm"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Email        string `yaml:"email"`
	Address      string `yaml:"address"`

	QuantityInput string `yaml:"quantityInput"`

	Carousel     string `yaml:"carousel"`
	Slide        string `yaml:"slide"`
	CarouselPrev string `yaml:"carouselPrev"`
	CarouselNext string `yaml:"carouselNext"`

	ProductCard    string `yaml:"productCard"`
	MainImage      string `yaml:"mainImage"`
	Thumb          string `yaml:"thumb"`
	Gallery        string `yaml:"gallery"`
	AddToCart      string `yaml:"addToCart"`
	CartIcon       string `yaml:"cartIcon"`
	FlashContainer string `yaml:"flashContainer"`

	CheckoutChoice  string `yaml:"checkoutChoice"`
	LoginSection    string `yaml:"loginSection"`
	GuestSection    string `yaml:"guestSection"`
	LoginButton     string `yaml:"loginButton"`
	GuestButton     string `yaml:"guestButton"`
	BackFromLogin   string `yaml:"backFromLogin"`
	BackFromGuest   string `yaml:"backFromGuest"`
	FieldErrorClass string `yaml:"fieldErrorClass"`
}

// Timings are the delays of scheduled callbacks.
type Timings struct {
	Cleanup time.Duration `yaml:"cleanup"`
	Submit  time.Duration `yaml:"submit"`
	Flash   time.Duration `yaml:"flash"`
}

// Theme selects the style tokens.
type Theme struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// Config is the full document.
type Config struct {
	Selectors Selectors `yaml:"selectors"`
	Timings   Timings   `yaml:"timings"`
	Theme     Theme     `yaml:"theme"`
}

// Default returns the storefront element contract.
func Default() Config {
	return Config{
		Selectors: Selectors{
			CheckoutForm:    "#checkout-form",
			Username:        "#username",
			Password:        "#password",
			Email:           "#email",
			Address:         "#address",
			QuantityInput:   ".quantity-input",
			Carousel:        ".trend-carousel",
			Slide:           ".trend-slide",
			CarouselPrev:    ".trend-nav-prev",
			CarouselNext:    ".trend-nav-next",
			ProductCard:     ".product-card",
			MainImage:       ".product-main-image",
			Thumb:           ".product-thumb",
			Gallery:         ".product-gallery",
			AddToCart:       ".add-to-cart-form",
			CartIcon:        "#cart-icon",
			FlashContainer:  "main",
			CheckoutChoice:  "#checkout-choice",
			LoginSection:    "#login-section",
			GuestSection:    "#guest-section",
			LoginButton:     "#btn-login",
			GuestButton:     "#btn-guest",
			BackFromLogin:   "#btn-back-from-login",
			BackFromGuest:   "#btn-back-from-guest",
			FieldErrorClass: "field-error",
		},
		Timings: Timings{
			Cleanup: 600 * time.Millisecond,
			Submit:  350 * time.Millisecond,
			Flash:   5000 * time.Millisecond,
		},
		Theme: Theme{Name: "techshop"},
	}
}

// Parse decodes a YAML document over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var doc Config
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.merge(doc)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses path from fsys. A nil fsys reads from disk.
func Load(fsys fs.FS, path string) (Config, error) {
	var (
		data []byte
		err  error
	)
	if fsys == nil {
		data, err = os.ReadFile(path)
	} else {
		data, err = fs.ReadFile(fsys, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks that every selector is set and timings are not negative.
func (c Config) Validate() error {
	v := reflect.ValueOf(c.Selectors)
	for i := 0; i < v.NumField(); i++ {
		if strings.TrimSpace(v.Field(i).String()) == "" {
			return fmt.Errorf("%w: %s", ErrInvalidSelector, v.Type().Field(i).Tag.Get("yaml"))
		}
	}
	if c.Timings.Cleanup < 0 || c.Timings.Submit < 0 || c.Timings.Flash < 0 {
		return errors.New("config: timings must not be negative")
	}
	return nil
}

func (c *Config) merge(doc Config) {
	dst := reflect.ValueOf(&c.Selectors).Elem()
	src := reflect.ValueOf(doc.Selectors)
	for i := 0; i < src.NumField(); i++ {
		if value := strings.TrimSpace(src.Field(i).String()); value != "" {
			dst.Field(i).SetString(value)
		}
	}

	if doc.Timings.Cleanup != 0 {
		c.Timings.Cleanup = doc.Timings.Cleanup
	}
	if doc.Timings.Submit != 0 {
		c.Timings.Submit = doc.Timings.Submit
	}
	if doc.Timings.Flash != 0 {
		c.Timings.Flash = doc.Timings.Flash
	}

	if name := strings.TrimSpace(doc.Theme.Name); name != "" {
		c.Theme.Name = name
	}
	if variant := strings.TrimSpace(doc.Theme.Variant); variant != "" {
		c.Theme.Variant = variant
	}
}
