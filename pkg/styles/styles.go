// Package styles holds the storefront's style tokens as a go-theme manifest.
// Widgets read colours and class names from the resolved Tokens instead of
// hard-coding them.
package styles

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token keys understood by package page.
const (
	TokenErrorColor     = "field.error.color"
	TokenErrorFontSize  = "field.error.fontSize"
	TokenErrorMarginTop = "field.error.marginTop"
	TokenBorderInvalid  = "field.border.invalid"
	TokenBorderValid    = "field.border.valid"
	TokenActiveClass    = "widget.activeClass"
	TokenFlyingClass    = "cart.flyingClass"
	TokenBumpClass      = "cart.bumpClass"
)

// DefaultManifest returns the built-in techshop theme.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "techshop",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenErrorColor:     "#dc3545",
			TokenErrorFontSize:  "0.9rem",
			TokenErrorMarginTop: "0.25rem",
			TokenBorderInvalid:  "#dc3545",
			TokenBorderValid:    "#ddd",
			TokenActiveClass:    "is-active",
			TokenFlyingClass:    "flying-image",
			TokenBumpClass:      "cart-icon-bump",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenErrorColor:    "#ff6b6b",
					TokenBorderInvalid: "#ff6b6b",
					TokenBorderValid:   "#444",
				},
			},
		},
	}
}

// Tokens is a resolved token map.
type Tokens map[string]string

// Resolve merges the variant tokens over the manifest tokens, then fills any
// key the manifest lacks from the default theme. A nil manifest resolves the
// default theme.
func Resolve(manifest *theme.Manifest, variant string) Tokens {
	def := DefaultManifest()
	if manifest == nil {
		manifest = def
	}

	out := make(Tokens, len(def.Tokens))
	for key, value := range def.Tokens {
		out[key] = value
	}
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if v, ok := manifest.Variants[strings.TrimSpace(variant)]; ok {
		for key, value := range v.Tokens {
			out[key] = value
		}
	}
	return out
}

// Get returns the token value or an empty string.
func (t Tokens) Get(key string) string {
	if t == nil {
		return ""
	}
	return t[key]
}

// CSSVars converts the tokens into custom properties, e.g.
// "field.error.color" becomes "--field-error-color".
func (t Tokens) CSSVars() map[string]string {
	if len(t) == 0 {
		return nil
	}
	out := make(map[string]string, len(t))
	for key, value := range t {
		out["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return out
}

// Keys returns the token names sorted.
func (t Tokens) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
