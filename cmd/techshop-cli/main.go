package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	techshop "github.com/goliatone/go-techshop"
	"github.com/goliatone/go-techshop/internal/logging"
	"github.com/goliatone/go-techshop/pkg/config"
	"github.com/goliatone/go-techshop/pkg/fields"
	"github.com/goliatone/go-techshop/pkg/nationalid"
	"github.com/goliatone/go-techshop/pkg/page"
	"github.com/goliatone/go-techshop/pkg/prompt"
)

// errInvalid makes the process exit non-zero after printing a rejection.
var errInvalid = errors.New("invalid input")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	driver prompt.PromptDriver
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the exit code so deferred work, such as flushing the
// logger, runs before the process exits.
func realMain(args []string) int {
	logger := logging.FromEnv()
	defer logger.Sync() //nolint:errcheck

	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		driver: prompt.NewSurveyDriver(),
	}
	return a.exitCode(logging.WithLogger(context.Background(), logger), args)
}

func (a *app) exitCode(ctx context.Context, args []string) int {
	if err := a.run(ctx, args); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(a.stderr, "techshop-cli: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) usage() {
	fmt.Fprintf(a.stderr, `Usage: techshop-cli <command> [flags]

Commands:
  id        validate DNI/NIE (or CIF with -business) identifiers
  checkout  prompt for the checkout fields
  enhance   bind the storefront widgets to an HTML page and print the result
  schema    print the checkout rules as an OpenAPI schema
  styles    print the theme stylesheet
`)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}
	switch args[0] {
	case "id":
		return a.runID(ctx, args[1:])
	case "checkout":
		return a.runCheckout(ctx, args[1:])
	case "enhance":
		return a.runEnhance(ctx, args[1:])
	case "schema":
		return a.runSchema(args[1:])
	case "styles":
		return a.runStyles(args[1:])
	case "-h", "--help", "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) runID(ctx context.Context, args []string) error {
	fs := a.flags("id")
	business := fs.Bool("business", false, "validate CIF business identifiers")
	interactive := fs.Bool("interactive", false, "prompt until a valid identifier is entered")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := fs.Args()
	if *interactive {
		value, err := prompt.Identifier(ctx, a.driver, *business, fields.DefaultMessages())
		if err != nil {
			return err
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return errors.New("id: no identifiers given")
	}

	failed := false
	for _, raw := range values {
		res := nationalid.Validate(raw)
		valid := nationalid.ValidatePersonal(raw)
		if *business {
			valid = nationalid.ValidateBusiness(raw)
		}
		kind := string(res.Kind)
		if kind == "" {
			kind = "unknown"
		}
		status := "valid"
		if !valid {
			status = "invalid"
			failed = true
		}
		fmt.Fprintf(a.stdout, "%s\t%s\t%s\n", nationalid.Normalize(raw), kind, status)
	}
	if failed {
		return errInvalid
	}
	return nil
}

func (a *app) runCheckout(ctx context.Context, args []string) error {
	fs := a.flags("checkout")
	register := fs.Bool("register", false, "also ask for the account type, identity document and policies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		report fields.Report
		form   any
	)
	if *register {
		reg, err := prompt.Registration(ctx, a.driver, fields.DefaultMessages())
		if err != nil {
			return err
		}
		report = fields.ValidateRegistration(reg)
		reg.Password = redact(reg.Password)
		form = reg
	} else {
		co, err := prompt.Checkout(ctx, a.driver, fields.DefaultMessages())
		if err != nil {
			return err
		}
		report = fields.ValidateCheckout(co)
		co.Password = redact(co.Password)
		form = co
	}

	if err := writeJSON(a.stdout, map[string]any{
		"form":   form,
		"valid":  report.Valid(),
		"issues": report.Issues,
	}); err != nil {
		return err
	}
	if !report.Valid() {
		return errInvalid
	}
	return nil
}

func (a *app) runEnhance(ctx context.Context, args []string) (err error) {
	fs := a.flags("enhance")
	in := fs.String("in", "-", "HTML page to enhance (- for stdin)")
	out := fs.String("out", "", "output file (stdout if empty)")
	cfgPath := fs.String("config", "", "YAML configuration file")
	variant := fs.String("variant", "", "theme variant, overrides the configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(nil, *cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if v := strings.TrimSpace(*variant); v != "" {
		cfg.Theme.Variant = v
	}

	var src io.Reader = a.stdin
	if *in != "-" && *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("enhance: %w", err)
		}
		defer f.Close()
		src = f
	}

	var dst io.Writer = a.stdout
	if *out != "" {
		f, createErr := os.Create(*out)
		if createErr != nil {
			return fmt.Errorf("enhance: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("enhance: close output: %w", cerr)
			}
		}()
		dst = f
	}

	logger := logging.FromContext(ctx)
	inv, err := techshop.Enhance(ctx, src, dst,
		page.WithConfig(cfg),
		page.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("page enhanced",
		zap.Bool("checkout_form", inv.CheckoutForm),
		zap.Int("quantity_inputs", inv.QuantityInputs),
		zap.Int("carousels", inv.Carousels),
		zap.Int("galleries", inv.Galleries),
		zap.Int("add_to_cart_forms", inv.AddToCartForms),
		zap.Bool("checkout_panels", inv.CheckoutPanels),
	)
	if *out != "" {
		fmt.Fprintf(a.stderr, "Page written to %s\n", *out)
	}
	return nil
}

func (a *app) runSchema(args []string) error {
	fs := a.flags("schema")
	registration := fs.Bool("registration", false, "print the registration schema")
	if err := fs.Parse(args); err != nil {
		return err
	}
	schema := fields.OpenAPISchema()
	if *registration {
		schema = fields.RegistrationSchema()
	}
	return writeJSON(a.stdout, schema)
}

func (a *app) runStyles(args []string) error {
	fs := a.flags("styles")
	variant := fs.String("variant", "", "theme variant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	css, err := techshop.Stylesheet(nil, *variant)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stdout, css)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return strings.Repeat("*", 8)
}
