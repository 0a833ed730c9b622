// Package techshop is the entry point for the storefront client logic:
// identifier validation, checkout rules and page enhancement.
package techshop

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-techshop/pkg/fields"
	"github.com/goliatone/go-techshop/pkg/nationalid"
	"github.com/goliatone/go-techshop/pkg/page"
	"github.com/goliatone/go-techshop/pkg/schedule"
)

// Option aliases page.Option so callers can configure Enhance without
// importing the page package.
type Option = page.Option

// Inventory aliases page.Inventory.
type Inventory = page.Inventory

// ValidatePersonalID reports whether raw is a valid DNI or NIE.
func ValidatePersonalID(raw string) bool {
	return nationalid.ValidatePersonal(raw)
}

// ValidateBusinessID reports whether raw is a valid CIF.
func ValidateBusinessID(raw string) bool {
	return nationalid.ValidateBusiness(raw)
}

// ClassifyID reports which identifier family raw belongs to and whether it
// is valid.
func ClassifyID(raw string) nationalid.Result {
	return nationalid.Validate(raw)
}

// ValidateCheckout applies the checkout field rules.
func ValidateCheckout(form fields.CheckoutForm, options ...fields.Option) fields.Report {
	return fields.ValidateCheckout(form, options...)
}

// NewPage parses r and binds the storefront widgets to it.
func NewPage(r io.Reader, options ...Option) (*page.Page, error) {
	return page.Parse(r, options...)
}

// Enhance parses the document in r, applies the initial widget state and
// writes the result to w. No timers survive the call.
func Enhance(ctx context.Context, r io.Reader, w io.Writer, options ...Option) (Inventory, error) {
	if err := ctx.Err(); err != nil {
		return Inventory{}, err
	}

	opts := append([]Option{page.WithScheduler(schedule.NewManual())}, options...)
	p, err := page.Parse(r, opts...)
	if err != nil {
		return Inventory{}, fmt.Errorf("techshop: enhance: %w", err)
	}
	defer p.Close()

	if err := p.Render(w); err != nil {
		return Inventory{}, fmt.Errorf("techshop: enhance: %w", err)
	}
	return p.Inventory(), nil
}
