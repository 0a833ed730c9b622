package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/fields"
)

type checkoutInputs struct {
	form   *goquery.Selection
	inputs map[string]*goquery.Selection
}

func (c checkoutInputs) values() fields.CheckoutForm {
	return fields.CheckoutForm{
		Username: controlValue(c.inputs[fields.FieldUsername]),
		Password: controlValue(c.inputs[fields.FieldPassword]),
		Email:    controlValue(c.inputs[fields.FieldEmail]),
		Address:  controlValue(c.inputs[fields.FieldAddress]),
	}
}

func (p *Page) bindCheckoutForm() {
	sel := p.cfg.Selectors
	form := p.doc.Find(sel.CheckoutForm).First()
	if form.Length() == 0 {
		p.logger.Debug("checkout form not found", zap.String("selector", sel.CheckoutForm))
		return
	}

	selectors := map[string]string{
		fields.FieldUsername: sel.Username,
		fields.FieldPassword: sel.Password,
		fields.FieldEmail:    sel.Email,
		fields.FieldAddress:  sel.Address,
	}
	c := checkoutInputs{form: form, inputs: make(map[string]*goquery.Selection, len(selectors))}
	for _, name := range fields.CheckoutFields {
		input := p.doc.Find(selectors[name]).First()
		if input.Length() == 0 {
			p.logger.Debug("checkout field not found",
				zap.String("field", name),
				zap.String("selector", selectors[name]),
			)
			return
		}
		c.inputs[name] = input
	}

	p.checkout = &c
	p.on(form.Get(0), EventSubmit, func(ev *Event) {
		report := fields.ValidateCheckout(c.values(), fields.WithMessages(p.messages))
		for _, name := range fields.CheckoutFields {
			if msg, failed := report.Message(name); failed {
				p.showFieldError(c.inputs[name], msg)
			} else {
				p.clearFieldError(c.inputs[name])
			}
		}
		if !report.Valid() {
			p.logger.Debug("checkout rejected", zap.Strings("fields", report.Fields()))
			ev.PreventDefault()
		}
	})
}

func (p *Page) bindQuantityInputs() {
	p.doc.Find(p.cfg.Selectors.QuantityInput).Each(func(_ int, input *goquery.Selection) {
		p.quantities++
		p.on(input.Get(0), EventInput, func(*Event) {
			p.validateQuantity(input)
		})
	})
}

// validateQuantity reads the bounds at event time so attribute changes made
// by the host apply.
func (p *Page) validateQuantity(input *goquery.Selection) bool {
	bounds := fields.ParseBounds(input.AttrOr("min", ""), input.AttrOr("max", ""))
	if fields.Quantity(controlValue(input), bounds) {
		p.clearFieldError(input)
		return true
	}
	p.showFieldError(input, p.messages.QuantityMessage(bounds))
	return false
}

// ShowServerErrors renders a server error payload: messages for checkout
// fields appear inline, every other message becomes an error flash.
func (p *Page) ShowServerErrors(payload map[string][]string) error {
	mapping := fields.MapErrors(payload, fields.CheckoutFields)

	p.mu.Lock()
	if c := p.checkout; c != nil && !p.closed {
		for _, name := range fields.CheckoutFields {
			if msgs, ok := mapping.Fields[name]; ok {
				p.showFieldError(c.inputs[name], strings.Join(msgs, " "))
			}
		}
	} else {
		for _, name := range fields.CheckoutFields {
			mapping.Form = append(mapping.Form, mapping.Fields[name]...)
		}
	}
	p.mu.Unlock()

	for _, msg := range mapping.Form {
		if err := p.ShowError(msg); err != nil {
			return err
		}
	}
	return nil
}
