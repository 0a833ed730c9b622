package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-techshop/pkg/fields"
)

// scriptedDriver answers prompts from queues. Answers rejected by the
// validator are recorded and the next answer is tried, the way survey
// re-asks.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	rejected []string
	asked    []string
}

func (d *scriptedDriver) answer(cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	for len(d.inputs) > 0 {
		value := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(value); err != nil {
				d.rejected = append(d.rejected, err.Error())
				continue
			}
		}
		return value, nil
	}
	return "", ErrAborted
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return d.answer(cfg)
}

func (d *scriptedDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	return d.answer(cfg)
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, ErrAborted
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Select(context.Context, SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, ErrAborted
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestCheckoutReasksUntilValid(t *testing.T) {
	msgs := fields.DefaultMessages()
	d := &scriptedDriver{inputs: []string{
		"abc", "joan_99",
		"short", "secret123",
		"joan@", "joan@example.com",
		"   ", "Carrer Major 1",
	}}

	form, err := Checkout(context.Background(), d, fields.Messages{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	want := fields.CheckoutForm{
		Username: "joan_99",
		Password: "secret123",
		Email:    "joan@example.com",
		Address:  "Carrer Major 1",
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	wantRejected := []string{msgs.Username, msgs.Password, msgs.Email, msgs.Address}
	if diff := cmp.Diff(wantRejected, d.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckoutPropagatesAbort(t *testing.T) {
	d := &scriptedDriver{inputs: []string{"joan_99"}}
	if _, err := Checkout(context.Background(), d, fields.Messages{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRegistrationCompany(t *testing.T) {
	d := &scriptedDriver{
		inputs:   []string{"joan_99", "secret123", "joan@example.com", "Carrer Major 1", "b12345670", " b12345674 "},
		selects:  []int{1},
		confirms: []bool{true},
	}

	form, err := Registration(context.Background(), d, fields.Messages{})
	if err != nil {
		t.Fatalf("registration: %v", err)
	}
	if form.AccountType != fields.AccountCompany || form.NIF != "B12345674" || form.DNI != "" {
		t.Fatalf("unexpected identity %+v", form)
	}
	if !form.AcceptPolicies {
		t.Fatalf("policies not recorded")
	}
	if len(d.rejected) != 1 {
		t.Fatalf("expected the bad CIF to be rejected once, got %v", d.rejected)
	}
	if report := fields.ValidateRegistration(form); !report.Valid() {
		t.Fatalf("prompted form should validate: %+v", report)
	}
}

func TestIdentifierPersonal(t *testing.T) {
	d := &scriptedDriver{inputs: []string{"12345678A", "x1234567l"}}
	got, err := Identifier(context.Background(), d, false, fields.Messages{})
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if got != "X1234567L" {
		t.Fatalf("identifier = %q", got)
	}
}

func TestSurveyDriverRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewSurveyDriver()
	if _, err := d.Input(ctx, InputConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := d.Select(ctx, SelectConfig{Options: []string{"a"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
