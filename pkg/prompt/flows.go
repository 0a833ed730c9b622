package prompt

import (
	"context"
	"errors"

	"github.com/goliatone/go-techshop/pkg/fields"
	"github.com/goliatone/go-techshop/pkg/nationalid"
)

// Rule turns a boolean check into a prompt validator returning message on
// failure.
func Rule(check func(string) bool, message string) func(string) error {
	return func(value string) error {
		if check(value) {
			return nil
		}
		return errors.New(message)
	}
}

// Checkout asks for the four checkout fields, re-asking until each passes
// its rule.
func Checkout(ctx context.Context, d PromptDriver, msgs fields.Messages) (fields.CheckoutForm, error) {
	msgs = msgs.WithDefaults()

	var form fields.CheckoutForm
	var err error
	if form.Username, err = d.Input(ctx, InputConfig{
		Message:   "Nom d'usuari",
		Validator: Rule(fields.Username, msgs.Username),
	}); err != nil {
		return fields.CheckoutForm{}, err
	}
	if form.Password, err = d.Password(ctx, InputConfig{
		Message:   "Contrasenya",
		Validator: Rule(fields.Password, msgs.Password),
	}); err != nil {
		return fields.CheckoutForm{}, err
	}
	if form.Email, err = d.Input(ctx, InputConfig{
		Message:   "Correu electrònic",
		Validator: Rule(fields.Email, msgs.Email),
	}); err != nil {
		return fields.CheckoutForm{}, err
	}
	if form.Address, err = d.Input(ctx, InputConfig{
		Message:   "Adreça",
		Validator: Rule(fields.Address, msgs.Address),
	}); err != nil {
		return fields.CheckoutForm{}, err
	}
	return form, nil
}

// Registration extends Checkout with the account type, the matching
// identity document and the policy confirmation.
func Registration(ctx context.Context, d PromptDriver, msgs fields.Messages) (fields.RegistrationForm, error) {
	msgs = msgs.WithDefaults()

	checkout, err := Checkout(ctx, d, msgs)
	if err != nil {
		return fields.RegistrationForm{}, err
	}
	form := fields.RegistrationForm{CheckoutForm: checkout}

	kinds := []string{fields.AccountUser, fields.AccountCompany}
	idx, err := d.Select(ctx, SelectConfig{Message: "Tipus de compte", Options: kinds})
	if err != nil {
		return fields.RegistrationForm{}, err
	}
	if idx < 0 || idx >= len(kinds) {
		idx = 0
	}
	form.AccountType = kinds[idx]

	if form.AccountType == fields.AccountCompany {
		form.NIF, err = Identifier(ctx, d, true, msgs)
	} else {
		form.DNI, err = Identifier(ctx, d, false, msgs)
	}
	if err != nil {
		return fields.RegistrationForm{}, err
	}

	form.AcceptPolicies, err = d.Confirm(ctx, ConfirmConfig{
		Message: "Acceptes les polítiques de privacitat i condicions d'ús?",
	})
	if err != nil {
		return fields.RegistrationForm{}, err
	}
	return form, nil
}

// Identifier asks for a DNI/NIE, or a CIF when business is set, and returns
// it normalized.
func Identifier(ctx context.Context, d PromptDriver, business bool, msgs fields.Messages) (string, error) {
	msgs = msgs.WithDefaults()

	cfg := InputConfig{
		Message:   "DNI/NIE",
		Validator: Rule(nationalid.ValidatePersonal, msgs.PersonalID),
	}
	if business {
		cfg = InputConfig{
			Message:   "NIF",
			Validator: Rule(nationalid.ValidateBusiness, msgs.BusinessID),
		}
	}
	value, err := d.Input(ctx, cfg)
	if err != nil {
		return "", err
	}
	return nationalid.Normalize(value), nil
}
