package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-techshop/pkg/fields"
)

func TestValidateCheckoutReportsInFieldOrder(t *testing.T) {
	report := fields.ValidateCheckout(fields.CheckoutForm{
		Username: "ab",
		Password: "123",
		Email:    "test@test",
		Address:  "   ",
	})
	if report.Valid() {
		t.Fatalf("expected report to be invalid")
	}
	if diff := cmp.Diff(fields.CheckoutFields, report.Fields()); diff != "" {
		t.Fatalf("failing fields mismatch (-want +got):\n%s", diff)
	}
	msg, ok := report.Message(fields.FieldEmail)
	if !ok || msg != fields.DefaultMessages().Email {
		t.Fatalf("unexpected email message %q", msg)
	}
}

func TestValidateCheckoutValid(t *testing.T) {
	report := fields.ValidateCheckout(fields.CheckoutForm{
		Username: "maria_92",
		Password: "secret-pass",
		Email:    "maria@example.cat",
		Address:  "Carrer Major 1, Girona",
	})
	if !report.Valid() {
		t.Fatalf("expected valid report, got %+v", report.Issues)
	}
	if report.Fields() != nil {
		t.Fatalf("expected no failing fields")
	}
}

func TestWithMessagesKeepsDefaultsForEmptyEntries(t *testing.T) {
	report := fields.ValidateCheckout(fields.CheckoutForm{Username: "ok_user", Password: "x"},
		fields.WithMessages(fields.Messages{Password: "too short"}))

	want := []fields.Issue{
		{Field: fields.FieldPassword, Message: "too short"},
		{Field: fields.FieldEmail, Message: fields.DefaultMessages().Email},
		{Field: fields.FieldAddress, Message: fields.DefaultMessages().Address},
	}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	if _, ok := fields.Check(fields.FieldUsername, "abc"); ok {
		t.Fatalf("expected short username to fail")
	}
	if _, ok := fields.Check("unknown", ""); !ok {
		t.Fatalf("expected unknown field to pass")
	}
}

func TestValidateRegistration(t *testing.T) {
	base := fields.CheckoutForm{
		Username: "empresa_sl",
		Password: "Passw0rd!!",
		Email:    "info@empresa.cat",
		Address:  "Polígon Nord 4",
	}

	cases := []struct {
		name string
		form fields.RegistrationForm
		want []string
	}{
		{
			name: "individual with dni",
			form: fields.RegistrationForm{CheckoutForm: base, AccountType: "user", DNI: "12345678z", AcceptPolicies: true},
		},
		{
			name: "default account type is user",
			form: fields.RegistrationForm{CheckoutForm: base, DNI: "X1234567L", AcceptPolicies: true},
		},
		{
			name: "company with cif",
			form: fields.RegistrationForm{CheckoutForm: base, AccountType: "company", NIF: "B12345674", AcceptPolicies: true},
		},
		{
			name: "company with dni only",
			form: fields.RegistrationForm{CheckoutForm: base, AccountType: "company", DNI: "12345678Z", AcceptPolicies: true},
			want: []string{fields.FieldNIF},
		},
		{
			name: "weak password and missing policies",
			form: fields.RegistrationForm{
				CheckoutForm: fields.CheckoutForm{Username: base.Username, Password: "password", Email: base.Email, Address: base.Address},
				DNI:          "12345678Z",
			},
			want: []string{fields.FieldPassword, fields.FieldPolicies},
		},
		{
			name: "unknown account type",
			form: fields.RegistrationForm{CheckoutForm: base, AccountType: "admin", AcceptPolicies: true},
			want: []string{fields.FieldAccountType},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := fields.ValidateRegistration(tc.form)
			if diff := cmp.Diff(tc.want, report.Fields()); diff != "" {
				t.Fatalf("failing fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
