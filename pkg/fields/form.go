package fields

import (
	"strings"

	"github.com/goliatone/go-techshop/pkg/nationalid"
)

// Field names used as Report keys and as element ids in the checkout form.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldAccountType = "account_type"
	FieldPolicies    = "accept_policies"
	FieldDNI         = "dni"
	FieldNIF         = "nif"
)

// CheckoutFields lists the checkout inputs in validation order.
var CheckoutFields = []string{FieldUsername, FieldPassword, FieldEmail, FieldAddress}

// Account types accepted at registration.
const (
	AccountUser    = "user"
	AccountCompany = "company"
)

// CheckoutForm carries the raw checkout input values.
type CheckoutForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// RegistrationForm extends the checkout fields with the account identity.
type RegistrationForm struct {
	CheckoutForm
	AccountType    string `json:"account_type"`
	DNI            string `json:"dni,omitempty"`
	NIF            string `json:"nif,omitempty"`
	AcceptPolicies bool   `json:"accept_policies"`
}

// Issue is a single field failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report collects issues in field order.
type Report struct {
	Issues []Issue `json:"issues,omitempty"`
}

// Valid reports whether no field failed.
func (r Report) Valid() bool {
	return len(r.Issues) == 0
}

// Message returns the message recorded for field, if any.
func (r Report) Message(field string) (string, bool) {
	for _, issue := range r.Issues {
		if issue.Field == field {
			return issue.Message, true
		}
	}
	return "", false
}

// Fields returns the failing field names in order.
func (r Report) Fields() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.Field)
	}
	return out
}

func (r *Report) add(field, message string) {
	r.Issues = append(r.Issues, Issue{Field: field, Message: message})
}

// Option configures the form validators.
type Option func(*config)

type config struct {
	messages Messages
}

// WithMessages overrides the message catalog. Empty entries keep their
// default text.
func WithMessages(m Messages) Option {
	return func(cfg *config) {
		cfg.messages = m.WithDefaults()
	}
}

func newConfig(options []Option) config {
	cfg := config{messages: DefaultMessages()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Check validates a single checkout field by name. Unknown names pass.
func Check(field, value string, options ...Option) (string, bool) {
	msgs := newConfig(options).messages
	switch field {
	case FieldUsername:
		return msgs.Username, Username(value)
	case FieldPassword:
		return msgs.Password, Password(value)
	case FieldEmail:
		return msgs.Email, Email(value)
	case FieldAddress:
		return msgs.Address, Address(value)
	default:
		return "", true
	}
}

// ValidateCheckout applies the checkout rules to every field.
func ValidateCheckout(form CheckoutForm, options ...Option) Report {
	cfg := newConfig(options)
	var report Report
	validateCheckout(&report, form, cfg.messages)
	return report
}

func validateCheckout(report *Report, form CheckoutForm, msgs Messages) {
	if !Username(form.Username) {
		report.add(FieldUsername, msgs.Username)
	}
	if !Password(form.Password) {
		report.add(FieldPassword, msgs.Password)
	}
	if !Email(form.Email) {
		report.add(FieldEmail, msgs.Email)
	}
	if !Address(form.Address) {
		report.add(FieldAddress, msgs.Address)
	}
}

// ValidateRegistration applies the checkout rules plus the registration
// rules: strong password, accepted policies, a known account type and the
// identity document matching that type.
func ValidateRegistration(form RegistrationForm, options ...Option) Report {
	cfg := newConfig(options)
	msgs := cfg.messages

	var report Report
	validateCheckout(&report, form.CheckoutForm, msgs)
	if Password(form.Password) && !StrongPassword(form.Password) {
		report.add(FieldPassword, msgs.StrongPassword)
	}

	switch accountType(form.AccountType) {
	case AccountUser:
		if !nationalid.ValidatePersonal(form.DNI) {
			report.add(FieldDNI, msgs.PersonalID)
		}
	case AccountCompany:
		if !nationalid.ValidateBusiness(form.NIF) {
			report.add(FieldNIF, msgs.BusinessID)
		}
	default:
		report.add(FieldAccountType, msgs.AccountType)
	}

	if !form.AcceptPolicies {
		report.add(FieldPolicies, msgs.Policies)
	}
	return report
}

func accountType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AccountUser
	}
	return trimmed
}
