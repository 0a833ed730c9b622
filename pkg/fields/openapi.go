package fields

import (
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	addressPattern    = `\S`
	personalIDPattern = `^\s*([0-9]{8}|[XYZxyz][0-9]{7})[A-Za-z]\s*$`
	businessIDPattern = `^\s*[ABCDEFGHJKLMNPQRSUVWabcdefghjklmnpqrsuvw][0-9]{7}[0-9A-Ja-j]\s*$`
)

// OpenAPISchema describes the checkout form as an OpenAPI object schema so
// servers can enforce the same constraints as the storefront. Control
// characters of identity documents are not expressible here; the schema only
// carries their shape.
func OpenAPISchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = "CheckoutForm"
	schema.WithProperty(FieldUsername, openapi3.NewStringSchema().
		WithMinLength(UsernameMinLength).
		WithMaxLength(UsernameMaxLength).
		WithPattern(UsernamePattern))
	schema.WithProperty(FieldPassword, openapi3.NewStringSchema().
		WithMinLength(PasswordMinLength))
	schema.WithProperty(FieldEmail, openapi3.NewStringSchema().
		WithPattern(EmailPattern))
	schema.WithProperty(FieldAddress, openapi3.NewStringSchema().
		WithPattern(addressPattern))
	schema.Required = append([]string(nil), CheckoutFields...)
	return schema
}

// RegistrationSchema extends OpenAPISchema with the account fields.
func RegistrationSchema() *openapi3.Schema {
	schema := OpenAPISchema()
	schema.Title = "RegistrationForm"
	schema.WithProperty(FieldAccountType, openapi3.NewStringSchema().
		WithEnum(AccountUser, AccountCompany))
	schema.WithProperty(FieldDNI, openapi3.NewStringSchema().
		WithPattern(personalIDPattern))
	schema.WithProperty(FieldNIF, openapi3.NewStringSchema().
		WithPattern(businessIDPattern))
	schema.WithProperty(FieldPolicies, openapi3.NewBoolSchema())
	schema.Required = append(schema.Required, FieldAccountType, FieldPolicies)
	return schema
}

// QuantitySchema describes a quantity input with the given bounds.
func QuantitySchema(b Bounds) *openapi3.Schema {
	schema := openapi3.NewIntegerSchema()
	if b.Min != nil {
		schema.WithMin(float64(*b.Min))
	}
	if b.Max != nil {
		schema.WithMax(float64(*b.Max))
	}
	return schema
}
