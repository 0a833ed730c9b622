package template

import (
	"io"
)

// Snippet template names shipped with the embedded bundle.
const (
	FieldErrorTemplate = "field_error"
	FlashTemplate      = "flash"
)

// TemplateRenderer renders named templates or inline template strings. When
// writers are supplied the rendered output is also copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

// FieldErrorData feeds FieldErrorTemplate.
type FieldErrorData struct {
	Class     string `json:"class"`
	Message   string `json:"message"`
	Color     string `json:"color"`
	FontSize  string `json:"font_size"`
	MarginTop string `json:"margin_top"`
}

// FlashData feeds FlashTemplate. Kind is "success" or "error".
type FlashData struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
