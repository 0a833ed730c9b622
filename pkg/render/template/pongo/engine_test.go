package pongo_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-techshop/pkg/render/template"
	"github.com/goliatone/go-techshop/pkg/render/template/pongo"
	"github.com/goliatone/go-techshop/pkg/testsupport"
)

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()
	engine, err := pongo.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_FieldErrorSnippet(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate(template.FieldErrorTemplate, template.FieldErrorData{
		Class:     "field-error",
		Message:   "<b>Usuari</b> no vàlid",
		Color:     "#dc3545",
		FontSize:  "0.9rem",
		MarginTop: "0.25rem",
	}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := testsupport.MustReadGoldenString(t, "testdata/field_error.golden")
	if got != want {
		t.Fatalf("field error mismatch\nwant: %q\n got: %q", want, got)
	}
	if buf.String() != got {
		t.Fatalf("writer mismatch: %q", buf.String())
	}
}

func TestEngine_FlashSanitizesMessage(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate(template.FlashTemplate, template.FlashData{
		Kind:    "success",
		Message: `Producte <strong>afegit</strong><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("script survived sanitising: %q", got)
	}
	if !strings.Contains(got, "<strong>afegit</strong>") {
		t.Fatalf("inline markup dropped: %q", got)
	}
	if !strings.HasPrefix(got, `<div class="flash flash-success"`) {
		t.Fatalf("unexpected wrapper: %q", got)
	}
}

func TestEngine_RenderStringUsesGlobals(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobals(map[string]any{"shop": "TechShop"}))

	got, err := engine.RenderString("{{ shop }}: {{ greeting|trim }}", map[string]any{"greeting": "  hola  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "TechShop: hola" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_CustomFS(t *testing.T) {
	files := fstest.MapFS{
		"flash.html": {Data: []byte(`<p class="{{ kind }}">{{ message }}</p>`)},
	}
	engine := newEngine(t, pongo.WithFS(files), pongo.WithExtension("html"))

	got, err := engine.RenderTemplate("flash", template.FlashData{Kind: "error", Message: "ko"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<p class="error">ko</p>` {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestSanitizeMessage(t *testing.T) {
	cases := map[string]string{
		"":                               "",
		"  plain  ":                      "plain",
		`<img src=x onerror=alert(1)>ok`: "ok",
		`<em>fet</em>`:                   "<em>fet</em>",
	}
	for in, want := range cases {
		if got := pongo.SanitizeMessage(in); got != want {
			t.Errorf("SanitizeMessage(%q) = %q, want %q", in, got, want)
		}
	}
}
