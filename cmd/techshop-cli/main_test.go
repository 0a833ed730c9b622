package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-techshop/pkg/prompt"
)

type fakeDriver struct {
	inputs []string
}

func (d *fakeDriver) next(cfg prompt.InputConfig) (string, error) {
	for len(d.inputs) > 0 {
		v := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator == nil || cfg.Validator(v) == nil {
			return v, nil
		}
	}
	return "", prompt.ErrAborted
}

func (d *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.next(cfg)
}

func (d *fakeDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.next(cfg)
}

func (d *fakeDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) { return true, nil }

func (d *fakeDriver) Select(context.Context, prompt.SelectConfig) (int, error) { return 0, nil }

func (d *fakeDriver) Info(context.Context, string) error { return nil }

func newApp(stdin string, inputs ...string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		driver: &fakeDriver{inputs: inputs},
	}, &stdout, &stderr
}

func TestRunID(t *testing.T) {
	a, out, _ := newApp("")
	if err := a.run(context.Background(), []string{"id", "12345678z", "X1234567L"}); err != nil {
		t.Fatalf("id: %v", err)
	}
	want := "12345678Z\tdni\tvalid\nX1234567L\tnie\tvalid\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunIDInvalidExitsNonZero(t *testing.T) {
	a, out, _ := newApp("")
	err := a.run(context.Background(), []string{"id", "-business", "B12345674", "B12345670"})
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	want := "B12345674\tcif\tvalid\nB12345670\tcif\tinvalid\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunIDInteractive(t *testing.T) {
	a, out, _ := newApp("", "nope", "y1234567x")
	if err := a.run(context.Background(), []string{"id", "-interactive"}); err != nil {
		t.Fatalf("id: %v", err)
	}
	if got := out.String(); got != "Y1234567X\tnie\tvalid\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunCheckout(t *testing.T) {
	a, out, _ := newApp("", "joan_99", "secret123", "joan@example.com", "Carrer Major 1")
	if err := a.run(context.Background(), []string{"checkout"}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var payload struct {
		Form  map[string]string `json:"form"`
		Valid bool              `json:"valid"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Valid || payload.Form["username"] != "joan_99" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Form["password"] != "********" {
		t.Fatalf("password not redacted: %q", payload.Form["password"])
	}
}

func TestRunSchema(t *testing.T) {
	a, out, _ := newApp("")
	if err := a.run(context.Background(), []string{"schema"}); err != nil {
		t.Fatalf("schema: %v", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(out.Bytes(), &schema); err != nil {
		t.Fatalf("decode: %v", err)
	}
	props, _ := schema["properties"].(map[string]any)
	for _, name := range []string{"username", "password", "email", "address"} {
		if _, ok := props[name]; !ok {
			t.Errorf("schema lacks %s", name)
		}
	}
}

func TestRunEnhanceFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	outPath := filepath.Join(dir, "out.html")
	cfgPath := filepath.Join(dir, "techshop.yaml")

	page := `<html><body><div class="slider"><div class="trend-slide">A</div></div></body></html>`
	if err := os.WriteFile(in, []byte(page), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("selectors:\n  carousel: .slider\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, _, stderr := newApp("")
	if err := a.run(context.Background(), []string{"enhance", "-in", in, "-out", outPath, "-config", cfgPath}); err != nil {
		t.Fatalf("enhance: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `class="trend-slide is-active"`) {
		t.Fatalf("configured carousel not enhanced:\n%s", data)
	}
	if !strings.Contains(stderr.String(), "Page written to") {
		t.Fatalf("missing confirmation: %q", stderr.String())
	}
}

func TestRunEnhanceStdin(t *testing.T) {
	a, out, _ := newApp(`<div class="trend-carousel"><button class="trend-nav-next"></button></div>`)
	if err := a.run(context.Background(), []string{"enhance"}); err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !strings.Contains(out.String(), `disabled="true"`) {
		t.Fatalf("empty carousel controls not disabled:\n%s", out.String())
	}
}

func TestRunStyles(t *testing.T) {
	a, out, _ := newApp("")
	if err := a.run(context.Background(), []string{"styles", "-variant", "dark"}); err != nil {
		t.Fatalf("styles: %v", err)
	}
	if !strings.Contains(out.String(), "--field-error-color: #ff6b6b;") {
		t.Fatalf("dark tokens missing:\n%s", out.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	a, _, stderr := newApp("")
	if err := a.run(context.Background(), []string{"nope"}); err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(stderr.String(), "Usage: techshop-cli") {
		t.Fatalf("usage not printed")
	}
}

func TestExitCode(t *testing.T) {
	a, _, stderr := newApp("")
	if got := a.exitCode(context.Background(), []string{"id", "12345678Z"}); got != 0 {
		t.Fatalf("valid id exit code = %d", got)
	}
	if got := a.exitCode(context.Background(), []string{"id", "12345678A"}); got != 1 {
		t.Fatalf("invalid id exit code = %d", got)
	}
	if stderr.Len() != 0 {
		t.Fatalf("rejections must not print an error: %q", stderr.String())
	}
	if got := a.exitCode(context.Background(), []string{"enhance", "-in", filepath.Join(t.TempDir(), "missing.html")}); got != 1 {
		t.Fatalf("missing input exit code = %d", got)
	}
	if !strings.HasPrefix(stderr.String(), "techshop-cli: enhance:") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
