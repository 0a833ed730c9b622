package fields

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapErrors(t *testing.T) {
	payload := map[string][]string{
		"username":         {" El nom ja existeix ", "El nom ja existeix"},
		"/body/email":      {"Correu duplicat"},
		"data.address":     {"Adreça incompleta"},
		"__all__":          {"Torna-ho a provar"},
		"card.number":      {"Targeta rebutjada"},
		"password":         {"  "},
		"non_field_errors": {"Torna-ho a provar"},
	}

	got := MapErrors(payload, CheckoutFields)
	want := ErrorMapping{
		Fields: map[string][]string{
			FieldUsername: {"El nom ja existeix"},
			FieldEmail:    {"Correu duplicat"},
			FieldAddress:  {"Adreça incompleta"},
		},
		Form: []string{"Torna-ho a provar", "Targeta rebutjada"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorsEmpty(t *testing.T) {
	if m := MapErrors(nil, CheckoutFields); !m.Empty() {
		t.Fatalf("expected empty mapping, got %+v", m)
	}
	if m := MapErrors(map[string][]string{"email": {""}}, CheckoutFields); !m.Empty() {
		t.Fatalf("blank messages should be dropped, got %+v", m)
	}
}

func TestPathSegments(t *testing.T) {
	cases := map[string][]string{
		"#/body/email":    {"body", "email"},
		"$.data.items[0]": {"data", "items", "0"},
		"a~1b":            {"a/b"},
		"":                {},
	}
	for in, want := range cases {
		got := pathSegments(in)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pathSegments(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}
