package fields_test

import (
	"math"
	"testing"

	"github.com/goliatone/go-techshop/pkg/fields"
)

func TestQuantityBounds(t *testing.T) {
	bounds := fields.NewBounds(1, 10)
	for v := 1; v <= 10; v++ {
		if !fields.Quantity(itoa(v), bounds) {
			t.Errorf("expected %d to be accepted", v)
		}
	}
	for _, in := range []string{"0", "11", "-1", "abc", "", " ", "+"} {
		if fields.Quantity(in, bounds) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}

func TestQuantityParsesLikeBrowser(t *testing.T) {
	bounds := fields.NewBounds(1, 10)
	for _, in := range []string{" 5", "5abc", "+3", "7.9"} {
		if !fields.Quantity(in, bounds) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
}

func TestParseBoundsIgnoresMissingAttributes(t *testing.T) {
	bounds := fields.ParseBounds("", "5")
	if bounds.Min != nil {
		t.Fatalf("expected missing min to stay unbounded")
	}
	if !fields.Quantity("-100", bounds) {
		t.Fatalf("expected value below an unbounded min to pass")
	}
	if fields.Quantity("6", bounds) {
		t.Fatalf("expected value above max to fail")
	}
}

func TestParseIntSaturates(t *testing.T) {
	v, ok := fields.ParseInt("999999999999999999999999")
	if !ok || v != math.MaxInt {
		t.Fatalf("expected saturation to MaxInt, got %d (%v)", v, ok)
	}
}

func TestQuantityMessage(t *testing.T) {
	msgs := fields.DefaultMessages()
	if got, want := msgs.QuantityMessage(fields.NewBounds(1, 10)), "La quantitat ha d'estar entre 1 i 10"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := msgs.QuantityMessage(fields.ParseBounds("1", "")); got != "La quantitat ha d'estar entre 1 i NaN" {
		t.Fatalf("unexpected message for open bound: %q", got)
	}
}

func itoa(v int) string {
	if v == 10 {
		return "10"
	}
	return string(rune('0' + v))
}
