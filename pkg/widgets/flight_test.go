package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-techshop/pkg/widgets"
)

func TestPlanFlight(t *testing.T) {
	image := widgets.Rect{Left: 100, Top: 200, Width: 200, Height: 200}
	cart := widgets.Rect{Left: 900, Top: 10, Width: 100, Height: 100}

	flight := widgets.PlanFlight(image, cart)

	// centres: image (200, 300), cart (950, 60); scale 0.5 * 0.65
	if flight.TranslateX != 750 || flight.TranslateY != -240 {
		t.Fatalf("unexpected translation %v,%v", flight.TranslateX, flight.TranslateY)
	}
	if got, want := flight.Transform(), "translate(750px, -240px) scale(0.325)"; got != want {
		t.Fatalf("transform: got %q, want %q", got, want)
	}

	wantStart := map[string]string{
		"left": "100px", "top": "200px", "width": "200px", "height": "200px", "opacity": "1",
	}
	if diff := cmp.Diff(wantStart, flight.StartStyle()); diff != "" {
		t.Fatalf("start style mismatch (-want +got):\n%s", diff)
	}
	if flight.EndStyle()["opacity"] != "0" {
		t.Fatalf("expected clone to fade out")
	}
}

func TestPlanFlightZeroSizedImage(t *testing.T) {
	flight := widgets.PlanFlight(widgets.Rect{}, widgets.Rect{Width: 10, Height: 10})
	if flight.Scale != 1 {
		t.Fatalf("expected neutral scale, got %v", flight.Scale)
	}
}
