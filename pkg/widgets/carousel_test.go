package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-techshop/pkg/widgets"
)

func TestCarouselWrapsAround(t *testing.T) {
	c := widgets.NewCarousel(3)
	if c.Index() != 0 {
		t.Fatalf("expected first slide active, got %d", c.Index())
	}

	c = c.Prev()
	if c.Index() != 2 {
		t.Fatalf("prev from 0: got %d, want 2", c.Index())
	}
	c = c.Next().Next()
	if c.Index() != 1 {
		t.Fatalf("next twice from 2: got %d, want 1", c.Index())
	}
	if c = c.Show(-4); c.Index() != 2 {
		t.Fatalf("show(-4): got %d, want 2", c.Index())
	}
}

func TestCarouselSingleSlideIsInert(t *testing.T) {
	c := widgets.NewCarousel(1)
	if c.Enabled() {
		t.Fatalf("expected single-slide carousel to be disabled")
	}
	if got := c.Next().Prev().Show(5).Index(); got != 0 {
		t.Fatalf("expected active slide to stay 0, got %d", got)
	}

	want := widgets.CarouselView{
		Slides:           []widgets.SlideView{{Active: true}},
		ControlsDisabled: true,
	}
	if diff := cmp.Diff(want, c.View()); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestCarouselEmpty(t *testing.T) {
	var c widgets.Carousel
	if c.Index() != -1 {
		t.Fatalf("expected no active slide")
	}
	view := c.Next().View()
	if !view.ControlsDisabled || view.Slides != nil {
		t.Fatalf("unexpected view for empty carousel: %+v", view)
	}
}

func TestCarouselViewMarksOneActive(t *testing.T) {
	view := widgets.NewCarousel(3).Next().View()
	want := []widgets.SlideView{{Hidden: true}, {Active: true}, {Hidden: true}}
	if diff := cmp.Diff(want, view.Slides); diff != "" {
		t.Fatalf("slides mismatch (-want +got):\n%s", diff)
	}
}
