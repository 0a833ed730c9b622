package widgets

// Carousel tracks the active slide of one carousel. The zero value is a
// carousel without slides.
type Carousel struct {
	index int
	count int
}

// NewCarousel returns a carousel of count slides with the first one active.
func NewCarousel(count int) Carousel {
	if count < 0 {
		count = 0
	}
	return Carousel{count: count}
}

// Len returns the number of slides.
func (c Carousel) Len() int { return c.count }

// Index returns the active slide, or -1 when there are no slides.
func (c Carousel) Index() int {
	if c.count == 0 {
		return -1
	}
	return c.index
}

// Enabled reports whether navigation is possible. Carousels with zero or one
// slide keep their controls disabled.
func (c Carousel) Enabled() bool {
	return c.count > 1
}

// Show activates slide i, wrapping around in both directions.
func (c Carousel) Show(i int) Carousel {
	if !c.Enabled() {
		return c
	}
	c.index = ((i % c.count) + c.count) % c.count
	return c
}

// Next activates the following slide.
func (c Carousel) Next() Carousel { return c.Show(c.index + 1) }

// Prev activates the preceding slide.
func (c Carousel) Prev() Carousel { return c.Show(c.index - 1) }

// SlideView describes one slide.
type SlideView struct {
	Active bool
	Hidden bool
}

// CarouselView describes the rendered carousel.
type CarouselView struct {
	Slides           []SlideView
	ControlsDisabled bool
}

// View renders the carousel state.
func (c Carousel) View() CarouselView {
	view := CarouselView{ControlsDisabled: !c.Enabled()}
	if c.count == 0 {
		return view
	}
	view.Slides = make([]SlideView, c.count)
	for i := range view.Slides {
		active := i == c.index
		view.Slides[i] = SlideView{Active: active, Hidden: !active}
	}
	return view
}
