package widgets

// Gallery tracks which image a product card shows. Thumbnails are identified
// by their position; a thumbnail with an empty target is inert.
type Gallery struct {
	targets      []string
	defaultImage string
	defaultThumb int
	image        string
	active       int
}

// NewGallery builds a gallery over the thumbnail targets. The default thumb
// is the first whose target equals defaultImage, or the first thumbnail.
// The main image starts on defaultImage with the default thumb active.
func NewGallery(defaultImage string, targets []string) Gallery {
	g := Gallery{
		targets:      append([]string(nil), targets...),
		defaultImage: defaultImage,
		defaultThumb: -1,
		active:       -1,
	}
	if len(targets) == 0 {
		g.image = defaultImage
		return g
	}
	g.defaultThumb = 0
	for i, target := range targets {
		if target != "" && target == defaultImage {
			g.defaultThumb = i
			break
		}
	}
	return g.Leave()
}

// Len returns the number of thumbnails.
func (g Gallery) Len() int { return len(g.targets) }

// Image returns the source currently shown by the main image.
func (g Gallery) Image() string { return g.image }

// Active returns the active thumbnail or -1.
func (g Gallery) Active() int { return g.active }

// DefaultImage returns the image restored on Leave.
func (g Gallery) DefaultImage() string { return g.defaultImage }

// DefaultThumb returns the thumbnail restored on Leave.
func (g Gallery) DefaultThumb() int { return g.defaultThumb }

// Hover shows the target of thumbnail i. It reports whether anything
// changed; out of range and inert thumbnails change nothing.
func (g Gallery) Hover(i int) (Gallery, bool) {
	if i < 0 || i >= len(g.targets) || g.targets[i] == "" {
		return g, false
	}
	if g.image == g.targets[i] && g.active == i {
		return g, false
	}
	g.image = g.targets[i]
	g.active = i
	return g, true
}

// Leave restores the default image and thumbnail.
func (g Gallery) Leave() Gallery {
	g.image = g.defaultImage
	g.active = g.defaultThumb
	return g
}

// GalleryView describes the rendered gallery.
type GalleryView struct {
	Image  string
	Thumbs []bool
}

// View renders the gallery state.
func (g Gallery) View() GalleryView {
	view := GalleryView{Image: g.image}
	if len(g.targets) == 0 {
		return view
	}
	view.Thumbs = make([]bool, len(g.targets))
	if g.active >= 0 {
		view.Thumbs[g.active] = true
	}
	return view
}
