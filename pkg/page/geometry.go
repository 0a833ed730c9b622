package page

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-techshop/pkg/widgets"
)

// Geometry reports the viewport box of an element.
type Geometry interface {
	Rect(el *goquery.Selection) widgets.Rect
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(el *goquery.Selection) widgets.Rect

// Rect implements Geometry.
func (f GeometryFunc) Rect(el *goquery.Selection) widgets.Rect { return f(el) }

// RectAttr is the attribute AttrGeometry reads by default.
const RectAttr = "data-rect"

// AttrGeometry reads "left top width height" from an attribute. Elements
// without a well formed attribute report a zero box.
type AttrGeometry struct {
	Attr string
}

// Rect implements Geometry.
func (g AttrGeometry) Rect(el *goquery.Selection) widgets.Rect {
	attr := g.Attr
	if attr == "" {
		attr = RectAttr
	}
	raw, ok := el.Attr(attr)
	if !ok {
		return widgets.Rect{}
	}
	parts := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	if len(parts) != 4 {
		return widgets.Rect{}
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return widgets.Rect{}
		}
		vals[i] = v
	}
	return widgets.Rect{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}
}
