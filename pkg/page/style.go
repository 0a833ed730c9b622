package page

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type declaration struct {
	prop  string
	value string
}

func parseStyle(raw string) []declaration {
	var out []declaration
	for _, chunk := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(chunk, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value+";")
	}
	return strings.Join(parts, " ")
}

// setStyle updates inline style properties in place, appending new ones in
// name order.
func setStyle(el *goquery.Selection, props map[string]string) {
	if el.Length() == 0 || len(props) == 0 {
		return
	}
	el.Each(func(_ int, s *goquery.Selection) {
		decls := parseStyle(s.AttrOr("style", ""))
		seen := make(map[string]bool, len(decls))
		for i := range decls {
			if v, ok := props[decls[i].prop]; ok {
				decls[i].value = v
				seen[decls[i].prop] = true
			}
		}
		added := make([]string, 0, len(props))
		for prop := range props {
			if !seen[prop] {
				added = append(added, prop)
			}
		}
		sort.Strings(added)
		for _, prop := range added {
			decls = append(decls, declaration{prop: prop, value: props[prop]})
		}
		s.SetAttr("style", formatStyle(decls))
	})
}

// StyleValue returns an inline style property of the first element.
func StyleValue(el *goquery.Selection, prop string) string {
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range parseStyle(el.First().AttrOr("style", "")) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}
