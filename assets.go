package techshop

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-techshop/pkg/render/template/pongo"
	"github.com/goliatone/go-techshop/pkg/styles"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName is the bundled stylesheet inside AssetsFS.
const StylesheetName = "techshop.css"

// AssetsFS exposes the bundled stylesheet so applications can serve it.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(techshop.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// TemplatesFS exposes the built-in snippet templates so callers can copy or
// extend them.
func TemplatesFS() fs.FS {
	return pongo.TemplatesFS()
}

// Stylesheet returns a :root block with the theme tokens as custom
// properties followed by the bundled stylesheet. A nil manifest uses the
// built-in theme.
func Stylesheet(manifest *theme.Manifest, variant string) (string, error) {
	css, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		return "", fmt.Errorf("techshop: read stylesheet: %w", err)
	}

	tokens := styles.Resolve(manifest, variant)
	vars := tokens.CSSVars()

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range tokens.Keys() {
		name := "--" + strings.ReplaceAll(key, ".", "-")
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n\n")
	b.Write(css)
	return b.String(), nil
}
