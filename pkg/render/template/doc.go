// Package template defines the renderer contract used to turn page snippets
// (inline field errors, flash messages) into markup. The pongo subpackage
// provides the pongo2-backed implementation and the embedded defaults.
package template
