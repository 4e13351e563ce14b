// Package theme composes Swagger UI stylesheets.
//
// Every theme shares a base stylesheet. A named theme appends its overlay
// after a single newline:
//
//	css := theme.CSS(theme.Dracula) // base + "\n" + dracula overlay
//
// Unknown names fall back to the base stylesheet, so CSS never fails.
// The stylesheets are embedded in the binary and read once at init.
package theme
