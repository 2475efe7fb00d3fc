package content

import "embed"

// files carries the static product content (guides, partner catalog,
// product picks, blog posts) into the binary.
//
//go:embed *.yaml
var files embed.FS
