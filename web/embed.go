// Package web holds embedded HTML templates for the documentation pages.
package web

import "embed"

// TemplateFS contains all HTML templates.
//
//go:embed templates
var TemplateFS embed.FS
