// Package web holds the site's embedded templates, static assets and the
// default page content.
package web

import "embed"

// Templates holds the html/template sources under templates/.
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the files served under /static/.
//
//go:embed static
var Static embed.FS

// Content is the default site content (songs, shows, links).
//
//go:embed content.yaml
var Content []byte
