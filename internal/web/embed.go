// Package web bundles the page templates and browser assets into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/getmentor/formsdemo/pkg/datauri"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// AssetsPath is where AssetsFS is mounted
const AssetsPath = "/assets"

// Funcs are the helpers available to every page template
var Funcs = template.FuncMap{
	"pictureURL": pictureURL,
	"isImage":    datauri.IsImage,
	"selected":   func(current, option string) bool { return current == option },
	"asset":      func(name string) string { return AssetsPath + "/" + name },
}

// pictureURL marks an image data URL safe for an img src. Anything else is
// returned empty so html/template never emits it.
func pictureURL(uri string) template.URL {
	if !datauri.IsImage(uri) {
		return ""
	}
	return template.URL(uri) //nolint:gosec
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(embeddedTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// AssetsFS exposes the embedded CSS/JS for serving under AssetsPath
func AssetsFS() http.FileSystem {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return http.FS(embeddedAssets)
	}
	return http.FS(sub)
}
