// Package web holds the upload page served at "/".
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"svw.info/cube/internal/domain"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

// Field is one file input of the upload form.
type Field struct {
	Name  string
	Label string
}

// UploadFields lists one input per face, in cube string order.
func UploadFields() []Field {
	out := make([]Field, 0, len(domain.StateOrder))
	for _, f := range domain.StateOrder {
		out = append(out, Field{Name: strings.ToLower(f.String()), Label: f.String()})
	}
	return out
}

// StaticFS serves the embedded /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(Assets, "templates/*.tmpl"))
}
