// Package view renders a composed page to HTML. Templates and static
// assets are embedded in the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Zachkp/portfolio/internal/compose"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Meta carries document level settings.
type Meta struct {
	// Title overrides the document title; empty uses the page title.
	Title       string
	Description string
}

type document struct {
	Title       string
	Description string
	Page        compose.Page
}

// Renderer renders pages with the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"ms": func(d time.Duration) int64 { return d.Milliseconds() },
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes page as a complete HTML document.
func (r *Renderer) Render(w io.Writer, page compose.Page, meta Meta) error {
	doc := document{Title: meta.Title, Description: meta.Description, Page: page}
	if doc.Title == "" {
		doc.Title = page.Title
	}
	if err := r.tmpl.ExecuteTemplate(w, "page.html", doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderBytes renders page into memory.
func (r *Renderer) RenderBytes(page compose.Page, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Static returns the stylesheet and scripts referenced by the page.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static assets missing: " + err.Error())
	}
	return sub
}

// WriteSite writes index.html and the static assets under dir.
func WriteSite(dir string, html []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), html, 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	static := Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", path, err)
		}
		return nil
	})
}
