package service

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"chatreport/internal/modules/session/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = map[string]any{
	"bool": domain.FormatBool,
}

// Renderer turns a report into its plain-text and HTML documents.
type Renderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func NewRenderer() (*Renderer, error) {
	text, err := texttemplate.New("log.txt.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/log.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	html, err := htmltemplate.New("result.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/result.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	return &Renderer{text: text, html: html}, nil
}

func (r *Renderer) RenderText(report domain.Report) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := r.text.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) RenderHTML(report domain.Report) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := r.html.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return buf.Bytes(), nil
}
