package controller

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// templateFuncs extends sprig with helpers for score reports.
func templateFuncs() template.FuncMap {
	title := cases.Title(language.English)

	funcs := sprig.TxtFuncMap()
	funcs["label"] = func(s string) string {
		return title.String(strings.ReplaceAll(s, "_", " "))
	}

	return funcs
}

// RenderTemplate executes a user supplied text template over reports. The
// template sees the report list as dot.
func RenderTemplate(text string, reports []m.Report) (string, error) {
	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parse template: %w", m.ErrConfiguration, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, reports); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
