package formula

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

//go:embed formula.rb.tmpl
var formulaTemplate string

// TemplateData fills the embedded formula scaffold.
type TemplateData struct {
	Name     string // binary name, e.g. "tapsmith"
	Desc     string
	Homepage string
	Repo     string // GitHub owner/repo the release artifacts live under
	Version  string
}

// Render produces a new formula from the embedded template. The
// generated formula conforms to the layout Verify checks for; its
// sha256 declarations carry placeholder values until the first update.
func Render(data TemplateData) ([]byte, error) {
	tmpl, err := template.New("formula").Funcs(template.FuncMap{
		"class": className,
	}).Parse(formulaTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse formula template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render formula template: %w", err)
	}
	return buf.Bytes(), nil
}

// className converts a binary name into a Homebrew formula class name,
// e.g. "my-tool" becomes "MyTool".
func className(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})

	var b strings.Builder
	for _, part := range parts {
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
