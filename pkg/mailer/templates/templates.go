// Package templates renders the transactional emails. Every email is a trio of
// files: <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var files embed.FS

const Welcome = "welcome"

var ErrUnknownTemplate = errors.New("unknown email template")

var funcs = map[string]any{
	"now":     func() time.Time { return time.Now().UTC() },
	"upper":   strings.ToUpper,
	"default": defaultFn,
}

// Parsed once; a broken template fails at startup, not on the first send.
var (
	textSet = texttpl.Must(texttpl.New("text").Funcs(funcs).ParseFS(files, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet = htmpl.Must(htmpl.New("html").Funcs(funcs).ParseFS(files, "*.html.tmpl"))
)

// defaultFn backs {{ .Value | default "Fallback" }}. Blank strings and zero
// values take the fallback.
func defaultFn(fallback, value any) any {
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}
	if rv := reflect.ValueOf(value); !rv.IsValid() || rv.IsZero() {
		return fallback
	}
	return value
}

// Render executes the three parts of the named email.
func Render(name string, data any) (subject, text, html string, err error) {
	if textSet.Lookup(name+".subject.tmpl") == nil || htmlSet.Lookup(name+".html.tmpl") == nil {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := textSet.ExecuteTemplate(&buf, name+".subject.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if textSet.Lookup(name+".text.tmpl") != nil {
		if err := textSet.ExecuteTemplate(&buf, name+".text.tmpl", data); err != nil {
			return "", "", "", fmt.Errorf("render %s text: %w", name, err)
		}
		text = buf.String()
	}

	buf.Reset()
	if err := htmlSet.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", "", "", fmt.Errorf("render %s html: %w", name, err)
	}
	return subject, text, buf.String(), nil
}
