// Package msg renders rule failure messages. It is a thin wrapper around
// go-i18n's Bundle/Localizer with an embedded English catalog; callers may
// load additional message files to localize the warnings themselves.
package msg

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var messageFS embed.FS

// Formatter renders message kinds with template data through go-i18n.
type Formatter struct {
	bundle *i18n.Bundle
	langs  []string
}

// NewFormatter builds a Formatter preferring the given locales, falling
// back to English. Unparseable locale codes are skipped.
func NewFormatter(locales ...string) *Formatter {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(messageFS, "active.*.toml")
	for _, file := range files {
		// The embedded catalogs are validated by the package tests.
		_, _ = bundle.LoadMessageFileFS(messageFS, file)
	}

	var langs []string
	for _, l := range locales {
		if tag, err := language.Parse(l); err == nil {
			langs = append(langs, tag.String())
		}
	}
	langs = append(langs, language.English.String())

	return &Formatter{bundle: bundle, langs: langs}
}

// LoadMessageFile adds a message catalog from disk, e.g. active.fr.toml.
func (f *Formatter) LoadMessageFile(path string) error {
	_, err := f.bundle.LoadMessageFile(path)
	return err
}

// Format renders the message identified by kind with the given template
// data. Unknown kinds render as the kind itself so a misconfigured catalog
// degrades to a diagnostic rather than an empty message.
func (f *Formatter) Format(kind string, data map[string]any) string {
	localizer := i18n.NewLocalizer(f.bundle, f.langs...)
	message, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    kind,
		TemplateData: data,
	})
	if err != nil || message == "" {
		return kind
	}
	return message
}
