// Package i18n translates user-facing strings. Catalogs are embedded YAML
// files, one per language, mapping English keys to translations.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator maps an English key to its display string.
type Translator interface {
	Translate(key string) string
}

// Identity is a Translator that returns keys unchanged.
type Identity struct{}

func (Identity) Translate(key string) string { return key }

// Catalog translates through golang.org/x/text message catalogs.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New builds a Catalog for the given BCP 47 language. Unknown or unsupported
// languages fall back to English, which returns keys unchanged.
func New(lang string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := loadLocales(b); err != nil {
		return nil, err
	}

	tag := language.English
	if lang != "" {
		requested, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", lang, err)
		}
		supported := append([]language.Tag{language.English}, b.Languages()...)
		_, idx, conf := language.NewMatcher(supported).Match(requested)
		if conf != language.No {
			tag = supported[idx]
		}
	}

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// Language returns the matched language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Translate returns the translation of key, or key itself when the catalog
// has no entry for it. Keys are literal text, not format strings.
func (c *Catalog) Translate(key string) string {
	return c.printer.Sprintf(escape(key))
}

func loadLocales(b *catalog.Builder) error {
	files, err := locales.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales: %w", err)
	}

	for _, f := range files {
		name := f.Name()
		content, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return fmt.Errorf("read locale %s: %w", name, err)
		}

		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return fmt.Errorf("locale file %s: %w", name, err)
		}

		var strs map[string]string
		if err := yaml.Unmarshal(content, &strs); err != nil {
			return fmt.Errorf("parse locale %s: %w", name, err)
		}
		for k, v := range strs {
			if err := b.SetString(tag, escape(k), escape(v)); err != nil {
				return fmt.Errorf("locale %s key %q: %w", name, k, err)
			}
		}
	}
	return nil
}

// escape protects literal percent signs from the message formatter.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
