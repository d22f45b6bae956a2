// Package i18n loads the localization catalogs and the optional translation
// records used to map a translated class name back to its original id.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every lookup falls back to
const BaseLocale = "en"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every locale's messages
type Bundle struct {
	locales map[string]map[string]string
}

// LoadEmbedded loads the catalogs compiled into the binary
func LoadEmbedded() (*Bundle, error) {
	return LoadFS(embeddedFS)
}

// LoadFS loads catalogs laid out as locales/<locale>/<namespace>.yaml
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: make(map[string]map[string]string)}
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		locale := path.Base(path.Dir(p))
		if file.Locale != locale {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.Locale, locale)
		}

		messages, ok := b.locales[locale]
		if !ok {
			messages = make(map[string]string)
			b.locales[locale] = messages
		}
		for key, value := range file.Messages {
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("catalog %s: message key cannot be blank", p)
			}
			if _, dup := messages[key]; dup {
				return nil, fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
			}
			messages[key] = value
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	return b, nil
}

// Locales lists the loaded locales
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Localizer resolves keys for one locale, falling back to the base locale
type Localizer struct {
	locale   string
	messages map[string]string
	printer  *message.Printer
}

// Localizer builds a localizer for locale. Unknown locales use the base one.
func (b *Bundle) Localizer(locale string) (*Localizer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	merged := make(map[string]string, len(b.locales[BaseLocale]))
	for k, v := range b.locales[BaseLocale] {
		merged[k] = v
	}
	for k, v := range b.locales[locale] {
		merged[k] = v
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.Make(BaseLocale)))
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := builder.SetString(tag, k, merged[k]); err != nil {
			return nil, fmt.Errorf("register message %q: %w", k, err)
		}
	}

	return &Localizer{
		locale:   locale,
		messages: merged,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Locale is the locale the localizer was built for
func (l *Localizer) Locale() string { return l.locale }

// Localize returns the message for key, or key itself when there is none
func (l *Localizer) Localize(key string) string {
	if value, ok := l.messages[key]; ok {
		return value
	}
	return key
}

// Has reports whether key has a message
func (l *Localizer) Has(key string) bool {
	_, ok := l.messages[key]
	return ok
}

// Format localizes key and substitutes args into it
func (l *Localizer) Format(key string, args ...any) string {
	if !l.Has(key) {
		return key
	}
	return l.printer.Sprintf(key, args...)
}
