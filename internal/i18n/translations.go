package i18n

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator maps a translated document name back to its original id
type Translator interface {
	FindOriginalID(collection, name string) (string, bool)
}

// TranslationEntry pairs an original id with its translated name
type TranslationEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// TranslationCollection is the translated entries of one compendium pack
type TranslationCollection struct {
	Collection string             `yaml:"collection"`
	Entries    []TranslationEntry `yaml:"entries"`
}

// Translations is a YAML backed Translator
type Translations struct {
	byCollection map[string]map[string]string
}

// LoadTranslations decodes a list of translation collections
func LoadTranslations(r io.Reader) (*Translations, error) {
	var collections []TranslationCollection
	if err := yaml.NewDecoder(r).Decode(&collections); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}
	return NewTranslations(collections), nil
}

// NewTranslations indexes collections by translated name
func NewTranslations(collections []TranslationCollection) *Translations {
	t := &Translations{byCollection: make(map[string]map[string]string)}
	for _, c := range collections {
		names, ok := t.byCollection[c.Collection]
		if !ok {
			names = make(map[string]string)
			t.byCollection[c.Collection] = names
		}
		for _, e := range c.Entries {
			if e.Name == "" || e.ID == "" {
				continue
			}
			names[strings.TrimSpace(e.Name)] = e.ID
		}
	}
	return t
}

// FindOriginalID returns the original id of a translated name
func (t *Translations) FindOriginalID(collection, name string) (string, bool) {
	if t == nil {
		return "", false
	}
	id, ok := t.byCollection[collection][strings.TrimSpace(name)]
	return id, ok
}

var _ Translator = (*Translations)(nil)
