// Package i18n holds the supported locales and the embedded message catalogs.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

// Locale is one of the five supported site locales.
type Locale string

const (
	English    Locale = "en"
	Spanish    Locale = "es"
	Portuguese Locale = "pt"
	French     Locale = "fr"
	German     Locale = "de"
)

// Default is used when no locale is requested or negotiation fails.
const Default = English

// Supported lists every locale in display order.
var Supported = []Locale{English, Spanish, Portuguese, French, German}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.Portuguese,
	language.French,
	language.German,
})

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}

func (l Locale) String() string { return string(l) }

// ParseLocale accepts a supported locale code, case-insensitively.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", apperr.Invalid(apperr.CodeInvalidLocale, "locale", "unsupported locale %q", s)
	}
	return l, nil
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

//go:embed locales/*.yaml
var catalogFS embed.FS

// Catalog is a flattened message table for one locale. Nested YAML keys are
// joined with dots; sequences are kept as lists.
type Catalog struct {
	texts map[string]string
	lists map[string][]string
}

// Bundle holds the catalogs of every supported locale.
type Bundle struct {
	catalogs map[Locale]*Catalog
}

var (
	defaultBundle     *Bundle
	defaultBundleErr  error
	defaultBundleOnce sync.Once
)

// Messages returns the process-wide bundle loaded from the embedded catalogs.
// It panics if the embedded catalogs are malformed, which is a build defect.
func Messages() *Bundle {
	defaultBundleOnce.Do(func() {
		defaultBundle, defaultBundleErr = Load()
	})
	if defaultBundleErr != nil {
		panic(defaultBundleErr)
	}
	return defaultBundle
}

// Load parses the embedded catalogs.
func Load() (*Bundle, error) {
	b := &Bundle{catalogs: make(map[Locale]*Catalog, len(Supported))}
	for _, loc := range Supported {
		data, err := catalogFS.ReadFile("locales/" + string(loc) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", loc, err)
		}
		c, err := parseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", loc, err)
		}
		b.catalogs[loc] = c
	}
	return b, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	c := &Catalog{texts: map[string]string{}, lists: map[string][]string{}}
	c.flatten("", raw)
	return c, nil
}

func (c *Catalog) flatten(prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			c.flatten(join(prefix, k), child)
		}
	case map[any]any:
		for k, child := range t {
			c.flatten(join(prefix, fmt.Sprint(k)), child)
		}
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, fmt.Sprint(item))
		}
		c.lists[prefix] = items
	case nil:
	default:
		c.texts[prefix] = fmt.Sprint(t)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Text returns the message for key, falling back to English and then to
// the key itself.
func (b *Bundle) Text(loc Locale, key string) string {
	if c, ok := b.catalogs[loc]; ok {
		if s, ok := c.texts[key]; ok {
			return s
		}
	}
	if c, ok := b.catalogs[Default]; ok {
		if s, ok := c.texts[key]; ok {
			return s
		}
	}
	return key
}

// List returns the list for key, falling back to English.
func (b *Bundle) List(loc Locale, key string) []string {
	if c, ok := b.catalogs[loc]; ok {
		if l, ok := c.lists[key]; ok && len(l) > 0 {
			return l
		}
	}
	if c, ok := b.catalogs[Default]; ok {
		return c.lists[key]
	}
	return nil
}

// Len returns the length of the English list for key. Index choices are made
// against the English list so every locale picks the same position.
func (b *Bundle) Len(key string) int {
	return len(b.List(Default, key))
}

// Pick returns item idx of the list for key, wrapping idx into range. If the
// localized list is shorter than the English one, the English item is used.
func (b *Bundle) Pick(loc Locale, key string, idx int) string {
	n := b.Len(key)
	if n == 0 {
		return key
	}
	idx = ((idx % n) + n) % n
	if l := b.List(loc, key); idx < len(l) {
		return l[idx]
	}
	return b.List(Default, key)[idx]
}

// Format substitutes {name} placeholders in s.
func Format(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(vars)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Keys returns the sorted text keys defined for loc. Used by catalog tests.
func (b *Bundle) Keys(loc Locale) []string {
	c, ok := b.catalogs[loc]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(c.texts)+len(c.lists))
	for k := range c.texts {
		keys = append(keys, k)
	}
	for k := range c.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
