package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Catalog holds per-language message templates keyed by error code and
// hands out message tables matched against requested locales. Catalog
// documents map a BCP 47 language tag to code → template pairs:
//
//	es:
//	  required: Este campo es obligatorio
//	  min_length: Debe tener al menos %{min} caracteres
//
// Templates use named %{param} placeholders. Codes missing from a
// language fall back to the catalog's fallback table, English by
// default. Custom codes placed in a catalog are served through the
// ParseErrorCode hook.
type Catalog struct {
	tags     []language.Tag
	tables   map[language.Tag]map[string]string
	matcher  language.Matcher
	fallback validator.MessageTable
}

// CatalogOption configures a catalog.
type CatalogOption func(*Catalog)

// WithFallback sets the table used for codes and languages the catalog
// does not cover.
func WithFallback(table validator.MessageTable) CatalogOption {
	return func(c *Catalog) {
		c.fallback = table
	}
}

// NewCatalog creates an empty catalog. Load documents with LoadYAML or
// LoadJSON before requesting tables.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		tables:   make(map[language.Tag]map[string]string),
		fallback: English{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadYAML merges a YAML catalog document. Later loads override
// earlier templates for the same language and code.
func (c *Catalog) LoadYAML(data []byte) error {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrFailedToParseYAML, err)
	}
	return c.merge(doc)
}

// LoadJSON merges a JSON catalog document with the same structure as
// the YAML form.
func (c *Catalog) LoadJSON(data []byte) error {
	var doc map[string]map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrFailedToParseJSON, err)
	}
	return c.merge(doc)
}

func (c *Catalog) merge(doc map[string]map[string]string) error {
	if len(doc) == 0 {
		return ErrEmptyCatalog
	}

	for lang, templates := range doc {
		tag, err := language.Parse(lang)
		if err != nil {
			return errors.Join(ErrInvalidLanguageTag, fmt.Errorf("%q: %w", lang, err))
		}
		table, ok := c.tables[tag]
		if !ok {
			table = make(map[string]string, len(templates))
			c.tables[tag] = table
			c.tags = append(c.tags, tag)
		}
		for code, tmpl := range templates {
			table[code] = tmpl
		}
	}

	c.matcher = language.NewMatcher(c.tags)
	return nil
}

// Languages returns the loaded language tags in load order.
func (c *Catalog) Languages() []string {
	langs := make([]string, len(c.tags))
	for i, tag := range c.tags {
		langs[i] = tag.String()
	}
	return langs
}

// Table returns the message table best matching the requested locales,
// in preference order. With no match, or no loaded languages, the
// fallback table is returned.
func (c *Catalog) Table(locales ...string) validator.MessageTable {
	if c.matcher == nil {
		return c.fallback
	}

	requested := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		if tag, err := language.Parse(locale); err == nil {
			requested = append(requested, tag)
		}
	}
	if len(requested) == 0 {
		return c.fallback
	}

	_, index, confidence := c.matcher.Match(requested...)
	if confidence == language.No {
		return c.fallback
	}
	return &localized{
		templates: c.tables[c.tags[index]],
		fallback:  c.fallback,
	}
}

// localized serves one language's templates with per-code fallback.
type localized struct {
	templates map[string]string
	fallback  validator.MessageTable
}

func (l *localized) Required() string {
	return l.lookup(validator.CodeRequired, nil, l.fallback.Required)
}

func (l *localized) InvalidEmail() string {
	return l.lookup(validator.CodeInvalidEmail, nil, l.fallback.InvalidEmail)
}

func (l *localized) InvalidPhone() string {
	return l.lookup(validator.CodeInvalidPhone, nil, l.fallback.InvalidPhone)
}

func (l *localized) InvalidPattern() string {
	return l.lookup(validator.CodeInvalidPattern, nil, l.fallback.InvalidPattern)
}

func (l *localized) MinLength(n int) string {
	return l.lookup(validator.CodeMinLength, params("min", strconv.Itoa(n)), func() string {
		return l.fallback.MinLength(n)
	})
}

func (l *localized) MaxLength(n int) string {
	return l.lookup(validator.CodeMaxLength, params("max", strconv.Itoa(n)), func() string {
		return l.fallback.MaxLength(n)
	})
}

func (l *localized) MinValue(v float64) string {
	return l.lookup(validator.CodeMinValue, params("min", formatNumber(v)), func() string {
		return l.fallback.MinValue(v)
	})
}

func (l *localized) MaxValue(v float64) string {
	return l.lookup(validator.CodeMaxValue, params("max", formatNumber(v)), func() string {
		return l.fallback.MaxValue(v)
	})
}

func (l *localized) MinItems(n int) string {
	return l.lookup(validator.CodeMinItems, params("min", strconv.Itoa(n)), func() string {
		return l.fallback.MinItems(n)
	})
}

func (l *localized) MaxItems(n int) string {
	return l.lookup(validator.CodeMaxItems, params("max", strconv.Itoa(n)), func() string {
		return l.fallback.MaxItems(n)
	})
}

func (l *localized) InvalidFileFormat(allowed []string) string {
	return l.lookup(validator.CodeInvalidFileFormat, params("formats", strings.Join(allowed, ", ")), func() string {
		return l.fallback.InvalidFileFormat(allowed)
	})
}

func (l *localized) DateAfter(t time.Time) string {
	return l.lookup(validator.CodeDateAfter, params("date", t.Format("2006-01-02")), func() string {
		return l.fallback.DateAfter(t)
	})
}

func (l *localized) DateBefore(t time.Time) string {
	return l.lookup(validator.CodeDateBefore, params("date", t.Format("2006-01-02")), func() string {
		return l.fallback.DateBefore(t)
	})
}

func (l *localized) FieldDoesNotMatch() string {
	return l.lookup(validator.CodeFieldDoesNotMatch, nil, l.fallback.FieldDoesNotMatch)
}

func (l *localized) FieldIsNotAfter() string {
	return l.lookup(validator.CodeFieldIsNotAfter, nil, l.fallback.FieldIsNotAfter)
}

func (l *localized) ParseErrorCode(code string, value any) string {
	if tmpl, ok := l.templates[code]; ok {
		return substitute(tmpl, params("value", fmt.Sprint(value)))
	}
	return l.fallback.ParseErrorCode(code, value)
}

func (l *localized) lookup(code string, p map[string]string, fallback func() string) string {
	if tmpl, ok := l.templates[code]; ok {
		return substitute(tmpl, p)
	}
	return fallback()
}

func params(pairs ...string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces named %{key} placeholders, keeping unknown
// placeholders intact.
func substitute(tmpl string, p map[string]string) string {
	if len(p) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := p[name]; ok {
			return val
		}
		return match
	})
}
