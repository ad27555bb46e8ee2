// Package i18n loads the pet's speech and interface strings per language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// The default pair every lookup falls back to.
const (
	DefaultLanguage = "zh-CN"
	DefaultSkin     = "girl-white"
)

type catalogFile struct {
	Locale string                         `yaml:"locale"`
	Name   string                         `yaml:"name"`
	UI     map[string]string              `yaml:"ui"`
	Pet    map[string]map[string][]string `yaml:"pet"`
}

// Catalog holds every loaded locale.
type Catalog struct {
	locales map[string]catalogFile
	order   []string
	tags    []language.Tag
	matcher language.Matcher
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

// Load returns the catalogs embedded in the binary.
func Load() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/*.yaml file from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: map[string]catalogFile{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if locale == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
		}
		if _, exists := c.locales[locale]; exists {
			return nil, fmt.Errorf("catalog %s: locale %q already defined", path, locale)
		}
		c.locales[locale] = file
		c.order = append(c.order, locale)
		c.tags = append(c.tags, tag)
	}

	if _, ok := c.locales[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default locale %s is not defined in catalogs", DefaultLanguage)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Languages returns the loaded locales in load order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Match returns the loaded locale that best serves value, which may be a
// BCP 47 tag or a POSIX locale such as "en_GB.UTF-8".
func (c *Catalog) Match(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" || value == "C" || value == "POSIX" {
		return DefaultLanguage
	}
	if _, ok := c.locales[value]; ok {
		return value
	}

	tag, err := language.Parse(value)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage
	}
	return c.order[index]
}

// Next returns the locale after current, for cycling through languages.
func (c *Catalog) Next(current string) string {
	for i, locale := range c.order {
		if locale == current {
			return c.order[(i+1)%len(c.order)]
		}
	}
	return DefaultLanguage
}

// Name returns the display name of a locale.
func (c *Catalog) Name(locale string) string {
	if file, ok := c.locales[locale]; ok && file.Name != "" {
		return file.Name
	}
	return locale
}

// Pool returns the lines a pet of skin says for category. An empty pool
// falls back to the default language and skin; nil means there is nothing
// to say.
func (c *Catalog) Pool(locale, skin, category string) []string {
	if lines := c.pool(locale, skin, category); len(lines) > 0 {
		return lines
	}
	return c.pool(DefaultLanguage, DefaultSkin, category)
}

func (c *Catalog) pool(locale, skin, category string) []string {
	file, ok := c.locales[locale]
	if !ok {
		return nil
	}
	lines := file.Pet[skin][category]
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Text returns an interface string, falling back to the default language
// and then to the key itself.
func (c *Catalog) Text(locale, key string) string {
	if v := c.locales[locale].UI[key]; v != "" {
		return v
	}
	if v := c.locales[DefaultLanguage].UI[key]; v != "" {
		return v
	}
	return key
}
