// File: catalog.go
// Title: File-Backed Message Catalog
// Description: Implements a MessageSource backed by per-locale TOML or
//              YAML files with dot-notation keys, template interpolation,
//              pluralization, and locale matching with fallback.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial catalog implementation

package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/msto63/corekit/core/errorx"
	"github.com/msto63/corekit/core/log"
	"github.com/msto63/corekit/utils/stringx"
)

// Format selects the catalog file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML restricts loading to .toml files
	FormatTOML

	// FormatYAML restricts loading to .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// extensions returns the file extensions the format accepts
func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// ReloadHandler is called after a locale has been reloaded from disk
type ReloadHandler func(locale language.Tag)

// Options configures a Catalog
type Options struct {
	Dir           string       // directory containing locale files, e.g. en.toml
	DefaultLocale language.Tag // fallback locale, must have a catalog file
	Format        Format       // file format, default auto-detect
	Logger        *log.Logger  // defaults to the no-op logger
}

// Catalog is a MessageSource backed by one message file per locale.
// File names carry the locale: "en.toml", "de-AT.yaml". Keys use dot
// notation for nested tables; array values hold plural forms. Message
// templates use text/template syntax and are compiled once per key.
//
// Locale resolution goes through a language matcher, so a request for
// "en-GB" is served by an "en" catalog when no closer match exists, and
// unknown locales fall back to the default locale.
type Catalog struct {
	mu        sync.RWMutex
	dir       string
	format    Format
	fallback  language.Tag
	logger    *log.Logger
	messages map[language.Tag]map[string]interface{}
	tags     []language.Tag // matcher preference order, fallback first
	matcher  language.Matcher
	hooks    []ReloadHandler

	tmu       sync.Mutex // guards templates
	templates map[string]*template.Template
}

// NewCatalog loads all locale files from the configured directory.
// The default locale must be among them.
func NewCatalog(options Options) (*Catalog, error) {
	if stringx.IsBlank(options.Dir) {
		return nil, errorx.New("catalog directory cannot be empty").
			WithCode(errorx.CodeValidationFailed).
			WithOperation("i18n.NewCatalog")
	}
	if options.DefaultLocale == language.Und {
		return nil, errorx.New("default locale cannot be empty").
			WithCode(errorx.CodeValidationFailed).
			WithOperation("i18n.NewCatalog")
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Nop()
	}

	c := &Catalog{
		dir:       options.Dir,
		format:    options.Format,
		fallback:  options.DefaultLocale,
		logger:    logger.WithName("i18n"),
		messages:  make(map[language.Tag]map[string]interface{}),
		templates: make(map[string]*template.Template),
	}

	if err := c.Reload(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	_, ok := c.messages[c.fallback]
	c.mu.RUnlock()
	if !ok {
		return nil, errorx.Newf("no catalog file for default locale %q", c.fallback).
			WithCode(errorx.CodeLocaleUnknown).
			WithOperation("i18n.NewCatalog").
			WithDetail("directory", c.dir)
	}

	return c, nil
}

// Reload re-reads every locale file from the catalog directory and
// replaces the in-memory state. The template cache is dropped.
func (c *Catalog) Reload() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return errorx.Wrap(err, "cannot read catalog directory").
			WithCode(errorx.CodeNotFound).
			WithOperation("Catalog.Reload").
			WithDetail("directory", c.dir)
	}

	loaded := make(map[language.Tag]map[string]interface{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(c.dir, entry.Name())
		tag, tree, err := c.parseFile(path)
		if err != nil {
			if errorx.HasCode(err, errorx.CodeInvalidInput) {
				continue // not a catalog file
			}
			return err
		}
		loaded[tag] = tree
	}

	c.mu.Lock()
	c.messages = loaded
	c.rebuildMatcher()
	c.mu.Unlock()
	c.dropTemplates()

	c.logger.Debug("catalog loaded", log.Field("locales", len(loaded)))
	return nil
}

// parseFile loads one locale file. Files with a foreign extension or an
// unparseable locale name report CodeInvalidInput so directory scans can
// skip them; broken content reports CodeCatalogParse.
func (c *Catalog) parseFile(path string) (language.Tag, map[string]interface{}, error) {
	ext := strings.ToLower(filepath.Ext(path))

	supported := false
	for _, e := range c.format.extensions() {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return language.Und, nil, errorx.Newf("not a catalog file: %s", path).
			WithCode(errorx.CodeInvalidInput)
	}

	name := strings.TrimSuffix(filepath.Base(path), ext)
	tag, err := language.Parse(name)
	if err != nil {
		c.logger.Warn("skipping file with invalid locale name",
			log.Field("file", filepath.Base(path)))
		return language.Und, nil, errorx.Wrapf(err, "invalid locale %q", name).
			WithCode(errorx.CodeInvalidInput)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return language.Und, nil, errorx.Wrap(err, "cannot read catalog file").
			WithCode(errorx.CodeCatalogParse).
			WithOperation("Catalog.parseFile").
			WithDetail("file", path)
	}

	tree := make(map[string]interface{})
	switch ext {
	case ".toml":
		err = toml.Unmarshal(content, &tree)
	default:
		err = yaml.Unmarshal(content, &tree)
	}
	if err != nil {
		return language.Und, nil, errorx.Wrap(err, "cannot parse catalog file").
			WithCode(errorx.CodeCatalogParse).
			WithOperation("Catalog.parseFile").
			WithDetail("file", path)
	}

	return tag, tree, nil
}

// reloadLocale re-reads a single locale file and notifies reload hooks.
// Used by the watcher.
func (c *Catalog) reloadLocale(path string) error {
	tag, tree, err := c.parseFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.messages[tag] = tree
	c.rebuildMatcher()
	hooks := append([]ReloadHandler(nil), c.hooks...)
	c.mu.Unlock()
	c.dropTemplates()

	c.logger.Info("locale reloaded", log.Field("locale", tag.String()))
	for _, hook := range hooks {
		hook(tag)
	}
	return nil
}

// removeLocale drops a locale, keeping the default locale in place even
// when its file disappears
func (c *Catalog) removeLocale(tag language.Tag) {
	if tag == c.fallback {
		c.logger.Warn("default locale file removed, keeping loaded state",
			log.Field("locale", tag.String()))
		return
	}

	c.mu.Lock()
	delete(c.messages, tag)
	c.rebuildMatcher()
	c.mu.Unlock()

	c.logger.Info("locale removed", log.Field("locale", tag.String()))
}

// rebuildMatcher recomputes the locale matcher. Caller holds the write
// lock. The fallback locale leads the preference list so unmatched
// requests land there.
func (c *Catalog) rebuildMatcher() {
	tags := make([]language.Tag, 0, len(c.messages))
	if _, ok := c.messages[c.fallback]; ok {
		tags = append(tags, c.fallback)
	}

	rest := make([]language.Tag, 0, len(c.messages))
	for tag := range c.messages {
		if tag != c.fallback {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	c.tags = append(tags, rest...)
	if len(c.tags) == 0 {
		c.matcher = nil
		return
	}
	c.matcher = language.NewMatcher(c.tags)
}

// resolve maps a requested locale to the closest loaded one. Caller
// holds at least the read lock.
func (c *Catalog) resolve(locale language.Tag) (language.Tag, bool) {
	if c.matcher == nil {
		return language.Und, false
	}
	_, index, _ := c.matcher.Match(locale)
	return c.tags[index], true
}

// Message implements MessageSource. The key uses dot notation; when the
// value is an array the first form is returned. Args other than nil are
// interpolated through text/template.
func (c *Catalog) Message(locale language.Tag, key string, args map[string]interface{}) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, ok := c.resolve(locale)
	if !ok {
		return "", errorx.New("catalog has no locales").
			WithCode(errorx.CodeLocaleUnknown).
			WithOperation("Catalog.Message")
	}

	raw := lookup(c.messages[tag], key)
	if raw == nil && tag != c.fallback {
		tag = c.fallback
		raw = lookup(c.messages[tag], key)
	}
	if raw == nil {
		return "", errorx.Newf("message %q not found", key).
			WithCode(errorx.CodeMessageMissing).
			WithOperation("Catalog.Message").
			WithDetail("locale", locale.String()).
			WithDetail("key", key)
	}

	text := firstForm(raw)
	if args == nil {
		return text, nil
	}
	return c.render(tag.String()+"\x00"+key, text, args)
}

// Plural implements count-aware resolution. The catalog value must be an
// array of forms, singular first. The count is available to templates as
// the Count arg.
func (c *Catalog) Plural(locale language.Tag, key string, count int, args map[string]interface{}) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, ok := c.resolve(locale)
	if !ok {
		return "", errorx.New("catalog has no locales").
			WithCode(errorx.CodeLocaleUnknown).
			WithOperation("Catalog.Plural")
	}

	raw := lookup(c.messages[tag], key)
	if raw == nil && tag != c.fallback {
		tag = c.fallback
		raw = lookup(c.messages[tag], key)
	}
	if raw == nil {
		return "", errorx.Newf("message %q not found", key).
			WithCode(errorx.CodeMessageMissing).
			WithOperation("Catalog.Plural").
			WithDetail("locale", locale.String()).
			WithDetail("key", key)
	}

	forms := pluralForms(raw)
	index := pluralIndex(tag, count)
	if index >= len(forms) {
		index = len(forms) - 1
	}

	merged := make(map[string]interface{}, len(args)+1)
	for k, v := range args {
		merged[k] = v
	}
	if _, ok := merged["Count"]; !ok {
		merged["Count"] = count
	}

	cacheKey := tag.String() + "\x00" + key + "\x00" + strconv.Itoa(index)
	return c.render(cacheKey, forms[index], merged)
}

// Has implements MessageSource
func (c *Catalog) Has(locale language.Tag, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, ok := c.resolve(locale)
	if !ok {
		return false
	}
	if lookup(c.messages[tag], key) != nil {
		return true
	}
	return tag != c.fallback && lookup(c.messages[c.fallback], key) != nil
}

// Locales returns the loaded locales, default locale first
func (c *Catalog) Locales() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]language.Tag(nil), c.tags...)
}

// Keys returns all message keys of a locale in dot notation, sorted
func (c *Catalog) Keys(locale language.Tag) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, ok := c.resolve(locale)
	if !ok {
		return nil
	}

	keys := collectKeys(c.messages[tag], "")
	sort.Strings(keys)
	return keys
}

// OnReload registers a handler invoked after a watcher reloads a locale
func (c *Catalog) OnReload(handler ReloadHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, handler)
}

// dropTemplates clears the compiled template cache after a reload
func (c *Catalog) dropTemplates() {
	c.tmu.Lock()
	c.templates = make(map[string]*template.Template)
	c.tmu.Unlock()
}

// render executes the message as a template, compiling and caching it
// under the given key. The cache has its own lock; compiled templates
// are safe for concurrent execution.
func (c *Catalog) render(cacheKey, text string, args map[string]interface{}) (string, error) {
	c.tmu.Lock()
	tmpl, ok := c.templates[cacheKey]
	if !ok {
		var err error
		tmpl, err = template.New(cacheKey).Parse(text)
		if err != nil {
			c.tmu.Unlock()
			return text, errorx.Wrap(err, "message template does not compile").
				WithCode(errorx.CodeInvalidFormat).
				WithOperation("Catalog.render")
		}
		c.templates[cacheKey] = tmpl
	}
	c.tmu.Unlock()

	var b strings.Builder
	if err := tmpl.Execute(&b, args); err != nil {
		return text, errorx.Wrap(err, "message template execution failed").
			WithCode(errorx.CodeInvalidFormat).
			WithOperation("Catalog.render")
	}
	return b.String(), nil
}

// lookup walks a message tree along a dot-notation key. A nested table
// is not a message, so a key resolving to one reports as missing.
func lookup(tree map[string]interface{}, key string) interface{} {
	if tree == nil {
		return nil
	}

	parts := strings.Split(key, ".")
	current := tree
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			if _, isTable := value.(map[string]interface{}); isTable {
				return nil
			}
			return value
		}

		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// firstForm renders a raw catalog value as a single message text
func firstForm(raw interface{}) string {
	if forms, ok := raw.([]interface{}); ok {
		if len(forms) == 0 {
			return ""
		}
		return fmt.Sprintf("%v", forms[0])
	}
	return fmt.Sprintf("%v", raw)
}

// pluralForms renders a raw catalog value as its list of plural forms
func pluralForms(raw interface{}) []string {
	if arr, ok := raw.([]interface{}); ok && len(arr) > 0 {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	return []string{fmt.Sprintf("%v", raw)}
}

// pluralIndex selects the plural form for a count. Two-form rules cover
// the supported western languages; French treats zero as singular.
// TODO: use x/text/feature/plural once catalogs need Slavic rules.
func pluralIndex(tag language.Tag, count int) int {
	base, _ := tag.Base()
	if base.String() == "fr" {
		if count <= 1 {
			return 0
		}
		return 1
	}
	if count == 1 {
		return 0
	}
	return 1
}

// collectKeys flattens a message tree into dot-notation keys
func collectKeys(tree map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, collectKeys(nested, full)...)
		} else {
			keys = append(keys, full)
		}
	}
	return keys
}
