// Package i18n loads the dialogue message catalogs and builds locale printers.
//
// Catalogs live in locales/<locale>.yaml and are embedded at build time.
// en-US is the base locale; every other locale must define the same keys.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale and the fallback for unknown ones.
const BaseLocale = "en-US"

// Message keys.
const (
	KeyBanner           = "round.banner"
	KeyDifficultyPrompt = "round.difficulty_prompt"
	KeyGuessPrompt      = "round.guess_prompt"
	KeyInvalidGuess     = "round.invalid_guess"
	KeyScore            = "round.score"
	KeySolved           = "round.solved"
	KeyContinuePrompt   = "session.continue_prompt"
	KeySummaryHeader    = "session.summary_header"
	KeySummaryRow       = "session.summary_row"
	KeyFarewell         = "session.farewell"
)

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale.
type Bundle struct {
	builder *catalog.Builder
	tags    map[string]language.Tag
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	files := make(map[string]catalogFile, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if strings.TrimSpace(f.Locale) != fromPath {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name", p, f.Locale)
		}
		if len(f.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages are required", p)
		}
		files[fromPath] = f
	}

	base, ok := files[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	b := &Bundle{
		builder: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
		tags:    make(map[string]language.Tag, len(files)),
	}
	for locale, f := range files {
		if missing := missingKeys(base.Messages, f.Messages); len(missing) > 0 {
			return nil, fmt.Errorf("catalog %s: missing keys %s", locale, strings.Join(missing, ", "))
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key, msg := range f.Messages {
			if err := b.builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: set %q: %w", locale, key, err)
			}
		}
		b.tags[locale] = tag
	}
	return b, nil
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.tags))
	for locale := range b.tags {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether locale was loaded.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.tags[strings.TrimSpace(locale)]
	return ok
}

// Printer returns a message printer for locale, falling back to BaseLocale.
func (b *Bundle) Printer(locale string) *message.Printer {
	tag, ok := b.tags[strings.TrimSpace(locale)]
	if !ok {
		tag = b.tags[BaseLocale]
	}
	return message.NewPrinter(tag, message.Catalog(b.builder))
}

func missingKeys(want, have map[string]string) []string {
	var out []string
	for key := range want {
		if _, ok := have[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}
