// Package content serves the informational page for each sign.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

//go:embed signs
var embedded embed.FS

// Page is one rendered sign page.
type Page struct {
	Sign     string      `json:"sign"`
	Locale   i18n.Locale `json:"locale"`
	Title    string      `json:"title"`
	Summary  string      `json:"summary"`
	HTML     string      `json:"html"`
	Markdown string      `json:"-"`
}

// Library holds every page keyed by sign and locale.
type Library struct {
	pages map[string]map[i18n.Locale]*Page
}

// Default loads the pages embedded in the binary.
func Default() (*Library, error) {
	return Load(embedded, "signs")
}

// Load renders every <root>/<locale>/<sign>.md file in fsys.
func Load(fsys fs.FS, root string) (*Library, error) {
	paths, err := doublestar.Glob(fsys, path.Join(root, "*", "*.md"))
	if err != nil {
		return nil, fmt.Errorf("globbing content: %w", err)
	}
	sort.Strings(paths)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	lib := &Library{pages: map[string]map[i18n.Locale]*Page{}}
	for _, p := range paths {
		locDir := path.Base(path.Dir(p))
		loc, err := i18n.ParseLocale(locDir)
		if err != nil {
			return nil, fmt.Errorf("content %s: unsupported locale directory %q", p, locDir)
		}
		sign := strings.TrimSuffix(path.Base(p), ".md")
		if _, ok := zodiac.Get(sign); !ok {
			return nil, fmt.Errorf("content %s: unknown sign %q", p, sign)
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", p, err)
		}

		page := &Page{
			Sign:     sign,
			Locale:   loc,
			Title:    extractTitle(string(src), sign),
			Summary:  extractSummary(string(src)),
			HTML:     buf.String(),
			Markdown: string(src),
		}
		if lib.pages[sign] == nil {
			lib.pages[sign] = map[i18n.Locale]*Page{}
		}
		lib.pages[sign][loc] = page
	}
	return lib, nil
}

// Get returns the page for sign in loc, falling back to English.
func (l *Library) Get(sign string, loc i18n.Locale) (*Page, bool) {
	bySign, ok := l.pages[sign]
	if !ok {
		return nil, false
	}
	if p, ok := bySign[loc]; ok {
		return p, true
	}
	p, ok := bySign[i18n.Default]
	return p, ok
}

// Locales lists the locales that have their own page for sign.
func (l *Library) Locales(sign string) []i18n.Locale {
	var out []i18n.Locale
	for _, loc := range i18n.Supported {
		if _, ok := l.pages[sign][loc]; ok {
			out = append(out, loc)
		}
	}
	return out
}

// Len returns the total number of pages.
func (l *Library) Len() int {
	n := 0
	for _, bySign := range l.pages {
		n += len(bySign)
	}
	return n
}

// extractTitle returns the first level-one heading, or fallback.
func extractTitle(src, fallback string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return fallback
}

// extractSummary returns the first plain paragraph after the title.
func extractSummary(src string) string {
	var para []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "|"), strings.HasPrefix(line, "- "):
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		default:
			para = append(para, line)
		}
	}
	return strings.Join(para, " ")
}
