package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

func TestDefaultHasEverySign(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, s := range zodiac.All() {
		p, ok := lib.Get(s.ID, i18n.English)
		if !ok {
			t.Errorf("missing English page for %s", s.ID)
			continue
		}
		if p.Title != s.Name(i18n.English) {
			t.Errorf("%s: title = %q", s.ID, p.Title)
		}
		if p.Summary == "" {
			t.Errorf("%s: empty summary", s.ID)
		}
		if !strings.Contains(p.HTML, "<table>") {
			t.Errorf("%s: GFM table not rendered", s.ID)
		}
		if !strings.Contains(p.HTML, `<h2 id="traits">`) {
			t.Errorf("%s: heading ids not generated", s.ID)
		}
	}
}

func TestLocaleFallback(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	p, ok := lib.Get("leo", i18n.Spanish)
	if !ok || p.Locale != i18n.Spanish {
		t.Fatalf("expected Spanish leo page, got %+v", p)
	}
	if !strings.HasPrefix(p.Summary, "Leo es") {
		t.Errorf("summary = %q", p.Summary)
	}

	p, ok = lib.Get("virgo", i18n.Spanish)
	if !ok || p.Locale != i18n.English {
		t.Errorf("expected English fallback for virgo, got %+v", p)
	}

	if _, ok := lib.Get("ophiuchus", i18n.English); ok {
		t.Error("unexpected page for unknown sign")
	}

	locs := lib.Locales("aries")
	if len(locs) != 2 || locs[0] != i18n.English || locs[1] != i18n.Spanish {
		t.Errorf("Locales(aries) = %v", locs)
	}
}

func TestLoadRejectsUnknownPaths(t *testing.T) {
	bad := []fstest.MapFS{
		{"c/xx/aries.md": {Data: []byte("# Aries\n")}},
		{"c/en/dragon.md": {Data: []byte("# Dragon\n")}},
	}
	for _, fsys := range bad {
		if _, err := Load(fsys, "c"); err == nil {
			t.Errorf("expected error for %v", fsys)
		}
	}
}

func TestLoadCustom(t *testing.T) {
	fsys := fstest.MapFS{
		"c/fr/aries.md":  {Data: []byte("Intro sans titre.\n\n## Section\n")},
		"c/en/aries.md":  {Data: []byte("# Aries\n\nFirst line\nsecond line.\n\nMore.\n")},
		"c/en/notes.txt": {Data: []byte("ignored")},
	}
	lib, err := Load(fsys, "c")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.Len() != 2 {
		t.Errorf("Len = %d, want 2", lib.Len())
	}
	p, _ := lib.Get("aries", i18n.English)
	if p.Summary != "First line second line." {
		t.Errorf("summary = %q", p.Summary)
	}
	p, _ = lib.Get("aries", i18n.French)
	if p.Title != "aries" {
		t.Errorf("title fallback = %q", p.Title)
	}
}
