package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

func TestParseLocale(t *testing.T) {
	for _, in := range []string{"en", "ES", " pt ", "fr", "de"} {
		loc, err := ParseLocale(in)
		require.NoError(t, err, in)
		assert.True(t, loc.Valid())
	}

	_, err := ParseLocale("it")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidLocale))
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", English},
		{"es-MX,es;q=0.9,en;q=0.8", Spanish},
		{"pt-BR", Portuguese},
		{"fr-CA,fr;q=0.9", French},
		{"de-AT", German},
		{"ja,zh;q=0.5", English},
		{"garbage;;;", English},
		{"it-IT,de;q=0.7", German},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Negotiate(tt.header), tt.header)
	}
}

func TestCatalogsCoverEnglishKeys(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	english := b.Keys(English)
	require.NotEmpty(t, english)

	for _, loc := range Supported[1:] {
		keys := map[string]bool{}
		for _, k := range b.Keys(loc) {
			keys[k] = true
		}
		for _, k := range english {
			assert.True(t, keys[k], "locale %s is missing %s", loc, k)
		}
	}
}

func TestListsMatchEnglishLength(t *testing.T) {
	b := Messages()
	for _, key := range []string{"colors", "weekdays", "templates.love.high", "compatibility.low"} {
		n := b.Len(key)
		require.Positive(t, n, key)
		for _, loc := range Supported {
			assert.Len(t, b.List(loc, key), n, "%s %s", loc, key)
		}
	}
	assert.Equal(t, 12, b.Len("colors"))
	assert.Equal(t, 7, b.Len("weekdays"))
}

func TestTextFallback(t *testing.T) {
	b := Messages()
	assert.Equal(t, "Amor", b.Text(Spanish, "categories.love"))
	assert.Equal(t, "Love", b.Text(Locale("xx"), "categories.love"))
	assert.Equal(t, "no.such.key", b.Text(German, "no.such.key"))
}

func TestPickWraps(t *testing.T) {
	b := Messages()
	assert.Equal(t, b.Pick(English, "colors", 0), b.Pick(English, "colors", 12))
	assert.Equal(t, b.Pick(French, "colors", 11), b.Pick(French, "colors", -1))
	assert.Equal(t, "Rojo", b.Pick(Spanish, "colors", 0))
}

func TestFormat(t *testing.T) {
	got := Format("{a} and {b} and {a}", map[string]string{"a": "Leo", "b": "Libra"})
	assert.Equal(t, "Leo and Libra and Leo", got)
	assert.Equal(t, "plain", Format("plain", nil))
}
