package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

func sign(t *testing.T, id string) zodiac.Sign {
	t.Helper()
	s, ok := zodiac.Get(id)
	require.True(t, ok)
	return s
}

func TestAspects(t *testing.T) {
	tests := []struct {
		a, b string
		want Aspect
	}{
		{"aries", "aries", Conjunction},
		{"aries", "taurus", SemiSextile},
		{"aries", "gemini", Sextile},
		{"aries", "cancer", Square},
		{"aries", "leo", Trine},
		{"aries", "virgo", Quincunx},
		{"aries", "libra", Opposition},
		{"aries", "pisces", SemiSextile},
		{"capricorn", "taurus", Trine},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AspectBetween(sign(t, tt.a), sign(t, tt.b)), "%s-%s", tt.a, tt.b)
	}
}

func TestHarmony(t *testing.T) {
	assert.Equal(t, SameElement, HarmonyOf(zodiac.Fire, zodiac.Fire))
	assert.Equal(t, Complementary, HarmonyOf(zodiac.Fire, zodiac.Air))
	assert.Equal(t, Complementary, HarmonyOf(zodiac.Water, zodiac.Earth))
	assert.Equal(t, Challenging, HarmonyOf(zodiac.Fire, zodiac.Water))
	assert.Equal(t, Challenging, HarmonyOf(zodiac.Air, zodiac.Earth))
}

func TestCompareSymmetricAndBounded(t *testing.T) {
	for _, a := range zodiac.All() {
		for _, b := range zodiac.All() {
			ab := Compare(a, b, i18n.English)
			ba := Compare(b, a, i18n.English)
			assert.Equal(t, ab.Overall, ba.Overall)
			assert.Equal(t, ab.Love, ba.Love)
			assert.Equal(t, ab.Aspect, ba.Aspect)
			for _, v := range []int{ab.Love, ab.Friendship, ab.Work, ab.Overall} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
			assert.NotEmpty(t, ab.Summary)
			assert.NotContains(t, ab.Summary, "{a}")
		}
	}
}

func TestTrineBeatsSquare(t *testing.T) {
	trine := Compare(sign(t, "leo"), sign(t, "sagittarius"), i18n.English)
	square := Compare(sign(t, "leo"), sign(t, "scorpio"), i18n.English)
	assert.Greater(t, trine.Overall, square.Overall)
	assert.Equal(t, SameElement, trine.Harmony)
	assert.Equal(t, 90, trine.Overall)
	assert.Equal(t, 40, square.Overall)
}

func TestLocalizedSummary(t *testing.T) {
	r := Compare(sign(t, "gemini"), sign(t, "libra"), i18n.Spanish)
	assert.Equal(t, "Trígono", r.AspectName)
	assert.Contains(t, r.Summary, "Géminis")
	assert.Contains(t, r.Summary, "Libra")
	assert.Equal(t, i18n.Spanish, r.Locale)
}

func TestMatrix(t *testing.T) {
	m := Matrix()
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			assert.Equal(t, m[i][j], m[j][i])
		}
		// Conjunction of same element.
		assert.Equal(t, 80, m[i][i])
	}
}
