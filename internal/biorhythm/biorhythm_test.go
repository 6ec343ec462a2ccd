package biorhythm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/zodiac/internal/apperr"
)

var birth = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

func TestBirthdayIsZeroAndRising(t *testing.T) {
	r, err := Calculate(birth, birth)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Days)
	for _, c := range Cycles {
		v := r.Get(c)
		assert.Equal(t, 0, v.Value, c)
		assert.True(t, v.Critical, c)
		assert.Equal(t, Rising, v.Phase, c)
	}
}

func TestPeriodicity(t *testing.T) {
	for _, c := range Cycles {
		p := Periods[c]
		a, err := Calculate(birth, birth.AddDate(0, 0, 100))
		require.NoError(t, err)
		b, err := Calculate(birth, birth.AddDate(0, 0, 100+p))
		require.NoError(t, err)
		assert.Equal(t, a.Get(c).Value, b.Get(c).Value, c)
	}
}

func TestQuarterPeriodPeak(t *testing.T) {
	// 28/4 = 7 days in, the emotional cycle is at its maximum.
	r, err := Calculate(birth, birth.AddDate(0, 0, 7))
	require.NoError(t, err)
	v := r.Get(Emotional)
	assert.Equal(t, 100, v.Value)
	assert.Equal(t, Peak, v.Phase)
	assert.False(t, v.Critical)

	r, _ = Calculate(birth, birth.AddDate(0, 0, 21))
	assert.Equal(t, -100, r.Get(Emotional).Value)
	assert.Equal(t, Trough, r.Get(Emotional).Phase)
}

func TestValuesBounded(t *testing.T) {
	series, err := Series(birth, birth.AddDate(30, 0, 0), MaxSeriesDays)
	require.NoError(t, err)
	require.Len(t, series, MaxSeriesDays)
	for i, r := range series {
		if i > 0 {
			assert.Equal(t, series[i-1].Days+1, r.Days)
		}
		for _, v := range r.Values {
			assert.GreaterOrEqual(t, v.Value, -100)
			assert.LessOrEqual(t, v.Value, 100)
		}
	}
}

func TestErrors(t *testing.T) {
	_, err := Calculate(birth, birth.AddDate(0, 0, -1))
	assert.True(t, apperr.Is(err, apperr.CodeInvalidDate))

	_, err = Series(birth, birth, 0)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidParam))
	_, err = Series(birth, birth, MaxSeriesDays+1)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidParam))
}
