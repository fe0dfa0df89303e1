package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campushr/docparser/internal/entity"
)

func TestFilterByDate(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
	}
	rows := []*entity.Appraisal{
		{DateCreated: day(1)},
		{DateCreated: day(10)},
		{DateCreated: day(20)},
	}

	from := day(5)
	to := day(15)

	assert.Len(t, filterByDate(rows, nil, nil), 3)
	assert.Len(t, filterByDate(rows, &from, nil), 2)
	assert.Len(t, filterByDate(rows, nil, &to), 2)
	assert.Len(t, filterByDate(rows, &from, &to), 1)

	// Boundaries are inclusive.
	exact := day(10)
	assert.Len(t, filterByDate(rows, &exact, &exact), 1)
}

func TestFormatRatingsSortsKeys(t *testing.T) {
	got := formatRatings(map[string]float64{
		"teamwork": 3,
		"quality":  4.5,
	})
	assert.Equal(t, "quality: 4.5\nteamwork: 3", got)
	assert.Equal(t, "", formatRatings(nil))
}

func TestFormatCommentsSortsKeys(t *testing.T) {
	got := formatComments(map[string]string{
		"general": "Solid year",
		"delivery": "On time",
	})
	assert.Equal(t, "delivery: On time\ngeneral: Solid year", got)
	assert.Equal(t, "", formatComments(nil))
}

func TestDecodeHelpersTolerateEmptyInput(t *testing.T) {
	assert.Empty(t, decodeSections(nil))
	assert.Empty(t, decodeRatings(nil))
	assert.Empty(t, decodeComments(nil))

	sections := decodeSections([]byte(`{"achievements":["a","b"]}`))
	assert.Equal(t, []string{"a", "b"}, sections["achievements"])
	assert.Equal(t, "a\nb", joinBucket(sections["achievements"]))
}
