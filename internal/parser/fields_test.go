package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Contact: j.doe@university.edu for details", "j.doe@university.edu"},
		{"first of several", "a@x.org then b@y.org", "a@x.org"},
		{"none", "no address here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international", "Call +1 (555) 123-4567 today", "+1 (555) 123-4567"},
		{"too few digits", "room 123-456 on the left", ""},
		{"none", "no numbers", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractStaffNo(t *testing.T) {
	assert.Equal(t, "12-345678", ExtractStaffNo("Staff No: 12-345678"))
	assert.Equal(t, "12345678", ExtractStaffNo("id 12345678 on file"))
	assert.Equal(t, "", ExtractStaffNo("id 1234 on file"))
}

func TestExtractRatings(t *testing.T) {
	text := "Quality rating: 4.5\nTeamwork rating 3\nfooter"
	got := ExtractRatings(text)
	assert.Equal(t, map[string]float64{
		"quality":  4.5,
		"teamwork": 3,
	}, got)
}

func TestExtractRatingsLastDuplicateWins(t *testing.T) {
	text := "quality rating: 3\nsome prose\nQuality rating: 5.0"
	got := ExtractRatings(text)
	assert.Equal(t, map[string]float64{"quality": 5.0}, got)
}

func TestExtractRatingsEmpty(t *testing.T) {
	assert.Empty(t, ExtractRatings("nothing rated here"))
}

func TestExtractCommentsLastNonEmptyWins(t *testing.T) {
	text := "Comments: Good progress this year.\nRemarks: Needs a mentor."
	got := ExtractComments(text)
	assert.Equal(t, map[string]string{GeneralCommentKey: "Needs a mentor"}, got)
}

func TestExtractCommentsEmptyBlockIgnored(t *testing.T) {
	text := "Comments: Solid delivery.\nRemarks: ."
	got := ExtractComments(text)
	assert.Equal(t, map[string]string{GeneralCommentKey: "Solid delivery"}, got)
}

func TestExtractCommentsNone(t *testing.T) {
	assert.Empty(t, ExtractComments("no feedback blocks"))
}
