package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	rePhone   = regexp.MustCompile(`\+?[\d(][\d\-.\s()]{5,}\d`)
	reStaffNo = regexp.MustCompile(`\b\d{2}[-.]?\d{6}\b`)
	// category may be multi-word but never spans lines
	reRating  = regexp.MustCompile(`(?i)([\w ]+)rating:?\s*(\d+(?:\.\d+)?)`)
	reComment = regexp.MustCompile(`(?i)(?:comments?|remarks?):\s*([^.]*)`)
	reDigit   = regexp.MustCompile(`\d`)
)

const minPhoneDigits = 8

// ExtractEmail returns the first address-shaped token, or "".
func ExtractEmail(text string) string {
	return reEmail.FindString(text)
}

// ExtractPhone returns the first digit-and-separator run carrying at least
// eight digits, or "".
func ExtractPhone(text string) string {
	for _, cand := range rePhone.FindAllString(text, -1) {
		if len(reDigit.FindAllString(cand, -1)) >= minPhoneDigits {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

// ExtractStaffNo returns the first staff identity number (NN-NNNNNN), or "".
func ExtractStaffNo(text string) string {
	return reStaffNo.FindString(text)
}

// ExtractRatings scans the whole document for "<category> rating: <n>" pairs.
// Matches are applied in document order, so a later duplicate category
// overwrites an earlier one. Note this is the opposite tie-break from the
// segmenter's first-match-wins catalog order; both behaviors are load-bearing.
func ExtractRatings(text string) map[string]float64 {
	out := map[string]float64{}
	for _, m := range reRating.FindAllStringSubmatch(text, -1) {
		category := strings.ToLower(strings.TrimSpace(m[1]))
		if category == "" {
			continue
		}
		score, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		out[category] = score
	}
	return out
}

// ExtractComments scans for "comments:"/"remarks:" blocks running up to the
// next period. Blocks are not concatenated: the last non-empty match wins and
// lands under the "general" key.
func ExtractComments(text string) map[string]string {
	out := map[string]string{}
	for _, m := range reComment.FindAllStringSubmatch(text, -1) {
		if c := strings.TrimSpace(m[1]); c != "" {
			out[GeneralCommentKey] = c
		}
	}
	return out
}
