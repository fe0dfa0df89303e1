package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/nlp"
)

const appraisalDoc = `Performance Appraisal 2025
Quality rating: 4.5
Comments: Consistently strong delivery.
Achievements
Launched the graduate seminar series
Secured conference funding
Goals
Publish two journal papers
Challenges
Limited lab capacity
Career Aspirations
Move into a programme director role
`

func TestAppraisalProfileParse(t *testing.T) {
	rec := AppraisalProfile().Parse(context.Background(), appraisalDoc, nil, nil)

	assert.Equal(t, []string{
		"Launched the graduate seminar series",
		"Secured conference funding",
	}, rec.Sections[SectionAchievements])
	assert.Equal(t, []string{"Publish two journal papers"}, rec.Sections[SectionGoals])
	assert.Equal(t, []string{"Limited lab capacity"}, rec.Sections[SectionChallenges])
	assert.Equal(t, "Move into a programme director role", rec.JoinedSection(SectionCareer))

	assert.Equal(t, map[string]float64{"quality": 4.5}, rec.Ratings)
	assert.Equal(t, map[string]string{GeneralCommentKey: "Consistently strong delivery"}, rec.Comments)
	assert.False(t, rec.Empty())
}

func TestParseIsDeterministic(t *testing.T) {
	first := AppraisalProfile().Parse(context.Background(), appraisalDoc, nil, nil)
	second := AppraisalProfile().Parse(context.Background(), appraisalDoc, nil, nil)
	assert.Equal(t, first, second)
}

func TestParseUnstructuredTextYieldsEmptyRecord(t *testing.T) {
	rec := AppraisalProfile().Parse(context.Background(), "just prose with nothing recognizable", nil, nil)
	assert.True(t, rec.Empty())
}

func TestResumeProfileExtractsContact(t *testing.T) {
	doc := "Jane Roe\nEmail: jane.roe@university.edu\nPhone: +44 20 7946 0321\nStaff No: 12-345678\nEducation\nPhD in Physics"
	rec := ResumeProfile().Parse(context.Background(), doc, nil, nil)

	assert.Equal(t, "jane.roe@university.edu", rec.Contact.Email)
	assert.Equal(t, "+44 20 7946 0321", rec.Contact.Phone)
	assert.Equal(t, "12-345678", rec.Contact.StaffNo)
	assert.Equal(t, []string{"PhD in Physics"}, rec.Sections[SectionEducation])
}

type stubRecognizer struct {
	entities []nlp.Entity
	err      error
}

func (s *stubRecognizer) DetectEntities(context.Context, string) ([]nlp.Entity, error) {
	return s.entities, s.err
}

func TestResumeProfileAppliesEntities(t *testing.T) {
	ner := &stubRecognizer{entities: []nlp.Entity{
		{Text: "Jane Roe", Label: nlp.LabelPerson},
		{Text: "Leeds", Label: nlp.LabelGPE},
		{Text: "United Kingdom", Label: nlp.LabelGPE},
	}}
	rec := ResumeProfile().Parse(context.Background(), "Jane Roe lives in Leeds, United Kingdom", ner, nil)

	assert.Equal(t, "Jane", rec.Contact.FirstName)
	assert.Equal(t, "Roe", rec.Contact.LastName)
	assert.Equal(t, "Leeds, United Kingdom", rec.Contact.Address)
}

func TestRecognizerErrorDoesNotAbortParse(t *testing.T) {
	ner := &stubRecognizer{err: errors.New("backend down")}
	doc := "Email: jane.roe@university.edu"
	rec := ResumeProfile().Parse(context.Background(), doc, ner, nil)

	assert.Equal(t, "jane.roe@university.edu", rec.Contact.Email)
	assert.Empty(t, rec.Contact.FirstName)
}

func TestProfileFor(t *testing.T) {
	require.Equal(t, constants.Resume, ProfileFor(constants.Resume).Type)
	require.Equal(t, constants.TeachingPortfolio, ProfileFor(constants.TeachingPortfolio).Type)
	require.Equal(t, constants.Appraisal, ProfileFor(constants.Appraisal).Type)
	require.Equal(t, constants.Appraisal, ProfileFor(constants.DocType("bogus")).Type)
}
