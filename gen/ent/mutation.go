// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppraisal         = "Appraisal"
	TypeDocumentFile      = "DocumentFile"
	TypeEmployee          = "Employee"
	TypeParseJob          = "ParseJob"
	TypeTeachingPortfolio = "TeachingPortfolio"
)

// AppraisalMutation represents an operation that mutates the Appraisal nodes in the graph.
type AppraisalMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	date_created        *time.Time
	review_period_start *time.Time
	review_period_end   *time.Time
	sections            *json.RawMessage
	appendsections      json.RawMessage
	ratings             *json.RawMessage
	appendratings       json.RawMessage
	comments            *json.RawMessage
	appendcomments      json.RawMessage
	career_aspirations  *string
	ongoing_research    *string
	last_research       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	employee            *uuid.UUID
	clearedemployee     bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Appraisal, error)
	predicates          []predicate.Appraisal
}

var _ ent.Mutation = (*AppraisalMutation)(nil)

// appraisalOption allows management of the mutation configuration using functional options.
type appraisalOption func(*AppraisalMutation)

// newAppraisalMutation creates new mutation for the Appraisal entity.
func newAppraisalMutation(c config, op Op, opts ...appraisalOption) *AppraisalMutation {
	m := &AppraisalMutation{
		config:        c,
		op:            op,
		typ:           TypeAppraisal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppraisalID sets the ID field of the mutation.
func withAppraisalID(id uuid.UUID) appraisalOption {
	return func(m *AppraisalMutation) {
		var (
			err   error
			once  sync.Once
			value *Appraisal
		)
		m.oldValue = func(ctx context.Context) (*Appraisal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appraisal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppraisal sets the old Appraisal of the mutation.
func withAppraisal(node *Appraisal) appraisalOption {
	return func(m *AppraisalMutation) {
		m.oldValue = func(context.Context) (*Appraisal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppraisalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppraisalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appraisal entities.
func (m *AppraisalMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppraisalMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppraisalMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appraisal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployeeID sets the "employee_id" field.
func (m *AppraisalMutation) SetEmployeeID(u uuid.UUID) {
	m.employee = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *AppraisalMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *AppraisalMutation) ResetEmployeeID() {
	m.employee = nil
}

// SetDateCreated sets the "date_created" field.
func (m *AppraisalMutation) SetDateCreated(t time.Time) {
	m.date_created = &t
}

// DateCreated returns the value of the "date_created" field in the mutation.
func (m *AppraisalMutation) DateCreated() (r time.Time, exists bool) {
	v := m.date_created
	if v == nil {
		return
	}
	return *v, true
}

// OldDateCreated returns the old "date_created" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldDateCreated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateCreated: %w", err)
	}
	return oldValue.DateCreated, nil
}

// ResetDateCreated resets all changes to the "date_created" field.
func (m *AppraisalMutation) ResetDateCreated() {
	m.date_created = nil
}

// SetReviewPeriodStart sets the "review_period_start" field.
func (m *AppraisalMutation) SetReviewPeriodStart(t time.Time) {
	m.review_period_start = &t
}

// ReviewPeriodStart returns the value of the "review_period_start" field in the mutation.
func (m *AppraisalMutation) ReviewPeriodStart() (r time.Time, exists bool) {
	v := m.review_period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewPeriodStart returns the old "review_period_start" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldReviewPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewPeriodStart: %w", err)
	}
	return oldValue.ReviewPeriodStart, nil
}

// ClearReviewPeriodStart clears the value of the "review_period_start" field.
func (m *AppraisalMutation) ClearReviewPeriodStart() {
	m.review_period_start = nil
	m.clearedFields[appraisal.FieldReviewPeriodStart] = struct{}{}
}

// ReviewPeriodStartCleared returns if the "review_period_start" field was cleared in this mutation.
func (m *AppraisalMutation) ReviewPeriodStartCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldReviewPeriodStart]
	return ok
}

// ResetReviewPeriodStart resets all changes to the "review_period_start" field.
func (m *AppraisalMutation) ResetReviewPeriodStart() {
	m.review_period_start = nil
	delete(m.clearedFields, appraisal.FieldReviewPeriodStart)
}

// SetReviewPeriodEnd sets the "review_period_end" field.
func (m *AppraisalMutation) SetReviewPeriodEnd(t time.Time) {
	m.review_period_end = &t
}

// ReviewPeriodEnd returns the value of the "review_period_end" field in the mutation.
func (m *AppraisalMutation) ReviewPeriodEnd() (r time.Time, exists bool) {
	v := m.review_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewPeriodEnd returns the old "review_period_end" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldReviewPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewPeriodEnd: %w", err)
	}
	return oldValue.ReviewPeriodEnd, nil
}

// ClearReviewPeriodEnd clears the value of the "review_period_end" field.
func (m *AppraisalMutation) ClearReviewPeriodEnd() {
	m.review_period_end = nil
	m.clearedFields[appraisal.FieldReviewPeriodEnd] = struct{}{}
}

// ReviewPeriodEndCleared returns if the "review_period_end" field was cleared in this mutation.
func (m *AppraisalMutation) ReviewPeriodEndCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldReviewPeriodEnd]
	return ok
}

// ResetReviewPeriodEnd resets all changes to the "review_period_end" field.
func (m *AppraisalMutation) ResetReviewPeriodEnd() {
	m.review_period_end = nil
	delete(m.clearedFields, appraisal.FieldReviewPeriodEnd)
}

// SetSections sets the "sections" field.
func (m *AppraisalMutation) SetSections(jm json.RawMessage) {
	m.sections = &jm
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *AppraisalMutation) Sections() (r json.RawMessage, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldSections(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds jm to the "sections" field.
func (m *AppraisalMutation) AppendSections(jm json.RawMessage) {
	m.appendsections = append(m.appendsections, jm...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *AppraisalMutation) AppendedSections() (json.RawMessage, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ClearSections clears the value of the "sections" field.
func (m *AppraisalMutation) ClearSections() {
	m.sections = nil
	m.appendsections = nil
	m.clearedFields[appraisal.FieldSections] = struct{}{}
}

// SectionsCleared returns if the "sections" field was cleared in this mutation.
func (m *AppraisalMutation) SectionsCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldSections]
	return ok
}

// ResetSections resets all changes to the "sections" field.
func (m *AppraisalMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
	delete(m.clearedFields, appraisal.FieldSections)
}

// SetRatings sets the "ratings" field.
func (m *AppraisalMutation) SetRatings(jm json.RawMessage) {
	m.ratings = &jm
	m.appendratings = nil
}

// Ratings returns the value of the "ratings" field in the mutation.
func (m *AppraisalMutation) Ratings() (r json.RawMessage, exists bool) {
	v := m.ratings
	if v == nil {
		return
	}
	return *v, true
}

// OldRatings returns the old "ratings" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldRatings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatings: %w", err)
	}
	return oldValue.Ratings, nil
}

// AppendRatings adds jm to the "ratings" field.
func (m *AppraisalMutation) AppendRatings(jm json.RawMessage) {
	m.appendratings = append(m.appendratings, jm...)
}

// AppendedRatings returns the list of values that were appended to the "ratings" field in this mutation.
func (m *AppraisalMutation) AppendedRatings() (json.RawMessage, bool) {
	if len(m.appendratings) == 0 {
		return nil, false
	}
	return m.appendratings, true
}

// ClearRatings clears the value of the "ratings" field.
func (m *AppraisalMutation) ClearRatings() {
	m.ratings = nil
	m.appendratings = nil
	m.clearedFields[appraisal.FieldRatings] = struct{}{}
}

// RatingsCleared returns if the "ratings" field was cleared in this mutation.
func (m *AppraisalMutation) RatingsCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldRatings]
	return ok
}

// ResetRatings resets all changes to the "ratings" field.
func (m *AppraisalMutation) ResetRatings() {
	m.ratings = nil
	m.appendratings = nil
	delete(m.clearedFields, appraisal.FieldRatings)
}

// SetComments sets the "comments" field.
func (m *AppraisalMutation) SetComments(jm json.RawMessage) {
	m.comments = &jm
	m.appendcomments = nil
}

// Comments returns the value of the "comments" field in the mutation.
func (m *AppraisalMutation) Comments() (r json.RawMessage, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldComments(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// AppendComments adds jm to the "comments" field.
func (m *AppraisalMutation) AppendComments(jm json.RawMessage) {
	m.appendcomments = append(m.appendcomments, jm...)
}

// AppendedComments returns the list of values that were appended to the "comments" field in this mutation.
func (m *AppraisalMutation) AppendedComments() (json.RawMessage, bool) {
	if len(m.appendcomments) == 0 {
		return nil, false
	}
	return m.appendcomments, true
}

// ClearComments clears the value of the "comments" field.
func (m *AppraisalMutation) ClearComments() {
	m.comments = nil
	m.appendcomments = nil
	m.clearedFields[appraisal.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *AppraisalMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *AppraisalMutation) ResetComments() {
	m.comments = nil
	m.appendcomments = nil
	delete(m.clearedFields, appraisal.FieldComments)
}

// SetCareerAspirations sets the "career_aspirations" field.
func (m *AppraisalMutation) SetCareerAspirations(s string) {
	m.career_aspirations = &s
}

// CareerAspirations returns the value of the "career_aspirations" field in the mutation.
func (m *AppraisalMutation) CareerAspirations() (r string, exists bool) {
	v := m.career_aspirations
	if v == nil {
		return
	}
	return *v, true
}

// OldCareerAspirations returns the old "career_aspirations" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldCareerAspirations(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCareerAspirations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCareerAspirations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCareerAspirations: %w", err)
	}
	return oldValue.CareerAspirations, nil
}

// ClearCareerAspirations clears the value of the "career_aspirations" field.
func (m *AppraisalMutation) ClearCareerAspirations() {
	m.career_aspirations = nil
	m.clearedFields[appraisal.FieldCareerAspirations] = struct{}{}
}

// CareerAspirationsCleared returns if the "career_aspirations" field was cleared in this mutation.
func (m *AppraisalMutation) CareerAspirationsCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldCareerAspirations]
	return ok
}

// ResetCareerAspirations resets all changes to the "career_aspirations" field.
func (m *AppraisalMutation) ResetCareerAspirations() {
	m.career_aspirations = nil
	delete(m.clearedFields, appraisal.FieldCareerAspirations)
}

// SetOngoingResearch sets the "ongoing_research" field.
func (m *AppraisalMutation) SetOngoingResearch(s string) {
	m.ongoing_research = &s
}

// OngoingResearch returns the value of the "ongoing_research" field in the mutation.
func (m *AppraisalMutation) OngoingResearch() (r string, exists bool) {
	v := m.ongoing_research
	if v == nil {
		return
	}
	return *v, true
}

// OldOngoingResearch returns the old "ongoing_research" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldOngoingResearch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOngoingResearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOngoingResearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOngoingResearch: %w", err)
	}
	return oldValue.OngoingResearch, nil
}

// ClearOngoingResearch clears the value of the "ongoing_research" field.
func (m *AppraisalMutation) ClearOngoingResearch() {
	m.ongoing_research = nil
	m.clearedFields[appraisal.FieldOngoingResearch] = struct{}{}
}

// OngoingResearchCleared returns if the "ongoing_research" field was cleared in this mutation.
func (m *AppraisalMutation) OngoingResearchCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldOngoingResearch]
	return ok
}

// ResetOngoingResearch resets all changes to the "ongoing_research" field.
func (m *AppraisalMutation) ResetOngoingResearch() {
	m.ongoing_research = nil
	delete(m.clearedFields, appraisal.FieldOngoingResearch)
}

// SetLastResearch sets the "last_research" field.
func (m *AppraisalMutation) SetLastResearch(s string) {
	m.last_research = &s
}

// LastResearch returns the value of the "last_research" field in the mutation.
func (m *AppraisalMutation) LastResearch() (r string, exists bool) {
	v := m.last_research
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResearch returns the old "last_research" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldLastResearch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResearch: %w", err)
	}
	return oldValue.LastResearch, nil
}

// ClearLastResearch clears the value of the "last_research" field.
func (m *AppraisalMutation) ClearLastResearch() {
	m.last_research = nil
	m.clearedFields[appraisal.FieldLastResearch] = struct{}{}
}

// LastResearchCleared returns if the "last_research" field was cleared in this mutation.
func (m *AppraisalMutation) LastResearchCleared() bool {
	_, ok := m.clearedFields[appraisal.FieldLastResearch]
	return ok
}

// ResetLastResearch resets all changes to the "last_research" field.
func (m *AppraisalMutation) ResetLastResearch() {
	m.last_research = nil
	delete(m.clearedFields, appraisal.FieldLastResearch)
}

// SetCreatedAt sets the "created_at" field.
func (m *AppraisalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppraisalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppraisalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppraisalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppraisalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appraisal entity.
// If the Appraisal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppraisalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppraisalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (m *AppraisalMutation) ClearEmployee() {
	m.clearedemployee = true
	m.clearedFields[appraisal.FieldEmployeeID] = struct{}{}
}

// EmployeeCleared reports if the "employee" edge to the Employee entity was cleared.
func (m *AppraisalMutation) EmployeeCleared() bool {
	return m.clearedemployee
}

// EmployeeIDs returns the "employee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployeeID instead. It exists only for internal usage by the builders.
func (m *AppraisalMutation) EmployeeIDs() (ids []uuid.UUID) {
	if id := m.employee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployee resets all changes to the "employee" edge.
func (m *AppraisalMutation) ResetEmployee() {
	m.employee = nil
	m.clearedemployee = false
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *AppraisalMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *AppraisalMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *AppraisalMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *AppraisalMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *AppraisalMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *AppraisalMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *AppraisalMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the AppraisalMutation builder.
func (m *AppraisalMutation) Where(ps ...predicate.Appraisal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppraisalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppraisalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appraisal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppraisalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppraisalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appraisal).
func (m *AppraisalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppraisalMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.employee != nil {
		fields = append(fields, appraisal.FieldEmployeeID)
	}
	if m.date_created != nil {
		fields = append(fields, appraisal.FieldDateCreated)
	}
	if m.review_period_start != nil {
		fields = append(fields, appraisal.FieldReviewPeriodStart)
	}
	if m.review_period_end != nil {
		fields = append(fields, appraisal.FieldReviewPeriodEnd)
	}
	if m.sections != nil {
		fields = append(fields, appraisal.FieldSections)
	}
	if m.ratings != nil {
		fields = append(fields, appraisal.FieldRatings)
	}
	if m.comments != nil {
		fields = append(fields, appraisal.FieldComments)
	}
	if m.career_aspirations != nil {
		fields = append(fields, appraisal.FieldCareerAspirations)
	}
	if m.ongoing_research != nil {
		fields = append(fields, appraisal.FieldOngoingResearch)
	}
	if m.last_research != nil {
		fields = append(fields, appraisal.FieldLastResearch)
	}
	if m.created_at != nil {
		fields = append(fields, appraisal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appraisal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppraisalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appraisal.FieldEmployeeID:
		return m.EmployeeID()
	case appraisal.FieldDateCreated:
		return m.DateCreated()
	case appraisal.FieldReviewPeriodStart:
		return m.ReviewPeriodStart()
	case appraisal.FieldReviewPeriodEnd:
		return m.ReviewPeriodEnd()
	case appraisal.FieldSections:
		return m.Sections()
	case appraisal.FieldRatings:
		return m.Ratings()
	case appraisal.FieldComments:
		return m.Comments()
	case appraisal.FieldCareerAspirations:
		return m.CareerAspirations()
	case appraisal.FieldOngoingResearch:
		return m.OngoingResearch()
	case appraisal.FieldLastResearch:
		return m.LastResearch()
	case appraisal.FieldCreatedAt:
		return m.CreatedAt()
	case appraisal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppraisalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appraisal.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case appraisal.FieldDateCreated:
		return m.OldDateCreated(ctx)
	case appraisal.FieldReviewPeriodStart:
		return m.OldReviewPeriodStart(ctx)
	case appraisal.FieldReviewPeriodEnd:
		return m.OldReviewPeriodEnd(ctx)
	case appraisal.FieldSections:
		return m.OldSections(ctx)
	case appraisal.FieldRatings:
		return m.OldRatings(ctx)
	case appraisal.FieldComments:
		return m.OldComments(ctx)
	case appraisal.FieldCareerAspirations:
		return m.OldCareerAspirations(ctx)
	case appraisal.FieldOngoingResearch:
		return m.OldOngoingResearch(ctx)
	case appraisal.FieldLastResearch:
		return m.OldLastResearch(ctx)
	case appraisal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appraisal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appraisal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppraisalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appraisal.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case appraisal.FieldDateCreated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateCreated(v)
		return nil
	case appraisal.FieldReviewPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewPeriodStart(v)
		return nil
	case appraisal.FieldReviewPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewPeriodEnd(v)
		return nil
	case appraisal.FieldSections:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case appraisal.FieldRatings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatings(v)
		return nil
	case appraisal.FieldComments:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case appraisal.FieldCareerAspirations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCareerAspirations(v)
		return nil
	case appraisal.FieldOngoingResearch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOngoingResearch(v)
		return nil
	case appraisal.FieldLastResearch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResearch(v)
		return nil
	case appraisal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appraisal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appraisal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppraisalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppraisalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppraisalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Appraisal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppraisalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appraisal.FieldReviewPeriodStart) {
		fields = append(fields, appraisal.FieldReviewPeriodStart)
	}
	if m.FieldCleared(appraisal.FieldReviewPeriodEnd) {
		fields = append(fields, appraisal.FieldReviewPeriodEnd)
	}
	if m.FieldCleared(appraisal.FieldSections) {
		fields = append(fields, appraisal.FieldSections)
	}
	if m.FieldCleared(appraisal.FieldRatings) {
		fields = append(fields, appraisal.FieldRatings)
	}
	if m.FieldCleared(appraisal.FieldComments) {
		fields = append(fields, appraisal.FieldComments)
	}
	if m.FieldCleared(appraisal.FieldCareerAspirations) {
		fields = append(fields, appraisal.FieldCareerAspirations)
	}
	if m.FieldCleared(appraisal.FieldOngoingResearch) {
		fields = append(fields, appraisal.FieldOngoingResearch)
	}
	if m.FieldCleared(appraisal.FieldLastResearch) {
		fields = append(fields, appraisal.FieldLastResearch)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppraisalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppraisalMutation) ClearField(name string) error {
	switch name {
	case appraisal.FieldReviewPeriodStart:
		m.ClearReviewPeriodStart()
		return nil
	case appraisal.FieldReviewPeriodEnd:
		m.ClearReviewPeriodEnd()
		return nil
	case appraisal.FieldSections:
		m.ClearSections()
		return nil
	case appraisal.FieldRatings:
		m.ClearRatings()
		return nil
	case appraisal.FieldComments:
		m.ClearComments()
		return nil
	case appraisal.FieldCareerAspirations:
		m.ClearCareerAspirations()
		return nil
	case appraisal.FieldOngoingResearch:
		m.ClearOngoingResearch()
		return nil
	case appraisal.FieldLastResearch:
		m.ClearLastResearch()
		return nil
	}
	return fmt.Errorf("unknown Appraisal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppraisalMutation) ResetField(name string) error {
	switch name {
	case appraisal.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case appraisal.FieldDateCreated:
		m.ResetDateCreated()
		return nil
	case appraisal.FieldReviewPeriodStart:
		m.ResetReviewPeriodStart()
		return nil
	case appraisal.FieldReviewPeriodEnd:
		m.ResetReviewPeriodEnd()
		return nil
	case appraisal.FieldSections:
		m.ResetSections()
		return nil
	case appraisal.FieldRatings:
		m.ResetRatings()
		return nil
	case appraisal.FieldComments:
		m.ResetComments()
		return nil
	case appraisal.FieldCareerAspirations:
		m.ResetCareerAspirations()
		return nil
	case appraisal.FieldOngoingResearch:
		m.ResetOngoingResearch()
		return nil
	case appraisal.FieldLastResearch:
		m.ResetLastResearch()
		return nil
	case appraisal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appraisal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Appraisal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppraisalMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employee != nil {
		edges = append(edges, appraisal.EdgeEmployee)
	}
	if m.jobs != nil {
		edges = append(edges, appraisal.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppraisalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appraisal.EdgeEmployee:
		if id := m.employee; id != nil {
			return []ent.Value{*id}
		}
	case appraisal.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppraisalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, appraisal.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppraisalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case appraisal.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppraisalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployee {
		edges = append(edges, appraisal.EdgeEmployee)
	}
	if m.clearedjobs {
		edges = append(edges, appraisal.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppraisalMutation) EdgeCleared(name string) bool {
	switch name {
	case appraisal.EdgeEmployee:
		return m.clearedemployee
	case appraisal.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppraisalMutation) ClearEdge(name string) error {
	switch name {
	case appraisal.EdgeEmployee:
		m.ClearEmployee()
		return nil
	}
	return fmt.Errorf("unknown Appraisal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppraisalMutation) ResetEdge(name string) error {
	switch name {
	case appraisal.EdgeEmployee:
		m.ResetEmployee()
		return nil
	case appraisal.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Appraisal edge %s", name)
}

// DocumentFileMutation represents an operation that mutates the DocumentFile nodes in the graph.
type DocumentFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_path     *string
	content_hash    *[]byte
	filename        *string
	file_ext        *string
	file_size       *int
	addfile_size    *int
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	employee        *uuid.UUID
	clearedemployee bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*DocumentFile, error)
	predicates      []predicate.DocumentFile
}

var _ ent.Mutation = (*DocumentFileMutation)(nil)

// documentfileOption allows management of the mutation configuration using functional options.
type documentfileOption func(*DocumentFileMutation)

// newDocumentFileMutation creates new mutation for the DocumentFile entity.
func newDocumentFileMutation(c config, op Op, opts ...documentfileOption) *DocumentFileMutation {
	m := &DocumentFileMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentFileID sets the ID field of the mutation.
func withDocumentFileID(id uuid.UUID) documentfileOption {
	return func(m *DocumentFileMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentFile
		)
		m.oldValue = func(ctx context.Context) (*DocumentFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentFile sets the old DocumentFile of the mutation.
func withDocumentFile(node *DocumentFile) documentfileOption {
	return func(m *DocumentFileMutation) {
		m.oldValue = func(context.Context) (*DocumentFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentFile entities.
func (m *DocumentFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployeeID sets the "employee_id" field.
func (m *DocumentFileMutation) SetEmployeeID(u uuid.UUID) {
	m.employee = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *DocumentFileMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *DocumentFileMutation) ResetEmployeeID() {
	m.employee = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the DocumentFile entity.
// If the DocumentFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (m *DocumentFileMutation) ClearEmployee() {
	m.clearedemployee = true
	m.clearedFields[documentfile.FieldEmployeeID] = struct{}{}
}

// EmployeeCleared reports if the "employee" edge to the Employee entity was cleared.
func (m *DocumentFileMutation) EmployeeCleared() bool {
	return m.clearedemployee
}

// EmployeeIDs returns the "employee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployeeID instead. It exists only for internal usage by the builders.
func (m *DocumentFileMutation) EmployeeIDs() (ids []uuid.UUID) {
	if id := m.employee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployee resets all changes to the "employee" edge.
func (m *DocumentFileMutation) ResetEmployee() {
	m.employee = nil
	m.clearedemployee = false
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by ids.
func (m *DocumentFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ParseJob entity.
func (m *DocumentFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ParseJob entity was cleared.
func (m *DocumentFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ParseJob entity by IDs.
func (m *DocumentFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ParseJob entity.
func (m *DocumentFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentFileMutation builder.
func (m *DocumentFileMutation) Where(ps ...predicate.DocumentFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentFile).
func (m *DocumentFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.employee != nil {
		fields = append(fields, documentfile.FieldEmployeeID)
	}
	if m.source_path != nil {
		fields = append(fields, documentfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, documentfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, documentfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, documentfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, documentfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, documentfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentfile.FieldEmployeeID:
		return m.EmployeeID()
	case documentfile.FieldSourcePath:
		return m.SourcePath()
	case documentfile.FieldContentHash:
		return m.ContentHash()
	case documentfile.FieldFilename:
		return m.Filename()
	case documentfile.FieldFileExt:
		return m.FileExt()
	case documentfile.FieldFileSize:
		return m.FileSize()
	case documentfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentfile.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case documentfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case documentfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case documentfile.FieldFilename:
		return m.OldFilename(ctx)
	case documentfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case documentfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case documentfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentfile.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case documentfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case documentfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case documentfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case documentfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case documentfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case documentfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, documentfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentFileMutation) ResetField(name string) error {
	switch name {
	case documentfile.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case documentfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case documentfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case documentfile.FieldFilename:
		m.ResetFilename()
		return nil
	case documentfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case documentfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case documentfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employee != nil {
		edges = append(edges, documentfile.EdgeEmployee)
	}
	if m.jobs != nil {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentfile.EdgeEmployee:
		if id := m.employee; id != nil {
			return []ent.Value{*id}
		}
	case documentfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployee {
		edges = append(edges, documentfile.EdgeEmployee)
	}
	if m.clearedjobs {
		edges = append(edges, documentfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentFileMutation) EdgeCleared(name string) bool {
	switch name {
	case documentfile.EdgeEmployee:
		return m.clearedemployee
	case documentfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentFileMutation) ClearEdge(name string) error {
	switch name {
	case documentfile.EdgeEmployee:
		m.ClearEmployee()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentFileMutation) ResetEdge(name string) error {
	switch name {
	case documentfile.EdgeEmployee:
		m.ResetEmployee()
		return nil
	case documentfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown DocumentFile edge %s", name)
}

// EmployeeMutation represents an operation that mutates the Employee nodes in the graph.
type EmployeeMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	first_name        *string
	last_name         *string
	email             *string
	phone_number      *string
	address           *string
	staff_no          *string
	post              *string
	faculty_programme *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	appraisals        map[uuid.UUID]struct{}
	removedappraisals map[uuid.UUID]struct{}
	clearedappraisals bool
	portfolios        map[uuid.UUID]struct{}
	removedportfolios map[uuid.UUID]struct{}
	clearedportfolios bool
	files             map[uuid.UUID]struct{}
	removedfiles      map[uuid.UUID]struct{}
	clearedfiles      bool
	done              bool
	oldValue          func(context.Context) (*Employee, error)
	predicates        []predicate.Employee
}

var _ ent.Mutation = (*EmployeeMutation)(nil)

// employeeOption allows management of the mutation configuration using functional options.
type employeeOption func(*EmployeeMutation)

// newEmployeeMutation creates new mutation for the Employee entity.
func newEmployeeMutation(c config, op Op, opts ...employeeOption) *EmployeeMutation {
	m := &EmployeeMutation{
		config:        c,
		op:            op,
		typ:           TypeEmployee,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmployeeID sets the ID field of the mutation.
func withEmployeeID(id uuid.UUID) employeeOption {
	return func(m *EmployeeMutation) {
		var (
			err   error
			once  sync.Once
			value *Employee
		)
		m.oldValue = func(ctx context.Context) (*Employee, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Employee.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmployee sets the old Employee of the mutation.
func withEmployee(node *Employee) employeeOption {
	return func(m *EmployeeMutation) {
		m.oldValue = func(context.Context) (*Employee, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmployeeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmployeeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Employee entities.
func (m *EmployeeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmployeeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmployeeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Employee.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *EmployeeMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *EmployeeMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *EmployeeMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *EmployeeMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *EmployeeMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *EmployeeMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[employee.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *EmployeeMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[employee.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *EmployeeMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, employee.FieldLastName)
}

// SetEmail sets the "email" field.
func (m *EmployeeMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *EmployeeMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *EmployeeMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[employee.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *EmployeeMutation) EmailCleared() bool {
	_, ok := m.clearedFields[employee.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *EmployeeMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, employee.FieldEmail)
}

// SetPhoneNumber sets the "phone_number" field.
func (m *EmployeeMutation) SetPhoneNumber(s string) {
	m.phone_number = &s
}

// PhoneNumber returns the value of the "phone_number" field in the mutation.
func (m *EmployeeMutation) PhoneNumber() (r string, exists bool) {
	v := m.phone_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumber returns the old "phone_number" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldPhoneNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumber: %w", err)
	}
	return oldValue.PhoneNumber, nil
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (m *EmployeeMutation) ClearPhoneNumber() {
	m.phone_number = nil
	m.clearedFields[employee.FieldPhoneNumber] = struct{}{}
}

// PhoneNumberCleared returns if the "phone_number" field was cleared in this mutation.
func (m *EmployeeMutation) PhoneNumberCleared() bool {
	_, ok := m.clearedFields[employee.FieldPhoneNumber]
	return ok
}

// ResetPhoneNumber resets all changes to the "phone_number" field.
func (m *EmployeeMutation) ResetPhoneNumber() {
	m.phone_number = nil
	delete(m.clearedFields, employee.FieldPhoneNumber)
}

// SetAddress sets the "address" field.
func (m *EmployeeMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *EmployeeMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *EmployeeMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[employee.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *EmployeeMutation) AddressCleared() bool {
	_, ok := m.clearedFields[employee.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *EmployeeMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, employee.FieldAddress)
}

// SetStaffNo sets the "staff_no" field.
func (m *EmployeeMutation) SetStaffNo(s string) {
	m.staff_no = &s
}

// StaffNo returns the value of the "staff_no" field in the mutation.
func (m *EmployeeMutation) StaffNo() (r string, exists bool) {
	v := m.staff_no
	if v == nil {
		return
	}
	return *v, true
}

// OldStaffNo returns the old "staff_no" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldStaffNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaffNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaffNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaffNo: %w", err)
	}
	return oldValue.StaffNo, nil
}

// ClearStaffNo clears the value of the "staff_no" field.
func (m *EmployeeMutation) ClearStaffNo() {
	m.staff_no = nil
	m.clearedFields[employee.FieldStaffNo] = struct{}{}
}

// StaffNoCleared returns if the "staff_no" field was cleared in this mutation.
func (m *EmployeeMutation) StaffNoCleared() bool {
	_, ok := m.clearedFields[employee.FieldStaffNo]
	return ok
}

// ResetStaffNo resets all changes to the "staff_no" field.
func (m *EmployeeMutation) ResetStaffNo() {
	m.staff_no = nil
	delete(m.clearedFields, employee.FieldStaffNo)
}

// SetPost sets the "post" field.
func (m *EmployeeMutation) SetPost(s string) {
	m.post = &s
}

// Post returns the value of the "post" field in the mutation.
func (m *EmployeeMutation) Post() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPost returns the old "post" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldPost(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPost: %w", err)
	}
	return oldValue.Post, nil
}

// ClearPost clears the value of the "post" field.
func (m *EmployeeMutation) ClearPost() {
	m.post = nil
	m.clearedFields[employee.FieldPost] = struct{}{}
}

// PostCleared returns if the "post" field was cleared in this mutation.
func (m *EmployeeMutation) PostCleared() bool {
	_, ok := m.clearedFields[employee.FieldPost]
	return ok
}

// ResetPost resets all changes to the "post" field.
func (m *EmployeeMutation) ResetPost() {
	m.post = nil
	delete(m.clearedFields, employee.FieldPost)
}

// SetFacultyProgramme sets the "faculty_programme" field.
func (m *EmployeeMutation) SetFacultyProgramme(s string) {
	m.faculty_programme = &s
}

// FacultyProgramme returns the value of the "faculty_programme" field in the mutation.
func (m *EmployeeMutation) FacultyProgramme() (r string, exists bool) {
	v := m.faculty_programme
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyProgramme returns the old "faculty_programme" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldFacultyProgramme(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyProgramme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyProgramme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyProgramme: %w", err)
	}
	return oldValue.FacultyProgramme, nil
}

// ClearFacultyProgramme clears the value of the "faculty_programme" field.
func (m *EmployeeMutation) ClearFacultyProgramme() {
	m.faculty_programme = nil
	m.clearedFields[employee.FieldFacultyProgramme] = struct{}{}
}

// FacultyProgrammeCleared returns if the "faculty_programme" field was cleared in this mutation.
func (m *EmployeeMutation) FacultyProgrammeCleared() bool {
	_, ok := m.clearedFields[employee.FieldFacultyProgramme]
	return ok
}

// ResetFacultyProgramme resets all changes to the "faculty_programme" field.
func (m *EmployeeMutation) ResetFacultyProgramme() {
	m.faculty_programme = nil
	delete(m.clearedFields, employee.FieldFacultyProgramme)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmployeeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmployeeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmployeeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmployeeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmployeeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Employee entity.
// If the Employee object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployeeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmployeeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAppraisalIDs adds the "appraisals" edge to the Appraisal entity by ids.
func (m *EmployeeMutation) AddAppraisalIDs(ids ...uuid.UUID) {
	if m.appraisals == nil {
		m.appraisals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.appraisals[ids[i]] = struct{}{}
	}
}

// ClearAppraisals clears the "appraisals" edge to the Appraisal entity.
func (m *EmployeeMutation) ClearAppraisals() {
	m.clearedappraisals = true
}

// AppraisalsCleared reports if the "appraisals" edge to the Appraisal entity was cleared.
func (m *EmployeeMutation) AppraisalsCleared() bool {
	return m.clearedappraisals
}

// RemoveAppraisalIDs removes the "appraisals" edge to the Appraisal entity by IDs.
func (m *EmployeeMutation) RemoveAppraisalIDs(ids ...uuid.UUID) {
	if m.removedappraisals == nil {
		m.removedappraisals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.appraisals, ids[i])
		m.removedappraisals[ids[i]] = struct{}{}
	}
}

// RemovedAppraisals returns the removed IDs of the "appraisals" edge to the Appraisal entity.
func (m *EmployeeMutation) RemovedAppraisalsIDs() (ids []uuid.UUID) {
	for id := range m.removedappraisals {
		ids = append(ids, id)
	}
	return
}

// AppraisalsIDs returns the "appraisals" edge IDs in the mutation.
func (m *EmployeeMutation) AppraisalsIDs() (ids []uuid.UUID) {
	for id := range m.appraisals {
		ids = append(ids, id)
	}
	return
}

// ResetAppraisals resets all changes to the "appraisals" edge.
func (m *EmployeeMutation) ResetAppraisals() {
	m.appraisals = nil
	m.clearedappraisals = false
	m.removedappraisals = nil
}

// AddPortfolioIDs adds the "portfolios" edge to the TeachingPortfolio entity by ids.
func (m *EmployeeMutation) AddPortfolioIDs(ids ...uuid.UUID) {
	if m.portfolios == nil {
		m.portfolios = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.portfolios[ids[i]] = struct{}{}
	}
}

// ClearPortfolios clears the "portfolios" edge to the TeachingPortfolio entity.
func (m *EmployeeMutation) ClearPortfolios() {
	m.clearedportfolios = true
}

// PortfoliosCleared reports if the "portfolios" edge to the TeachingPortfolio entity was cleared.
func (m *EmployeeMutation) PortfoliosCleared() bool {
	return m.clearedportfolios
}

// RemovePortfolioIDs removes the "portfolios" edge to the TeachingPortfolio entity by IDs.
func (m *EmployeeMutation) RemovePortfolioIDs(ids ...uuid.UUID) {
	if m.removedportfolios == nil {
		m.removedportfolios = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.portfolios, ids[i])
		m.removedportfolios[ids[i]] = struct{}{}
	}
}

// RemovedPortfolios returns the removed IDs of the "portfolios" edge to the TeachingPortfolio entity.
func (m *EmployeeMutation) RemovedPortfoliosIDs() (ids []uuid.UUID) {
	for id := range m.removedportfolios {
		ids = append(ids, id)
	}
	return
}

// PortfoliosIDs returns the "portfolios" edge IDs in the mutation.
func (m *EmployeeMutation) PortfoliosIDs() (ids []uuid.UUID) {
	for id := range m.portfolios {
		ids = append(ids, id)
	}
	return
}

// ResetPortfolios resets all changes to the "portfolios" edge.
func (m *EmployeeMutation) ResetPortfolios() {
	m.portfolios = nil
	m.clearedportfolios = false
	m.removedportfolios = nil
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by ids.
func (m *EmployeeMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the DocumentFile entity.
func (m *EmployeeMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the DocumentFile entity was cleared.
func (m *EmployeeMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the DocumentFile entity by IDs.
func (m *EmployeeMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the DocumentFile entity.
func (m *EmployeeMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *EmployeeMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *EmployeeMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the EmployeeMutation builder.
func (m *EmployeeMutation) Where(ps ...predicate.Employee) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmployeeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmployeeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Employee, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmployeeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmployeeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Employee).
func (m *EmployeeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmployeeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.first_name != nil {
		fields = append(fields, employee.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, employee.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, employee.FieldEmail)
	}
	if m.phone_number != nil {
		fields = append(fields, employee.FieldPhoneNumber)
	}
	if m.address != nil {
		fields = append(fields, employee.FieldAddress)
	}
	if m.staff_no != nil {
		fields = append(fields, employee.FieldStaffNo)
	}
	if m.post != nil {
		fields = append(fields, employee.FieldPost)
	}
	if m.faculty_programme != nil {
		fields = append(fields, employee.FieldFacultyProgramme)
	}
	if m.created_at != nil {
		fields = append(fields, employee.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, employee.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmployeeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case employee.FieldFirstName:
		return m.FirstName()
	case employee.FieldLastName:
		return m.LastName()
	case employee.FieldEmail:
		return m.Email()
	case employee.FieldPhoneNumber:
		return m.PhoneNumber()
	case employee.FieldAddress:
		return m.Address()
	case employee.FieldStaffNo:
		return m.StaffNo()
	case employee.FieldPost:
		return m.Post()
	case employee.FieldFacultyProgramme:
		return m.FacultyProgramme()
	case employee.FieldCreatedAt:
		return m.CreatedAt()
	case employee.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmployeeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case employee.FieldFirstName:
		return m.OldFirstName(ctx)
	case employee.FieldLastName:
		return m.OldLastName(ctx)
	case employee.FieldEmail:
		return m.OldEmail(ctx)
	case employee.FieldPhoneNumber:
		return m.OldPhoneNumber(ctx)
	case employee.FieldAddress:
		return m.OldAddress(ctx)
	case employee.FieldStaffNo:
		return m.OldStaffNo(ctx)
	case employee.FieldPost:
		return m.OldPost(ctx)
	case employee.FieldFacultyProgramme:
		return m.OldFacultyProgramme(ctx)
	case employee.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case employee.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Employee field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case employee.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case employee.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case employee.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case employee.FieldPhoneNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumber(v)
		return nil
	case employee.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case employee.FieldStaffNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaffNo(v)
		return nil
	case employee.FieldPost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPost(v)
		return nil
	case employee.FieldFacultyProgramme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyProgramme(v)
		return nil
	case employee.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case employee.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Employee field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmployeeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmployeeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployeeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Employee numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmployeeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(employee.FieldLastName) {
		fields = append(fields, employee.FieldLastName)
	}
	if m.FieldCleared(employee.FieldEmail) {
		fields = append(fields, employee.FieldEmail)
	}
	if m.FieldCleared(employee.FieldPhoneNumber) {
		fields = append(fields, employee.FieldPhoneNumber)
	}
	if m.FieldCleared(employee.FieldAddress) {
		fields = append(fields, employee.FieldAddress)
	}
	if m.FieldCleared(employee.FieldStaffNo) {
		fields = append(fields, employee.FieldStaffNo)
	}
	if m.FieldCleared(employee.FieldPost) {
		fields = append(fields, employee.FieldPost)
	}
	if m.FieldCleared(employee.FieldFacultyProgramme) {
		fields = append(fields, employee.FieldFacultyProgramme)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmployeeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmployeeMutation) ClearField(name string) error {
	switch name {
	case employee.FieldLastName:
		m.ClearLastName()
		return nil
	case employee.FieldEmail:
		m.ClearEmail()
		return nil
	case employee.FieldPhoneNumber:
		m.ClearPhoneNumber()
		return nil
	case employee.FieldAddress:
		m.ClearAddress()
		return nil
	case employee.FieldStaffNo:
		m.ClearStaffNo()
		return nil
	case employee.FieldPost:
		m.ClearPost()
		return nil
	case employee.FieldFacultyProgramme:
		m.ClearFacultyProgramme()
		return nil
	}
	return fmt.Errorf("unknown Employee nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmployeeMutation) ResetField(name string) error {
	switch name {
	case employee.FieldFirstName:
		m.ResetFirstName()
		return nil
	case employee.FieldLastName:
		m.ResetLastName()
		return nil
	case employee.FieldEmail:
		m.ResetEmail()
		return nil
	case employee.FieldPhoneNumber:
		m.ResetPhoneNumber()
		return nil
	case employee.FieldAddress:
		m.ResetAddress()
		return nil
	case employee.FieldStaffNo:
		m.ResetStaffNo()
		return nil
	case employee.FieldPost:
		m.ResetPost()
		return nil
	case employee.FieldFacultyProgramme:
		m.ResetFacultyProgramme()
		return nil
	case employee.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case employee.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Employee field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmployeeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.appraisals != nil {
		edges = append(edges, employee.EdgeAppraisals)
	}
	if m.portfolios != nil {
		edges = append(edges, employee.EdgePortfolios)
	}
	if m.files != nil {
		edges = append(edges, employee.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmployeeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case employee.EdgeAppraisals:
		ids := make([]ent.Value, 0, len(m.appraisals))
		for id := range m.appraisals {
			ids = append(ids, id)
		}
		return ids
	case employee.EdgePortfolios:
		ids := make([]ent.Value, 0, len(m.portfolios))
		for id := range m.portfolios {
			ids = append(ids, id)
		}
		return ids
	case employee.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmployeeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedappraisals != nil {
		edges = append(edges, employee.EdgeAppraisals)
	}
	if m.removedportfolios != nil {
		edges = append(edges, employee.EdgePortfolios)
	}
	if m.removedfiles != nil {
		edges = append(edges, employee.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmployeeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case employee.EdgeAppraisals:
		ids := make([]ent.Value, 0, len(m.removedappraisals))
		for id := range m.removedappraisals {
			ids = append(ids, id)
		}
		return ids
	case employee.EdgePortfolios:
		ids := make([]ent.Value, 0, len(m.removedportfolios))
		for id := range m.removedportfolios {
			ids = append(ids, id)
		}
		return ids
	case employee.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmployeeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedappraisals {
		edges = append(edges, employee.EdgeAppraisals)
	}
	if m.clearedportfolios {
		edges = append(edges, employee.EdgePortfolios)
	}
	if m.clearedfiles {
		edges = append(edges, employee.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmployeeMutation) EdgeCleared(name string) bool {
	switch name {
	case employee.EdgeAppraisals:
		return m.clearedappraisals
	case employee.EdgePortfolios:
		return m.clearedportfolios
	case employee.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmployeeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Employee unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmployeeMutation) ResetEdge(name string) error {
	switch name {
	case employee.EdgeAppraisals:
		m.ResetAppraisals()
		return nil
	case employee.EdgePortfolios:
		m.ResetPortfolios()
		return nil
	case employee.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown Employee edge %s", name)
}

// ParseJobMutation represents an operation that mutates the ParseJob nodes in the graph.
type ParseJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	doc_type          *string
	format            *string
	started_at        *time.Time
	finished_at       *time.Time
	status            *string
	error_message     *string
	pages             *int
	addpages          *int
	extracted_text    *string
	record_json       *json.RawMessage
	appendrecord_json json.RawMessage
	empty_record      *bool
	extract_method    *string
	clearedFields     map[string]struct{}
	file              *uuid.UUID
	clearedfile       bool
	appraisal         *uuid.UUID
	clearedappraisal  bool
	done              bool
	oldValue          func(context.Context) (*ParseJob, error)
	predicates        []predicate.ParseJob
}

var _ ent.Mutation = (*ParseJobMutation)(nil)

// parsejobOption allows management of the mutation configuration using functional options.
type parsejobOption func(*ParseJobMutation)

// newParseJobMutation creates new mutation for the ParseJob entity.
func newParseJobMutation(c config, op Op, opts ...parsejobOption) *ParseJobMutation {
	m := &ParseJobMutation{
		config:        c,
		op:            op,
		typ:           TypeParseJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseJobID sets the ID field of the mutation.
func withParseJobID(id uuid.UUID) parsejobOption {
	return func(m *ParseJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseJob
		)
		m.oldValue = func(ctx context.Context) (*ParseJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseJob sets the old ParseJob of the mutation.
func withParseJob(node *ParseJob) parsejobOption {
	return func(m *ParseJobMutation) {
		m.oldValue = func(context.Context) (*ParseJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseJob entities.
func (m *ParseJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ParseJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ParseJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ParseJobMutation) ResetFileID() {
	m.file = nil
}

// SetAppraisalID sets the "appraisal_id" field.
func (m *ParseJobMutation) SetAppraisalID(u uuid.UUID) {
	m.appraisal = &u
}

// AppraisalID returns the value of the "appraisal_id" field in the mutation.
func (m *ParseJobMutation) AppraisalID() (r uuid.UUID, exists bool) {
	v := m.appraisal
	if v == nil {
		return
	}
	return *v, true
}

// OldAppraisalID returns the old "appraisal_id" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldAppraisalID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppraisalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppraisalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppraisalID: %w", err)
	}
	return oldValue.AppraisalID, nil
}

// ClearAppraisalID clears the value of the "appraisal_id" field.
func (m *ParseJobMutation) ClearAppraisalID() {
	m.appraisal = nil
	m.clearedFields[parsejob.FieldAppraisalID] = struct{}{}
}

// AppraisalIDCleared returns if the "appraisal_id" field was cleared in this mutation.
func (m *ParseJobMutation) AppraisalIDCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldAppraisalID]
	return ok
}

// ResetAppraisalID resets all changes to the "appraisal_id" field.
func (m *ParseJobMutation) ResetAppraisalID() {
	m.appraisal = nil
	delete(m.clearedFields, parsejob.FieldAppraisalID)
}

// SetDocType sets the "doc_type" field.
func (m *ParseJobMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *ParseJobMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *ParseJobMutation) ResetDocType() {
	m.doc_type = nil
}

// SetFormat sets the "format" field.
func (m *ParseJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ParseJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ParseJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ParseJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parsejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parsejob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ParseJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ParseJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[parsejob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ParseJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, parsejob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parsejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parsejob.FieldErrorMessage)
}

// SetPages sets the "pages" field.
func (m *ParseJobMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ParseJobMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldPages(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *ParseJobMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *ParseJobMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ClearPages clears the value of the "pages" field.
func (m *ParseJobMutation) ClearPages() {
	m.pages = nil
	m.addpages = nil
	m.clearedFields[parsejob.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *ParseJobMutation) PagesCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *ParseJobMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
	delete(m.clearedFields, parsejob.FieldPages)
}

// SetExtractedText sets the "extracted_text" field.
func (m *ParseJobMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *ParseJobMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *ParseJobMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[parsejob.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *ParseJobMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *ParseJobMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, parsejob.FieldExtractedText)
}

// SetRecordJSON sets the "record_json" field.
func (m *ParseJobMutation) SetRecordJSON(jm json.RawMessage) {
	m.record_json = &jm
	m.appendrecord_json = nil
}

// RecordJSON returns the value of the "record_json" field in the mutation.
func (m *ParseJobMutation) RecordJSON() (r json.RawMessage, exists bool) {
	v := m.record_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordJSON returns the old "record_json" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldRecordJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordJSON: %w", err)
	}
	return oldValue.RecordJSON, nil
}

// AppendRecordJSON adds jm to the "record_json" field.
func (m *ParseJobMutation) AppendRecordJSON(jm json.RawMessage) {
	m.appendrecord_json = append(m.appendrecord_json, jm...)
}

// AppendedRecordJSON returns the list of values that were appended to the "record_json" field in this mutation.
func (m *ParseJobMutation) AppendedRecordJSON() (json.RawMessage, bool) {
	if len(m.appendrecord_json) == 0 {
		return nil, false
	}
	return m.appendrecord_json, true
}

// ClearRecordJSON clears the value of the "record_json" field.
func (m *ParseJobMutation) ClearRecordJSON() {
	m.record_json = nil
	m.appendrecord_json = nil
	m.clearedFields[parsejob.FieldRecordJSON] = struct{}{}
}

// RecordJSONCleared returns if the "record_json" field was cleared in this mutation.
func (m *ParseJobMutation) RecordJSONCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldRecordJSON]
	return ok
}

// ResetRecordJSON resets all changes to the "record_json" field.
func (m *ParseJobMutation) ResetRecordJSON() {
	m.record_json = nil
	m.appendrecord_json = nil
	delete(m.clearedFields, parsejob.FieldRecordJSON)
}

// SetEmptyRecord sets the "empty_record" field.
func (m *ParseJobMutation) SetEmptyRecord(b bool) {
	m.empty_record = &b
}

// EmptyRecord returns the value of the "empty_record" field in the mutation.
func (m *ParseJobMutation) EmptyRecord() (r bool, exists bool) {
	v := m.empty_record
	if v == nil {
		return
	}
	return *v, true
}

// OldEmptyRecord returns the old "empty_record" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldEmptyRecord(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmptyRecord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmptyRecord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmptyRecord: %w", err)
	}
	return oldValue.EmptyRecord, nil
}

// ResetEmptyRecord resets all changes to the "empty_record" field.
func (m *ParseJobMutation) ResetEmptyRecord() {
	m.empty_record = nil
}

// SetExtractMethod sets the "extract_method" field.
func (m *ParseJobMutation) SetExtractMethod(s string) {
	m.extract_method = &s
}

// ExtractMethod returns the value of the "extract_method" field in the mutation.
func (m *ParseJobMutation) ExtractMethod() (r string, exists bool) {
	v := m.extract_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractMethod returns the old "extract_method" field's value of the ParseJob entity.
// If the ParseJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseJobMutation) OldExtractMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractMethod: %w", err)
	}
	return oldValue.ExtractMethod, nil
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (m *ParseJobMutation) ClearExtractMethod() {
	m.extract_method = nil
	m.clearedFields[parsejob.FieldExtractMethod] = struct{}{}
}

// ExtractMethodCleared returns if the "extract_method" field was cleared in this mutation.
func (m *ParseJobMutation) ExtractMethodCleared() bool {
	_, ok := m.clearedFields[parsejob.FieldExtractMethod]
	return ok
}

// ResetExtractMethod resets all changes to the "extract_method" field.
func (m *ParseJobMutation) ResetExtractMethod() {
	m.extract_method = nil
	delete(m.clearedFields, parsejob.FieldExtractMethod)
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (m *ParseJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[parsejob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the DocumentFile entity was cleared.
func (m *ParseJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ParseJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearAppraisal clears the "appraisal" edge to the Appraisal entity.
func (m *ParseJobMutation) ClearAppraisal() {
	m.clearedappraisal = true
	m.clearedFields[parsejob.FieldAppraisalID] = struct{}{}
}

// AppraisalCleared reports if the "appraisal" edge to the Appraisal entity was cleared.
func (m *ParseJobMutation) AppraisalCleared() bool {
	return m.AppraisalIDCleared() || m.clearedappraisal
}

// AppraisalIDs returns the "appraisal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AppraisalID instead. It exists only for internal usage by the builders.
func (m *ParseJobMutation) AppraisalIDs() (ids []uuid.UUID) {
	if id := m.appraisal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAppraisal resets all changes to the "appraisal" edge.
func (m *ParseJobMutation) ResetAppraisal() {
	m.appraisal = nil
	m.clearedappraisal = false
}

// Where appends a list predicates to the ParseJobMutation builder.
func (m *ParseJobMutation) Where(ps ...predicate.ParseJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseJob).
func (m *ParseJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.file != nil {
		fields = append(fields, parsejob.FieldFileID)
	}
	if m.appraisal != nil {
		fields = append(fields, parsejob.FieldAppraisalID)
	}
	if m.doc_type != nil {
		fields = append(fields, parsejob.FieldDocType)
	}
	if m.format != nil {
		fields = append(fields, parsejob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, parsejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.pages != nil {
		fields = append(fields, parsejob.FieldPages)
	}
	if m.extracted_text != nil {
		fields = append(fields, parsejob.FieldExtractedText)
	}
	if m.record_json != nil {
		fields = append(fields, parsejob.FieldRecordJSON)
	}
	if m.empty_record != nil {
		fields = append(fields, parsejob.FieldEmptyRecord)
	}
	if m.extract_method != nil {
		fields = append(fields, parsejob.FieldExtractMethod)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldFileID:
		return m.FileID()
	case parsejob.FieldAppraisalID:
		return m.AppraisalID()
	case parsejob.FieldDocType:
		return m.DocType()
	case parsejob.FieldFormat:
		return m.Format()
	case parsejob.FieldStartedAt:
		return m.StartedAt()
	case parsejob.FieldFinishedAt:
		return m.FinishedAt()
	case parsejob.FieldStatus:
		return m.Status()
	case parsejob.FieldErrorMessage:
		return m.ErrorMessage()
	case parsejob.FieldPages:
		return m.Pages()
	case parsejob.FieldExtractedText:
		return m.ExtractedText()
	case parsejob.FieldRecordJSON:
		return m.RecordJSON()
	case parsejob.FieldEmptyRecord:
		return m.EmptyRecord()
	case parsejob.FieldExtractMethod:
		return m.ExtractMethod()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsejob.FieldFileID:
		return m.OldFileID(ctx)
	case parsejob.FieldAppraisalID:
		return m.OldAppraisalID(ctx)
	case parsejob.FieldDocType:
		return m.OldDocType(ctx)
	case parsejob.FieldFormat:
		return m.OldFormat(ctx)
	case parsejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parsejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case parsejob.FieldStatus:
		return m.OldStatus(ctx)
	case parsejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parsejob.FieldPages:
		return m.OldPages(ctx)
	case parsejob.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case parsejob.FieldRecordJSON:
		return m.OldRecordJSON(ctx)
	case parsejob.FieldEmptyRecord:
		return m.OldEmptyRecord(ctx)
	case parsejob.FieldExtractMethod:
		return m.OldExtractMethod(ctx)
	}
	return nil, fmt.Errorf("unknown ParseJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case parsejob.FieldAppraisalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppraisalID(v)
		return nil
	case parsejob.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case parsejob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case parsejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parsejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case parsejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parsejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parsejob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case parsejob.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case parsejob.FieldRecordJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordJSON(v)
		return nil
	case parsejob.FieldEmptyRecord:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmptyRecord(v)
		return nil
	case parsejob.FieldExtractMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractMethod(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseJobMutation) AddedFields() []string {
	var fields []string
	if m.addpages != nil {
		fields = append(fields, parsejob.FieldPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsejob.FieldPages:
		return m.AddedPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsejob.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	}
	return fmt.Errorf("unknown ParseJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsejob.FieldAppraisalID) {
		fields = append(fields, parsejob.FieldAppraisalID)
	}
	if m.FieldCleared(parsejob.FieldFinishedAt) {
		fields = append(fields, parsejob.FieldFinishedAt)
	}
	if m.FieldCleared(parsejob.FieldStatus) {
		fields = append(fields, parsejob.FieldStatus)
	}
	if m.FieldCleared(parsejob.FieldErrorMessage) {
		fields = append(fields, parsejob.FieldErrorMessage)
	}
	if m.FieldCleared(parsejob.FieldPages) {
		fields = append(fields, parsejob.FieldPages)
	}
	if m.FieldCleared(parsejob.FieldExtractedText) {
		fields = append(fields, parsejob.FieldExtractedText)
	}
	if m.FieldCleared(parsejob.FieldRecordJSON) {
		fields = append(fields, parsejob.FieldRecordJSON)
	}
	if m.FieldCleared(parsejob.FieldExtractMethod) {
		fields = append(fields, parsejob.FieldExtractMethod)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseJobMutation) ClearField(name string) error {
	switch name {
	case parsejob.FieldAppraisalID:
		m.ClearAppraisalID()
		return nil
	case parsejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ClearStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parsejob.FieldPages:
		m.ClearPages()
		return nil
	case parsejob.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case parsejob.FieldRecordJSON:
		m.ClearRecordJSON()
		return nil
	case parsejob.FieldExtractMethod:
		m.ClearExtractMethod()
		return nil
	}
	return fmt.Errorf("unknown ParseJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseJobMutation) ResetField(name string) error {
	switch name {
	case parsejob.FieldFileID:
		m.ResetFileID()
		return nil
	case parsejob.FieldAppraisalID:
		m.ResetAppraisalID()
		return nil
	case parsejob.FieldDocType:
		m.ResetDocType()
		return nil
	case parsejob.FieldFormat:
		m.ResetFormat()
		return nil
	case parsejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parsejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case parsejob.FieldStatus:
		m.ResetStatus()
		return nil
	case parsejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parsejob.FieldPages:
		m.ResetPages()
		return nil
	case parsejob.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case parsejob.FieldRecordJSON:
		m.ResetRecordJSON()
		return nil
	case parsejob.FieldEmptyRecord:
		m.ResetEmptyRecord()
		return nil
	case parsejob.FieldExtractMethod:
		m.ResetExtractMethod()
		return nil
	}
	return fmt.Errorf("unknown ParseJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.appraisal != nil {
		edges = append(edges, parsejob.EdgeAppraisal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parsejob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case parsejob.EdgeAppraisal:
		if id := m.appraisal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, parsejob.EdgeFile)
	}
	if m.clearedappraisal {
		edges = append(edges, parsejob.EdgeAppraisal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseJobMutation) EdgeCleared(name string) bool {
	switch name {
	case parsejob.EdgeFile:
		return m.clearedfile
	case parsejob.EdgeAppraisal:
		return m.clearedappraisal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseJobMutation) ClearEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ClearFile()
		return nil
	case parsejob.EdgeAppraisal:
		m.ClearAppraisal()
		return nil
	}
	return fmt.Errorf("unknown ParseJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseJobMutation) ResetEdge(name string) error {
	switch name {
	case parsejob.EdgeFile:
		m.ResetFile()
		return nil
	case parsejob.EdgeAppraisal:
		m.ResetAppraisal()
		return nil
	}
	return fmt.Errorf("unknown ParseJob edge %s", name)
}

// TeachingPortfolioMutation represents an operation that mutates the TeachingPortfolio nodes in the graph.
type TeachingPortfolioMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	sections              *json.RawMessage
	appendsections        json.RawMessage
	teaching_philosophy   *string
	future_teaching_goals *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	employee              *uuid.UUID
	clearedemployee       bool
	done                  bool
	oldValue              func(context.Context) (*TeachingPortfolio, error)
	predicates            []predicate.TeachingPortfolio
}

var _ ent.Mutation = (*TeachingPortfolioMutation)(nil)

// teachingportfolioOption allows management of the mutation configuration using functional options.
type teachingportfolioOption func(*TeachingPortfolioMutation)

// newTeachingPortfolioMutation creates new mutation for the TeachingPortfolio entity.
func newTeachingPortfolioMutation(c config, op Op, opts ...teachingportfolioOption) *TeachingPortfolioMutation {
	m := &TeachingPortfolioMutation{
		config:        c,
		op:            op,
		typ:           TypeTeachingPortfolio,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeachingPortfolioID sets the ID field of the mutation.
func withTeachingPortfolioID(id uuid.UUID) teachingportfolioOption {
	return func(m *TeachingPortfolioMutation) {
		var (
			err   error
			once  sync.Once
			value *TeachingPortfolio
		)
		m.oldValue = func(ctx context.Context) (*TeachingPortfolio, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TeachingPortfolio.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeachingPortfolio sets the old TeachingPortfolio of the mutation.
func withTeachingPortfolio(node *TeachingPortfolio) teachingportfolioOption {
	return func(m *TeachingPortfolioMutation) {
		m.oldValue = func(context.Context) (*TeachingPortfolio, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeachingPortfolioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeachingPortfolioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TeachingPortfolio entities.
func (m *TeachingPortfolioMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeachingPortfolioMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeachingPortfolioMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TeachingPortfolio.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployeeID sets the "employee_id" field.
func (m *TeachingPortfolioMutation) SetEmployeeID(u uuid.UUID) {
	m.employee = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *TeachingPortfolioMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *TeachingPortfolioMutation) ResetEmployeeID() {
	m.employee = nil
}

// SetSections sets the "sections" field.
func (m *TeachingPortfolioMutation) SetSections(jm json.RawMessage) {
	m.sections = &jm
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *TeachingPortfolioMutation) Sections() (r json.RawMessage, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldSections(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds jm to the "sections" field.
func (m *TeachingPortfolioMutation) AppendSections(jm json.RawMessage) {
	m.appendsections = append(m.appendsections, jm...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *TeachingPortfolioMutation) AppendedSections() (json.RawMessage, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ClearSections clears the value of the "sections" field.
func (m *TeachingPortfolioMutation) ClearSections() {
	m.sections = nil
	m.appendsections = nil
	m.clearedFields[teachingportfolio.FieldSections] = struct{}{}
}

// SectionsCleared returns if the "sections" field was cleared in this mutation.
func (m *TeachingPortfolioMutation) SectionsCleared() bool {
	_, ok := m.clearedFields[teachingportfolio.FieldSections]
	return ok
}

// ResetSections resets all changes to the "sections" field.
func (m *TeachingPortfolioMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
	delete(m.clearedFields, teachingportfolio.FieldSections)
}

// SetTeachingPhilosophy sets the "teaching_philosophy" field.
func (m *TeachingPortfolioMutation) SetTeachingPhilosophy(s string) {
	m.teaching_philosophy = &s
}

// TeachingPhilosophy returns the value of the "teaching_philosophy" field in the mutation.
func (m *TeachingPortfolioMutation) TeachingPhilosophy() (r string, exists bool) {
	v := m.teaching_philosophy
	if v == nil {
		return
	}
	return *v, true
}

// OldTeachingPhilosophy returns the old "teaching_philosophy" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldTeachingPhilosophy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeachingPhilosophy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeachingPhilosophy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeachingPhilosophy: %w", err)
	}
	return oldValue.TeachingPhilosophy, nil
}

// ClearTeachingPhilosophy clears the value of the "teaching_philosophy" field.
func (m *TeachingPortfolioMutation) ClearTeachingPhilosophy() {
	m.teaching_philosophy = nil
	m.clearedFields[teachingportfolio.FieldTeachingPhilosophy] = struct{}{}
}

// TeachingPhilosophyCleared returns if the "teaching_philosophy" field was cleared in this mutation.
func (m *TeachingPortfolioMutation) TeachingPhilosophyCleared() bool {
	_, ok := m.clearedFields[teachingportfolio.FieldTeachingPhilosophy]
	return ok
}

// ResetTeachingPhilosophy resets all changes to the "teaching_philosophy" field.
func (m *TeachingPortfolioMutation) ResetTeachingPhilosophy() {
	m.teaching_philosophy = nil
	delete(m.clearedFields, teachingportfolio.FieldTeachingPhilosophy)
}

// SetFutureTeachingGoals sets the "future_teaching_goals" field.
func (m *TeachingPortfolioMutation) SetFutureTeachingGoals(s string) {
	m.future_teaching_goals = &s
}

// FutureTeachingGoals returns the value of the "future_teaching_goals" field in the mutation.
func (m *TeachingPortfolioMutation) FutureTeachingGoals() (r string, exists bool) {
	v := m.future_teaching_goals
	if v == nil {
		return
	}
	return *v, true
}

// OldFutureTeachingGoals returns the old "future_teaching_goals" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldFutureTeachingGoals(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFutureTeachingGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFutureTeachingGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFutureTeachingGoals: %w", err)
	}
	return oldValue.FutureTeachingGoals, nil
}

// ClearFutureTeachingGoals clears the value of the "future_teaching_goals" field.
func (m *TeachingPortfolioMutation) ClearFutureTeachingGoals() {
	m.future_teaching_goals = nil
	m.clearedFields[teachingportfolio.FieldFutureTeachingGoals] = struct{}{}
}

// FutureTeachingGoalsCleared returns if the "future_teaching_goals" field was cleared in this mutation.
func (m *TeachingPortfolioMutation) FutureTeachingGoalsCleared() bool {
	_, ok := m.clearedFields[teachingportfolio.FieldFutureTeachingGoals]
	return ok
}

// ResetFutureTeachingGoals resets all changes to the "future_teaching_goals" field.
func (m *TeachingPortfolioMutation) ResetFutureTeachingGoals() {
	m.future_teaching_goals = nil
	delete(m.clearedFields, teachingportfolio.FieldFutureTeachingGoals)
}

// SetCreatedAt sets the "created_at" field.
func (m *TeachingPortfolioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeachingPortfolioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeachingPortfolioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeachingPortfolioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeachingPortfolioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TeachingPortfolio entity.
// If the TeachingPortfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeachingPortfolioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeachingPortfolioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (m *TeachingPortfolioMutation) ClearEmployee() {
	m.clearedemployee = true
	m.clearedFields[teachingportfolio.FieldEmployeeID] = struct{}{}
}

// EmployeeCleared reports if the "employee" edge to the Employee entity was cleared.
func (m *TeachingPortfolioMutation) EmployeeCleared() bool {
	return m.clearedemployee
}

// EmployeeIDs returns the "employee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployeeID instead. It exists only for internal usage by the builders.
func (m *TeachingPortfolioMutation) EmployeeIDs() (ids []uuid.UUID) {
	if id := m.employee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployee resets all changes to the "employee" edge.
func (m *TeachingPortfolioMutation) ResetEmployee() {
	m.employee = nil
	m.clearedemployee = false
}

// Where appends a list predicates to the TeachingPortfolioMutation builder.
func (m *TeachingPortfolioMutation) Where(ps ...predicate.TeachingPortfolio) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeachingPortfolioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeachingPortfolioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TeachingPortfolio, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeachingPortfolioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeachingPortfolioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TeachingPortfolio).
func (m *TeachingPortfolioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeachingPortfolioMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.employee != nil {
		fields = append(fields, teachingportfolio.FieldEmployeeID)
	}
	if m.sections != nil {
		fields = append(fields, teachingportfolio.FieldSections)
	}
	if m.teaching_philosophy != nil {
		fields = append(fields, teachingportfolio.FieldTeachingPhilosophy)
	}
	if m.future_teaching_goals != nil {
		fields = append(fields, teachingportfolio.FieldFutureTeachingGoals)
	}
	if m.created_at != nil {
		fields = append(fields, teachingportfolio.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, teachingportfolio.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeachingPortfolioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case teachingportfolio.FieldEmployeeID:
		return m.EmployeeID()
	case teachingportfolio.FieldSections:
		return m.Sections()
	case teachingportfolio.FieldTeachingPhilosophy:
		return m.TeachingPhilosophy()
	case teachingportfolio.FieldFutureTeachingGoals:
		return m.FutureTeachingGoals()
	case teachingportfolio.FieldCreatedAt:
		return m.CreatedAt()
	case teachingportfolio.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeachingPortfolioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case teachingportfolio.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case teachingportfolio.FieldSections:
		return m.OldSections(ctx)
	case teachingportfolio.FieldTeachingPhilosophy:
		return m.OldTeachingPhilosophy(ctx)
	case teachingportfolio.FieldFutureTeachingGoals:
		return m.OldFutureTeachingGoals(ctx)
	case teachingportfolio.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case teachingportfolio.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TeachingPortfolio field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeachingPortfolioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case teachingportfolio.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case teachingportfolio.FieldSections:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case teachingportfolio.FieldTeachingPhilosophy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeachingPhilosophy(v)
		return nil
	case teachingportfolio.FieldFutureTeachingGoals:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFutureTeachingGoals(v)
		return nil
	case teachingportfolio.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case teachingportfolio.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TeachingPortfolio field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeachingPortfolioMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeachingPortfolioMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeachingPortfolioMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TeachingPortfolio numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeachingPortfolioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(teachingportfolio.FieldSections) {
		fields = append(fields, teachingportfolio.FieldSections)
	}
	if m.FieldCleared(teachingportfolio.FieldTeachingPhilosophy) {
		fields = append(fields, teachingportfolio.FieldTeachingPhilosophy)
	}
	if m.FieldCleared(teachingportfolio.FieldFutureTeachingGoals) {
		fields = append(fields, teachingportfolio.FieldFutureTeachingGoals)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeachingPortfolioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeachingPortfolioMutation) ClearField(name string) error {
	switch name {
	case teachingportfolio.FieldSections:
		m.ClearSections()
		return nil
	case teachingportfolio.FieldTeachingPhilosophy:
		m.ClearTeachingPhilosophy()
		return nil
	case teachingportfolio.FieldFutureTeachingGoals:
		m.ClearFutureTeachingGoals()
		return nil
	}
	return fmt.Errorf("unknown TeachingPortfolio nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeachingPortfolioMutation) ResetField(name string) error {
	switch name {
	case teachingportfolio.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case teachingportfolio.FieldSections:
		m.ResetSections()
		return nil
	case teachingportfolio.FieldTeachingPhilosophy:
		m.ResetTeachingPhilosophy()
		return nil
	case teachingportfolio.FieldFutureTeachingGoals:
		m.ResetFutureTeachingGoals()
		return nil
	case teachingportfolio.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case teachingportfolio.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TeachingPortfolio field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeachingPortfolioMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.employee != nil {
		edges = append(edges, teachingportfolio.EdgeEmployee)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeachingPortfolioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case teachingportfolio.EdgeEmployee:
		if id := m.employee; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeachingPortfolioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeachingPortfolioMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeachingPortfolioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemployee {
		edges = append(edges, teachingportfolio.EdgeEmployee)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeachingPortfolioMutation) EdgeCleared(name string) bool {
	switch name {
	case teachingportfolio.EdgeEmployee:
		return m.clearedemployee
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeachingPortfolioMutation) ClearEdge(name string) error {
	switch name {
	case teachingportfolio.EdgeEmployee:
		m.ClearEmployee()
		return nil
	}
	return fmt.Errorf("unknown TeachingPortfolio unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeachingPortfolioMutation) ResetEdge(name string) error {
	switch name {
	case teachingportfolio.EdgeEmployee:
		m.ResetEmployee()
		return nil
	}
	return fmt.Errorf("unknown TeachingPortfolio edge %s", name)
}
