// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/google/uuid"
)

// Appraisal is the model entity for the Appraisal schema.
type Appraisal struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// DateCreated holds the value of the "date_created" field.
	DateCreated time.Time `json:"date_created,omitempty"`
	// ReviewPeriodStart holds the value of the "review_period_start" field.
	ReviewPeriodStart *time.Time `json:"review_period_start,omitempty"`
	// ReviewPeriodEnd holds the value of the "review_period_end" field.
	ReviewPeriodEnd *time.Time `json:"review_period_end,omitempty"`
	// Sections holds the value of the "sections" field.
	Sections json.RawMessage `json:"sections,omitempty"`
	// Ratings holds the value of the "ratings" field.
	Ratings json.RawMessage `json:"ratings,omitempty"`
	// Comments holds the value of the "comments" field.
	Comments json.RawMessage `json:"comments,omitempty"`
	// CareerAspirations holds the value of the "career_aspirations" field.
	CareerAspirations string `json:"career_aspirations,omitempty"`
	// OngoingResearch holds the value of the "ongoing_research" field.
	OngoingResearch string `json:"ongoing_research,omitempty"`
	// LastResearch holds the value of the "last_research" field.
	LastResearch string `json:"last_research,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppraisalQuery when eager-loading is set.
	Edges        AppraisalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppraisalEdges holds the relations/edges for other nodes in the graph.
type AppraisalEdges struct {
	// Employee holds the value of the employee edge.
	Employee *Employee `json:"employee,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ParseJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmployeeOrErr returns the Employee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppraisalEdges) EmployeeOrErr() (*Employee, error) {
	if e.Employee != nil {
		return e.Employee, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: employee.Label}
	}
	return nil, &NotLoadedError{edge: "employee"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e AppraisalEdges) JobsOrErr() ([]*ParseJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Appraisal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appraisal.FieldSections, appraisal.FieldRatings, appraisal.FieldComments:
			values[i] = new([]byte)
		case appraisal.FieldCareerAspirations, appraisal.FieldOngoingResearch, appraisal.FieldLastResearch:
			values[i] = new(sql.NullString)
		case appraisal.FieldDateCreated, appraisal.FieldReviewPeriodStart, appraisal.FieldReviewPeriodEnd, appraisal.FieldCreatedAt, appraisal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case appraisal.FieldID, appraisal.FieldEmployeeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Appraisal fields.
func (_m *Appraisal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appraisal.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appraisal.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case appraisal.FieldDateCreated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_created", values[i])
			} else if value.Valid {
				_m.DateCreated = value.Time
			}
		case appraisal.FieldReviewPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_period_start", values[i])
			} else if value.Valid {
				_m.ReviewPeriodStart = new(time.Time)
				*_m.ReviewPeriodStart = value.Time
			}
		case appraisal.FieldReviewPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field review_period_end", values[i])
			} else if value.Valid {
				_m.ReviewPeriodEnd = new(time.Time)
				*_m.ReviewPeriodEnd = value.Time
			}
		case appraisal.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case appraisal.FieldRatings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ratings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ratings); err != nil {
					return fmt.Errorf("unmarshal field ratings: %w", err)
				}
			}
		case appraisal.FieldComments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field comments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Comments); err != nil {
					return fmt.Errorf("unmarshal field comments: %w", err)
				}
			}
		case appraisal.FieldCareerAspirations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field career_aspirations", values[i])
			} else if value.Valid {
				_m.CareerAspirations = value.String
			}
		case appraisal.FieldOngoingResearch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ongoing_research", values[i])
			} else if value.Valid {
				_m.OngoingResearch = value.String
			}
		case appraisal.FieldLastResearch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_research", values[i])
			} else if value.Valid {
				_m.LastResearch = value.String
			}
		case appraisal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appraisal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Appraisal.
// This includes values selected through modifiers, order, etc.
func (_m *Appraisal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmployee queries the "employee" edge of the Appraisal entity.
func (_m *Appraisal) QueryEmployee() *EmployeeQuery {
	return NewAppraisalClient(_m.config).QueryEmployee(_m)
}

// QueryJobs queries the "jobs" edge of the Appraisal entity.
func (_m *Appraisal) QueryJobs() *ParseJobQuery {
	return NewAppraisalClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Appraisal.
// Note that you need to call Appraisal.Unwrap() before calling this method if this Appraisal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Appraisal) Update() *AppraisalUpdateOne {
	return NewAppraisalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Appraisal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Appraisal) Unwrap() *Appraisal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Appraisal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Appraisal) String() string {
	var builder strings.Builder
	builder.WriteString("Appraisal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("date_created=")
	builder.WriteString(_m.DateCreated.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewPeriodStart; v != nil {
		builder.WriteString("review_period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewPeriodEnd; v != nil {
		builder.WriteString("review_period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("ratings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ratings))
	builder.WriteString(", ")
	builder.WriteString("comments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Comments))
	builder.WriteString(", ")
	builder.WriteString("career_aspirations=")
	builder.WriteString(_m.CareerAspirations)
	builder.WriteString(", ")
	builder.WriteString("ongoing_research=")
	builder.WriteString(_m.OngoingResearch)
	builder.WriteString(", ")
	builder.WriteString("last_research=")
	builder.WriteString(_m.LastResearch)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Appraisals is a parsable slice of Appraisal.
type Appraisals []*Appraisal
