// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// TeachingPortfolio is the model entity for the TeachingPortfolio schema.
type TeachingPortfolio struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// Sections holds the value of the "sections" field.
	Sections json.RawMessage `json:"sections,omitempty"`
	// TeachingPhilosophy holds the value of the "teaching_philosophy" field.
	TeachingPhilosophy string `json:"teaching_philosophy,omitempty"`
	// FutureTeachingGoals holds the value of the "future_teaching_goals" field.
	FutureTeachingGoals string `json:"future_teaching_goals,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TeachingPortfolioQuery when eager-loading is set.
	Edges        TeachingPortfolioEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TeachingPortfolioEdges holds the relations/edges for other nodes in the graph.
type TeachingPortfolioEdges struct {
	// Employee holds the value of the employee edge.
	Employee *Employee `json:"employee,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmployeeOrErr returns the Employee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TeachingPortfolioEdges) EmployeeOrErr() (*Employee, error) {
	if e.Employee != nil {
		return e.Employee, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: employee.Label}
	}
	return nil, &NotLoadedError{edge: "employee"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TeachingPortfolio) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case teachingportfolio.FieldSections:
			values[i] = new([]byte)
		case teachingportfolio.FieldTeachingPhilosophy, teachingportfolio.FieldFutureTeachingGoals:
			values[i] = new(sql.NullString)
		case teachingportfolio.FieldCreatedAt, teachingportfolio.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case teachingportfolio.FieldID, teachingportfolio.FieldEmployeeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TeachingPortfolio fields.
func (_m *TeachingPortfolio) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case teachingportfolio.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case teachingportfolio.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case teachingportfolio.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case teachingportfolio.FieldTeachingPhilosophy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field teaching_philosophy", values[i])
			} else if value.Valid {
				_m.TeachingPhilosophy = value.String
			}
		case teachingportfolio.FieldFutureTeachingGoals:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field future_teaching_goals", values[i])
			} else if value.Valid {
				_m.FutureTeachingGoals = value.String
			}
		case teachingportfolio.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case teachingportfolio.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TeachingPortfolio.
// This includes values selected through modifiers, order, etc.
func (_m *TeachingPortfolio) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmployee queries the "employee" edge of the TeachingPortfolio entity.
func (_m *TeachingPortfolio) QueryEmployee() *EmployeeQuery {
	return NewTeachingPortfolioClient(_m.config).QueryEmployee(_m)
}

// Update returns a builder for updating this TeachingPortfolio.
// Note that you need to call TeachingPortfolio.Unwrap() before calling this method if this TeachingPortfolio
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TeachingPortfolio) Update() *TeachingPortfolioUpdateOne {
	return NewTeachingPortfolioClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TeachingPortfolio entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TeachingPortfolio) Unwrap() *TeachingPortfolio {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TeachingPortfolio is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TeachingPortfolio) String() string {
	var builder strings.Builder
	builder.WriteString("TeachingPortfolio(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("teaching_philosophy=")
	builder.WriteString(_m.TeachingPhilosophy)
	builder.WriteString(", ")
	builder.WriteString("future_teaching_goals=")
	builder.WriteString(_m.FutureTeachingGoals)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TeachingPortfolios is a parsable slice of TeachingPortfolio.
type TeachingPortfolios []*TeachingPortfolio
