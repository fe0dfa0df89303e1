// Code generated by ent, DO NOT EDIT.

package teachingportfolio

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLTE(FieldID, id))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldEmployeeID, v))
}

// TeachingPhilosophy applies equality check predicate on the "teaching_philosophy" field. It's identical to TeachingPhilosophyEQ.
func TeachingPhilosophy(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldTeachingPhilosophy, v))
}

// FutureTeachingGoals applies equality check predicate on the "future_teaching_goals" field. It's identical to FutureTeachingGoalsEQ.
func FutureTeachingGoals(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldFutureTeachingGoals, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// SectionsIsNil applies the IsNil predicate on the "sections" field.
func SectionsIsNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIsNull(FieldSections))
}

// SectionsNotNil applies the NotNil predicate on the "sections" field.
func SectionsNotNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotNull(FieldSections))
}

// TeachingPhilosophyEQ applies the EQ predicate on the "teaching_philosophy" field.
func TeachingPhilosophyEQ(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyNEQ applies the NEQ predicate on the "teaching_philosophy" field.
func TeachingPhilosophyNEQ(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyIn applies the In predicate on the "teaching_philosophy" field.
func TeachingPhilosophyIn(vs ...string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldTeachingPhilosophy, vs...))
}

// TeachingPhilosophyNotIn applies the NotIn predicate on the "teaching_philosophy" field.
func TeachingPhilosophyNotIn(vs ...string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldTeachingPhilosophy, vs...))
}

// TeachingPhilosophyGT applies the GT predicate on the "teaching_philosophy" field.
func TeachingPhilosophyGT(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGT(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyGTE applies the GTE predicate on the "teaching_philosophy" field.
func TeachingPhilosophyGTE(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGTE(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyLT applies the LT predicate on the "teaching_philosophy" field.
func TeachingPhilosophyLT(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLT(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyLTE applies the LTE predicate on the "teaching_philosophy" field.
func TeachingPhilosophyLTE(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLTE(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyContains applies the Contains predicate on the "teaching_philosophy" field.
func TeachingPhilosophyContains(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldContains(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyHasPrefix applies the HasPrefix predicate on the "teaching_philosophy" field.
func TeachingPhilosophyHasPrefix(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldHasPrefix(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyHasSuffix applies the HasSuffix predicate on the "teaching_philosophy" field.
func TeachingPhilosophyHasSuffix(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldHasSuffix(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyIsNil applies the IsNil predicate on the "teaching_philosophy" field.
func TeachingPhilosophyIsNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIsNull(FieldTeachingPhilosophy))
}

// TeachingPhilosophyNotNil applies the NotNil predicate on the "teaching_philosophy" field.
func TeachingPhilosophyNotNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotNull(FieldTeachingPhilosophy))
}

// TeachingPhilosophyEqualFold applies the EqualFold predicate on the "teaching_philosophy" field.
func TeachingPhilosophyEqualFold(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEqualFold(FieldTeachingPhilosophy, v))
}

// TeachingPhilosophyContainsFold applies the ContainsFold predicate on the "teaching_philosophy" field.
func TeachingPhilosophyContainsFold(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldContainsFold(FieldTeachingPhilosophy, v))
}

// FutureTeachingGoalsEQ applies the EQ predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsEQ(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsNEQ applies the NEQ predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsNEQ(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsIn applies the In predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsIn(vs ...string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldFutureTeachingGoals, vs...))
}

// FutureTeachingGoalsNotIn applies the NotIn predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsNotIn(vs ...string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldFutureTeachingGoals, vs...))
}

// FutureTeachingGoalsGT applies the GT predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsGT(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGT(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsGTE applies the GTE predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsGTE(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGTE(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsLT applies the LT predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsLT(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLT(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsLTE applies the LTE predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsLTE(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLTE(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsContains applies the Contains predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsContains(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldContains(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsHasPrefix applies the HasPrefix predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsHasPrefix(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldHasPrefix(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsHasSuffix applies the HasSuffix predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsHasSuffix(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldHasSuffix(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsIsNil applies the IsNil predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsIsNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIsNull(FieldFutureTeachingGoals))
}

// FutureTeachingGoalsNotNil applies the NotNil predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsNotNil() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotNull(FieldFutureTeachingGoals))
}

// FutureTeachingGoalsEqualFold applies the EqualFold predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsEqualFold(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEqualFold(FieldFutureTeachingGoals, v))
}

// FutureTeachingGoalsContainsFold applies the ContainsFold predicate on the "future_teaching_goals" field.
func FutureTeachingGoalsContainsFold(v string) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldContainsFold(FieldFutureTeachingGoals, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmployee applies the HasEdge predicate on the "employee" edge.
func HasEmployee() predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployeeWith applies the HasEdge predicate on the "employee" edge with a given conditions (other predicates).
func HasEmployeeWith(preds ...predicate.Employee) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(func(s *sql.Selector) {
		step := newEmployeeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TeachingPortfolio) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TeachingPortfolio) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TeachingPortfolio) predicate.TeachingPortfolio {
	return predicate.TeachingPortfolio(sql.NotPredicates(p))
}
