// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appraisal is the predicate function for appraisal builders.
type Appraisal func(*sql.Selector)

// DocumentFile is the predicate function for documentfile builders.
type DocumentFile func(*sql.Selector)

// Employee is the predicate function for employee builders.
type Employee func(*sql.Selector)

// ParseJob is the predicate function for parsejob builders.
type ParseJob func(*sql.Selector)

// TeachingPortfolio is the predicate function for teachingportfolio builders.
type TeachingPortfolio func(*sql.Selector)
