package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Appraisal represents a stored appraisal for data transfer between layers.
type Appraisal struct {
	ID                uuid.UUID       `json:"id"`
	EmployeeID        uuid.UUID       `json:"employee_id"`
	DateCreated       time.Time       `json:"date_created"`
	ReviewPeriodStart *time.Time      `json:"review_period_start,omitempty"`
	ReviewPeriodEnd   *time.Time      `json:"review_period_end,omitempty"`
	Sections          json.RawMessage `json:"sections,omitempty"`
	Ratings           json.RawMessage `json:"ratings,omitempty"`
	Comments          json.RawMessage `json:"comments,omitempty"`
	CareerAspirations string          `json:"career_aspirations,omitempty"`
	OngoingResearch   string          `json:"ongoing_research,omitempty"`
	LastResearch      string          `json:"last_research,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TeachingPortfolio represents a stored portfolio for data transfer between layers.
type TeachingPortfolio struct {
	ID                  uuid.UUID       `json:"id"`
	EmployeeID          uuid.UUID       `json:"employee_id"`
	Sections            json.RawMessage `json:"sections,omitempty"`
	TeachingPhilosophy  string          `json:"teaching_philosophy,omitempty"`
	FutureTeachingGoals string          `json:"future_teaching_goals,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
