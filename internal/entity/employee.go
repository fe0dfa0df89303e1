package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents an employee for data transfer between layers.
type Employee struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name,omitempty"`
	Email            string    `json:"email,omitempty"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Address          string    `json:"address,omitempty"`
	StaffNo          string    `json:"staff_no,omitempty"`
	Post             string    `json:"post,omitempty"`
	FacultyProgramme string    `json:"faculty_programme,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
