package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushr/docparser/constants"
	"github.com/campushr/docparser/internal/repository"
)

// AllowedExt checks if a file extension is in the allowed set (defaults to pdf/txt).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ValidateEmployee confirms the employee row exists before files attach to it.
func ValidateEmployee(ctx context.Context, repo repository.EmployeeRepository, employeeID uuid.UUID) error {
	if _, err := repo.GetByID(ctx, employeeID); err != nil {
		return fmt.Errorf("employee %s: %w", employeeID, err)
	}
	return nil
}
