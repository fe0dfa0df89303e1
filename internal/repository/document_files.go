package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushr/docparser/gen/ent"
	entfile "github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/internal/entity"
)

type DocumentFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentFile, error)
	GetByEmployeeAndHash(ctx context.Context, employeeID uuid.UUID, hash []byte) (*entity.DocumentFile, error)
	Create(ctx context.Context, employeeID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.DocumentFile, error)
	UpsertByHash(ctx context.Context, employeeID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.DocumentFile, bool, error)
}

type documentFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentFileRepository(entc *ent.Client, logger *slog.Logger) DocumentFileRepository {
	return &documentFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get document file", "file_id", id, "error", err)
		return nil, err
	}
	return toDocumentFile(row), nil
}

func (r *documentFileRepo) GetByEmployeeAndHash(ctx context.Context, employeeID uuid.UUID, hash []byte) (*entity.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Query().
		Where(
			entfile.EmployeeID(employeeID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toDocumentFile(row), nil
}

func (r *documentFileRepo) Create(ctx context.Context, employeeID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.DocumentFile, error) {
	row, err := r.ent.DocumentFile.Create().
		SetEmployeeID(employeeID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document file", "employee_id", employeeID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return toDocumentFile(row), nil
}

func (r *documentFileRepo) UpsertByHash(ctx context.Context, employeeID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.DocumentFile, bool, error) {
	if existing, err := r.GetByEmployeeAndHash(ctx, employeeID, hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up document file by hash", "employee_id", employeeID, "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, employeeID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
