// Package export produces downloadable reports: a CSV of requirements with a
// fixed column layout, and a roadmap export descriptor. PDF rendering is not
// performed server-side; the roadmap export returns the document data plus
// the path a renderer would publish to.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	requirementrepo "github.com/heartmarshall/prodboard-backend/internal/adapter/postgres/requirement"
	"github.com/heartmarshall/prodboard-backend/internal/domain"
)

// exportBatchLimit caps a single CSV export.
const exportBatchLimit = 10000

// requirementLister supplies the rows for the CSV export.
type requirementLister interface {
	List(ctx context.Context, f requirementrepo.Filter) ([]domain.Requirement, int, error)
}

// roadmapGetter supplies the roadmap for the roadmap export.
type roadmapGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roadmap, error)
}

// Service implements export operations.
type Service struct {
	log          *slog.Logger
	requirements requirementLister
	roadmaps     roadmapGetter
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, requirements requirementLister, roadmaps roadmapGetter) *Service {
	return &Service{
		log:          logger.With("service", "export"),
		requirements: requirements,
		roadmaps:     roadmaps,
	}
}

// RequirementsCSVInput holds optional filters for the requirements export.
type RequirementsCSVInput struct {
	Status   *domain.RequirementStatus
	Priority *domain.Priority
}

// Validate validates the export filters.
func (i RequirementsCSVInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

var csvHeader = []string{
	"ID", "Type", "User Story", "Acceptance Criteria", "Priority",
	"Complexity", "Status", "Roadmap", "Created By", "Created At",
}

// RequirementsCSV renders matching requirements as CSV and returns the file
// name to serve it under.
func (s *Service) RequirementsCSV(ctx context.Context, input RequirementsCSVInput) ([]byte, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	items, _, err := s.requirements.List(ctx, requirementrepo.Filter{
		Status:   input.Status,
		Priority: input.Priority,
		Limit:    exportBatchLimit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("export.RequirementsCSV: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", fmt.Errorf("export.RequirementsCSV write header: %w", err)
	}
	for _, req := range items {
		row := []string{
			req.RefID,
			req.Type.String(),
			req.UserStory,
			req.AcceptanceCriteria,
			req.Priority.String(),
			req.Complexity.String(),
			req.Status.String(),
			req.RoadmapName,
			req.CreatedByName,
			req.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("export.RequirementsCSV write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("export.RequirementsCSV flush: %w", err)
	}

	fileName := fmt.Sprintf("requirements-%s.csv", time.Now().Format("2006-01-02"))

	s.log.InfoContext(ctx, "requirements exported", "rows", len(items))

	return buf.Bytes(), fileName, nil
}

// RoadmapExport is the descriptor returned by the roadmap export: the
// roadmap itself plus the path a PDF renderer would publish to.
type RoadmapExport struct {
	Roadmap    *domain.Roadmap
	ExportPath string
}

// Roadmap builds the export descriptor for one roadmap.
func (s *Service) Roadmap(ctx context.Context, id uuid.UUID) (*RoadmapExport, error) {
	rm, err := s.roadmaps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("export.Roadmap: %w", err)
	}

	path := fmt.Sprintf("/exports/roadmap-%s-%d.pdf",
		strings.ToLower(rm.RefID), time.Now().Unix())

	s.log.InfoContext(ctx, "roadmap export prepared", "roadmap_id", id.String())

	return &RoadmapExport{Roadmap: rm, ExportPath: path}, nil
}
