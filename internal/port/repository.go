package port

import (
	"context"

	"github.com/ziebelle/move37/internal/domain"
)

// IngestSection is one validated section with its normalized content,
// ready to be persisted. Position is the section's order index within the
// manual.
type IngestSection struct {
	Key      string
	Title    string
	Position int
	Content  domain.SectionContent
}

// ManualRepository defines the contract for manual persistence.
type ManualRepository interface {
	// Create inserts a manual and all of its sections and content rows in
	// a single transaction and sets manual.ID. A unique violation on the
	// source path is reported as domain.ErrDuplicateSourcePath; any other
	// failure rolls the whole manual back.
	Create(ctx context.Context, manual *domain.Manual, sections []IngestSection) error

	// GetIDBySourcePath returns the ID of the manual with the given source
	// path, or domain.ErrManualNotFound.
	GetIDBySourcePath(ctx context.Context, sourcePath string) (int64, error)

	// List returns summaries of all manuals ordered by title.
	List(ctx context.Context) ([]domain.ManualSummary, error)

	// GetByID reconstructs the full manual detail, or returns
	// domain.ErrManualNotFound.
	GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error)

	// ListDetails reconstructs every manual, ordered by manual ID.
	ListDetails(ctx context.Context) ([]domain.ManualDetail, error)

	// Delete removes a manual; sections and content rows cascade.
	Delete(ctx context.Context, id int64) error
}
