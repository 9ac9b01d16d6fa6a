package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/port"
)

type manualRepo struct {
	db *sqlx.DB
}

// NewManualRepo creates a new PostgreSQL-backed ManualRepository.
func NewManualRepo(db *sqlx.DB) port.ManualRepository {
	return &manualRepo{db: db}
}

func (r *manualRepo) Create(ctx context.Context, manual *domain.Manual, sections []port.IngestSection) error {
	if manual.Language == "" {
		manual.Language = "en"
	}
	if manual.Features == "" {
		manual.Features = "[]"
	}
	if manual.SpecialFeatures == "" {
		manual.SpecialFeatures = "[]"
	}
	manual.SchemaVersion = domain.SchemaVersion
	manual.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("manualRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO manuals (title, source_path, language, features, special_features, schema_version, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING manual_id`,
		manual.Title, manual.SourcePath, manual.Language,
		manual.Features, manual.SpecialFeatures, manual.SchemaVersion, manual.CreatedAt,
	).Scan(&manual.ID)
	if err != nil {
		if isUniqueViolation(err, "source_path") {
			return domain.ErrDuplicateSourcePath
		}
		return fmt.Errorf("manualRepo.Create manual: %w", err)
	}

	for _, sec := range sections {
		var sectionID int64
		err = tx.QueryRowContext(ctx,
			`INSERT INTO tabs (manual_id, tab_key, title, tab_order, content_type)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING tab_id`,
			manual.ID, sec.Key, sec.Title, sec.Position, sec.Content.Kind(),
		).Scan(&sectionID)
		if err != nil {
			return fmt.Errorf("manualRepo.Create section %q: %w", sec.Key, err)
		}

		if err := insertContent(ctx, tx, sectionID, sec.Content); err != nil {
			return fmt.Errorf("manualRepo.Create content for %q: %w", sec.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("manualRepo.Create commit: %w", err)
	}
	return nil
}

// insertContent writes the rows for one section's content variant. For
// steps, the section-level warning is stored on the first row and the
// note on the last row only; a single-step section carries both.
func insertContent(ctx context.Context, tx *sqlx.Tx, sectionID int64, content domain.SectionContent) error {
	switch c := content.(type) {
	case domain.ListContent:
		for _, e := range c.Entries {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO tab_content_list (tab_id, item_order, text) VALUES ($1, $2, $3)",
				sectionID, e.Order, e.Text)
			if err != nil {
				return err
			}
		}
	case domain.StepsContent:
		for _, row := range stepRowsFor(sectionID, c) {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO tab_content_steps (tab_id, step_order, text, warning, note) VALUES ($1, $2, $3, $4, $5)",
				row.SectionID, row.Position, row.Text, row.Warning, row.Note)
			if err != nil {
				return err
			}
		}
	case domain.TextContent:
		_, err := tx.ExecContext(ctx,
			"INSERT INTO tab_content_text (tab_id, text) VALUES ($1, $2)",
			sectionID, c.Body)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown content variant %T", content)
	}
	return nil
}

// stepRowsFor flattens a steps section into its storage rows. The
// section-level warning goes on the first row and the note on the last
// row; a single-step section carries both on its one row. Empty values
// stay NULL.
func stepRowsFor(sectionID int64, c domain.StepsContent) []domain.Step {
	rows := make([]domain.Step, 0, len(c.Steps))
	for i, e := range c.Steps {
		var warning, note *string
		if i == 0 && c.Warning != "" {
			warning = &c.Warning
		}
		if i == len(c.Steps)-1 && c.Note != "" {
			note = &c.Note
		}
		rows = append(rows, domain.Step{
			SectionID: sectionID,
			Position:  e.Order,
			Text:      e.Text,
			Warning:   warning,
			Note:      note,
		})
	}
	return rows
}

// liftStepsBody rebuilds the read-side steps body from stored rows,
// lifting the section-level warning from the first row and the note from
// the last row. Rows must already be ordered by step_order.
func liftStepsBody(sectionKey string, steps []domain.Step) domain.StepsBody {
	body := domain.StepsBody{Steps: []domain.ContentItem{}}
	for _, step := range steps {
		body.Steps = append(body.Steps, domain.ContentItem{
			ID:   domain.StepID(sectionKey, step.Position),
			Text: step.Text,
		})
	}
	if len(steps) > 0 {
		if w := steps[0].Warning; w != nil {
			body.Warning = *w
		}
		if n := steps[len(steps)-1].Note; n != nil {
			body.Note = *n
		}
	}
	return body
}

func (r *manualRepo) GetIDBySourcePath(ctx context.Context, sourcePath string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id,
		"SELECT manual_id FROM manuals WHERE source_path = $1", sourcePath)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrManualNotFound
		}
		return 0, fmt.Errorf("manualRepo.GetIDBySourcePath: %w", err)
	}
	return id, nil
}

func (r *manualRepo) List(ctx context.Context) ([]domain.ManualSummary, error) {
	summaries := []domain.ManualSummary{}
	err := r.db.SelectContext(ctx, &summaries,
		"SELECT manual_id, title, source_path FROM manuals ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("manualRepo.List: %w", err)
	}
	return summaries, nil
}

func (r *manualRepo) GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error) {
	var manual domain.Manual
	err := r.db.GetContext(ctx, &manual,
		"SELECT * FROM manuals WHERE manual_id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrManualNotFound
		}
		return nil, fmt.Errorf("manualRepo.GetByID: %w", err)
	}
	return r.buildDetail(ctx, &manual)
}

func (r *manualRepo) ListDetails(ctx context.Context) ([]domain.ManualDetail, error) {
	var manuals []domain.Manual
	err := r.db.SelectContext(ctx, &manuals,
		"SELECT * FROM manuals ORDER BY manual_id")
	if err != nil {
		return nil, fmt.Errorf("manualRepo.ListDetails: %w", err)
	}

	details := make([]domain.ManualDetail, 0, len(manuals))
	for i := range manuals {
		detail, err := r.buildDetail(ctx, &manuals[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// buildDetail reconstructs a manual into the same shape the ingestor
// accepted. Stored feature lists decode leniently; content order follows
// the stored order indices, and list/step identifiers are derived from
// (section key, order) on every read.
func (r *manualRepo) buildDetail(ctx context.Context, manual *domain.Manual) (*domain.ManualDetail, error) {
	detail := &domain.ManualDetail{
		ID:              manual.ID,
		Title:           manual.Title,
		SourcePath:      manual.SourcePath,
		Language:        manual.Language,
		Features:        domain.DecodeStringList([]byte(manual.Features)),
		SpecialFeatures: domain.DecodeStringList([]byte(manual.SpecialFeatures)),
		SchemaVersion:   manual.SchemaVersion,
		CreatedAt:       manual.CreatedAt,
		Sections:        []domain.SectionView{},
	}

	var sections []domain.Section
	err := r.db.SelectContext(ctx, &sections,
		`SELECT tab_id, manual_id, tab_key, title, tab_order, content_type
		 FROM tabs WHERE manual_id = $1 ORDER BY tab_order`, manual.ID)
	if err != nil {
		return nil, fmt.Errorf("manualRepo.buildDetail sections: %w", err)
	}

	for _, sec := range sections {
		body, err := r.buildSectionBody(ctx, &sec)
		if err != nil {
			return nil, err
		}
		detail.Sections = append(detail.Sections, domain.SectionView{
			Key:     sec.Key,
			Title:   sec.Title,
			Kind:    sec.Kind,
			Content: body,
		})
	}
	return detail, nil
}

func (r *manualRepo) buildSectionBody(ctx context.Context, sec *domain.Section) (domain.SectionBody, error) {
	switch sec.Kind {
	case domain.ContentKindList:
		var items []domain.ListItem
		err := r.db.SelectContext(ctx, &items,
			`SELECT item_id, tab_id, item_order, text
			 FROM tab_content_list WHERE tab_id = $1 ORDER BY item_order`, sec.ID)
		if err != nil {
			return nil, fmt.Errorf("manualRepo.buildSectionBody list: %w", err)
		}
		body := domain.ListBody{}
		for _, item := range items {
			body = append(body, domain.ContentItem{
				ID:   domain.ItemID(sec.Key, item.Position),
				Text: item.Text,
			})
		}
		return body, nil

	case domain.ContentKindSteps:
		var steps []domain.Step
		err := r.db.SelectContext(ctx, &steps,
			`SELECT step_id, tab_id, step_order, text, warning, note
			 FROM tab_content_steps WHERE tab_id = $1 ORDER BY step_order`, sec.ID)
		if err != nil {
			return nil, fmt.Errorf("manualRepo.buildSectionBody steps: %w", err)
		}
		return liftStepsBody(sec.Key, steps), nil

	case domain.ContentKindText:
		var text string
		err := r.db.GetContext(ctx, &text,
			"SELECT text FROM tab_content_text WHERE tab_id = $1", sec.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.TextBody(""), nil
			}
			return nil, fmt.Errorf("manualRepo.buildSectionBody text: %w", err)
		}
		return domain.TextBody(text), nil

	default:
		return nil, fmt.Errorf("manualRepo.buildSectionBody: unknown content kind %q", sec.Kind)
	}
}

func (r *manualRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM manuals WHERE manual_id = $1", id)
	if err != nil {
		return fmt.Errorf("manualRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrManualNotFound
	}
	return nil
}

func isUniqueViolation(err error, constraint string) bool {
	return strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), constraint)
}
