package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

// DraftRepository handles generated contract drafts
type DraftRepository struct {
	db *sqlx.DB
}

// draftSQL represents a draft row for SQL operations
type draftSQL struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	ContractType   string    `db:"contract_type"`
	ClientName     string    `db:"client_name"`
	FreelancerName string    `db:"freelancer_name"`
	ProjectScope   string    `db:"project_scope"`
	Budget         string    `db:"budget"`
	Timeline       string    `db:"timeline"`
	Content        string    `db:"content"`
	Source         string    `db:"source"`
	MemoryApplied  bool      `db:"memory_applied"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewDraftRepository creates a new draft repository
func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// SaveDraft inserts the draft, assigning ID and CreatedAt when empty
func (r *DraftRepository) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}

	row := draftSQL{
		ID:             draft.ID,
		UserID:         draft.UserID,
		ContractType:   draft.ContractType,
		ClientName:     draft.ClientName,
		FreelancerName: draft.FreelancerName,
		ProjectScope:   draft.ProjectScope,
		Budget:         draft.Budget,
		Timeline:       draft.Timeline,
		Content:        draft.Content,
		Source:         string(draft.Source),
		MemoryApplied:  draft.MemoryApplied,
		CreatedAt:      draft.CreatedAt,
	}

	query := `
		INSERT INTO drafts (id, user_id, contract_type, client_name, freelancer_name, project_scope,
		                    budget, timeline, content, source, memory_applied, created_at)
		VALUES (:id, :user_id, :contract_type, :client_name, :freelancer_name, :project_scope,
		        :budget, :timeline, :content, :source, :memory_applied, :created_at)
	`
	return newRetrier().Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			return classify(fmt.Errorf("save draft: %w", err))
		}
		return nil
	}, errCritical)
}

// GetDraft returns a draft owned by the user, ErrNotFound otherwise
func (r *DraftRepository) GetDraft(ctx context.Context, userID, id string) (*domain.Draft, error) {
	var row draftSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM drafts WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return row.toDomain(), nil
}

// ListDrafts returns the user's drafts, newest first
func (r *DraftRepository) ListDrafts(ctx context.Context, userID string, limit int) ([]*domain.Draft, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []draftSQL
	query := "SELECT * FROM drafts WHERE user_id = ? ORDER BY created_at DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	drafts := make([]*domain.Draft, len(rows))
	for i := range rows {
		drafts[i] = rows[i].toDomain()
	}
	return drafts, nil
}

func (d *draftSQL) toDomain() *domain.Draft {
	return &domain.Draft{
		ID:             d.ID,
		UserID:         d.UserID,
		ContractType:   d.ContractType,
		ClientName:     d.ClientName,
		FreelancerName: d.FreelancerName,
		ProjectScope:   d.ProjectScope,
		Budget:         d.Budget,
		Timeline:       d.Timeline,
		Content:        d.Content,
		Source:         domain.ContractSource(d.Source),
		MemoryApplied:  d.MemoryApplied,
		CreatedAt:      d.CreatedAt,
	}
}
