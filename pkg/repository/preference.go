package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

// MaxKeyTerms is the number of key terms retained per client after merging
const MaxKeyTerms = 5

// PreferenceRepository handles client preference (memory) database operations
type PreferenceRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// preferenceSQL represents a client preference row for SQL operations
type preferenceSQL struct {
	ID             int64      `db:"id"`
	UserID         string     `db:"user_id"`
	ClientName     string     `db:"client_name"`
	Tone           string     `db:"tone"`
	Industry       string     `db:"industry"`
	PreferredStyle string     `db:"preferred_style"`
	KeyTerms       stringsSQL `db:"key_terms"`
	ContractCount  int        `db:"contract_count"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// GetPreference returns the preference for the exact (user, client) pair, ErrNotFound if absent
func (r *PreferenceRepository) GetPreference(ctx context.Context, userID, clientName string) (*domain.ClientPreference, error) {
	var row preferenceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM client_preferences WHERE user_id = ? AND client_name = ?", userID, clientName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return row.toDomain(), nil
}

// UpsertPreference creates the preference with contract_count 1 or merges the extraction into the
// existing one and increments contract_count. Read and write happen in one transaction.
func (r *PreferenceRepository) UpsertPreference(ctx context.Context, userID, clientName string, ext domain.ExtractionResult) (*domain.ClientPreference, error) {
	var result *domain.ClientPreference
	err := newRetrier().Do(ctx, func() error {
		pref, err := r.upsertTx(ctx, userID, clientName, ext)
		if err != nil {
			return classify(err)
		}
		result = pref
		return nil
	}, errCritical)
	if err != nil {
		return nil, fmt.Errorf("upsert preference: %w", err)
	}
	return result, nil
}

func (r *PreferenceRepository) upsertTx(ctx context.Context, userID, clientName string, ext domain.ExtractionResult) (*domain.ClientPreference, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	now := r.now()
	var row preferenceSQL
	err = tx.GetContext(ctx, &row, "SELECT * FROM client_preferences WHERE user_id = ? AND client_name = ?", userID, clientName)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		row = preferenceSQL{
			UserID:         userID,
			ClientName:     clientName,
			Tone:           string(ext.Tone),
			Industry:       ext.Industry,
			PreferredStyle: string(ext.PreferredStyle),
			KeyTerms:       stringsSQL(mergeKeyTerms(nil, ext.KeyTerms)),
			ContractCount:  1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		query := `
			INSERT INTO client_preferences (user_id, client_name, tone, industry, preferred_style, key_terms, contract_count, created_at, updated_at)
			VALUES (:user_id, :client_name, :tone, :industry, :preferred_style, :key_terms, :contract_count, :created_at, :updated_at)
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return nil, fmt.Errorf("insert preference: %w", err)
		}
		if row.ID, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("get insert id: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("read preference: %w", err)
	default:
		// non-empty extracted fields win, empty ones never clear stored values
		if ext.Tone != domain.ToneUnset {
			row.Tone = string(ext.Tone)
		}
		if ext.Industry != "" {
			row.Industry = ext.Industry
		}
		if ext.PreferredStyle != domain.StyleUnset {
			row.PreferredStyle = string(ext.PreferredStyle)
		}
		row.KeyTerms = stringsSQL(mergeKeyTerms(row.KeyTerms, ext.KeyTerms))
		row.ContractCount++
		row.UpdatedAt = now
		query := `
			UPDATE client_preferences
			SET tone = :tone, industry = :industry, preferred_style = :preferred_style,
			    key_terms = :key_terms, contract_count = :contract_count, updated_at = :updated_at
			WHERE id = :id
		`
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return nil, fmt.Errorf("update preference: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return row.toDomain(), nil
}

// DeletePreference removes the preference, deleting a missing record is not an error
func (r *PreferenceRepository) DeletePreference(ctx context.Context, userID, clientName string) error {
	return newRetrier().Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM client_preferences WHERE user_id = ? AND client_name = ?", userID, clientName)
		if err != nil {
			return classify(fmt.Errorf("delete preference: %w", err))
		}
		return nil
	}, errCritical)
}

// ListPreferences returns all preferences of the user, most frequent clients first
func (r *PreferenceRepository) ListPreferences(ctx context.Context, userID string) ([]*domain.ClientPreference, error) {
	var rows []preferenceSQL
	query := "SELECT * FROM client_preferences WHERE user_id = ? ORDER BY contract_count DESC, updated_at DESC, client_name"
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	prefs := make([]*domain.ClientPreference, len(rows))
	for i := range rows {
		prefs[i] = rows[i].toDomain()
	}
	return prefs, nil
}

// mergeKeyTerms puts fresh terms first, keeps older ones after them, drops case-insensitive duplicates
func mergeKeyTerms(existing, fresh []string) []string {
	merged := make([]string, 0, MaxKeyTerms)
	seen := make(map[string]bool)
	for _, term := range append(append([]string{}, fresh...), existing...) {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, term)
		if len(merged) == MaxKeyTerms {
			break
		}
	}
	return merged
}

func (p *preferenceSQL) toDomain() *domain.ClientPreference {
	terms := []string(p.KeyTerms)
	if terms == nil {
		terms = []string{}
	}
	return &domain.ClientPreference{
		UserID:         p.UserID,
		ClientName:     p.ClientName,
		Tone:           domain.Tone(p.Tone),
		Industry:       p.Industry,
		PreferredStyle: domain.Style(p.PreferredStyle),
		KeyTerms:       terms,
		ContractCount:  p.ContractCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
