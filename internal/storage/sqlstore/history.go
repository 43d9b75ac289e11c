package sqlstore

import (
	"context"

	"github.com/jmoiron/sqlx"

	"friend_tracker/internal/domain"
)

type HistoryStore struct {
	db *sqlx.DB
}

func NewHistoryStore(db *sqlx.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// InsertBatch appends history rows. Existing (account_id, persona_name)
// pairs are left untouched, including their updated_at.
func (s *HistoryStore) InsertBatch(ctx context.Context, entries []domain.NameHistoryEntry) error {
	query := `
		INSERT INTO name_history (account_id, persona_name, updated_at)
		VALUES (:account_id, :persona_name, :updated_at)
		ON CONFLICT (account_id, persona_name) DO NOTHING`

	ex := GetExecutor(ctx, s.db)
	for start := 0; start < len(entries); start += insertChunk {
		end := min(start+insertChunk, len(entries))

		batch := make([]domain.NameHistoryEntry, end-start)
		for i, e := range entries[start:end] {
			e.UpdatedAt = e.UpdatedAt.UTC()
			batch[i] = e
		}
		if _, err := sqlx.NamedExecContext(ctx, ex, query, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *HistoryStore) LoadKeys(ctx context.Context) (map[domain.HistoryKey]struct{}, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, `SELECT account_id, persona_name FROM name_history`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.HistoryKey]struct{})
	for rows.Next() {
		var key domain.HistoryKey
		if err := rows.Scan(&key.AccountID, &key.DisplayName); err != nil {
			return nil, err
		}
		result[key] = struct{}{}
	}

	return result, rows.Err()
}

func (s *HistoryStore) ListByAccount(ctx context.Context, accountID int64) ([]domain.NameHistoryEntry, error) {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		SELECT account_id, persona_name, updated_at
		FROM name_history
		WHERE account_id = ?
		ORDER BY updated_at, persona_name`)

	var entries []domain.NameHistoryEntry
	if err := sqlx.SelectContext(ctx, ex, &entries, query, accountID); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].UpdatedAt = entries[i].UpdatedAt.UTC()
	}
	return entries, nil
}
