package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"friend_tracker/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, sourceAccountID int64) (*domain.SyncState, error) {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		SELECT source_account_id, last_synced_at, total_runs, total_changes
		FROM sync_state
		WHERE source_account_id = ?`)

	var state domain.SyncState
	err := sqlx.GetContext(ctx, ex, &state, query, sourceAccountID)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for accounts never synced
		return &domain.SyncState{SourceAccountID: sourceAccountID}, nil
	}
	if err != nil {
		return nil, err
	}
	state.LastSyncedAt = state.LastSyncedAt.UTC()
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		INSERT INTO sync_state (source_account_id, last_synced_at, total_runs, total_changes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source_account_id) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_runs = EXCLUDED.total_runs,
			total_changes = EXCLUDED.total_changes`)

	_, err := ex.ExecContext(ctx, query,
		state.SourceAccountID,
		state.LastSyncedAt.UTC(),
		state.TotalRuns,
		state.TotalChanges,
	)
	return err
}
