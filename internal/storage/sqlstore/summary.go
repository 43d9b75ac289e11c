package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"friend_tracker/internal/domain"
)

// insertChunk keeps multi-row statements under the bind variable limits of
// both dialects.
const insertChunk = 100

type SummaryStore struct {
	db *sqlx.DB
}

func NewSummaryStore(db *sqlx.DB) *SummaryStore {
	return &SummaryStore{db: db}
}

func (s *SummaryStore) LoadAll(ctx context.Context) (map[int64]domain.PlayerSummary, error) {
	query := `
		SELECT account_id, persona_name, profile_url, friend_since, updated_at, removed_at
		FROM player_summaries`

	var rows []domain.PlayerSummary
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	result := make(map[int64]domain.PlayerSummary, len(rows))
	for _, r := range rows {
		result[r.AccountID] = utcSummary(r)
	}
	return result, nil
}

func (s *SummaryStore) Get(ctx context.Context, accountID int64) (*domain.PlayerSummary, error) {
	ex := GetExecutor(ctx, s.db)
	query := ex.Rebind(`
		SELECT account_id, persona_name, profile_url, friend_since, updated_at, removed_at
		FROM player_summaries
		WHERE account_id = ?`)

	var summary domain.PlayerSummary
	if err := sqlx.GetContext(ctx, ex, &summary, query, accountID); err != nil {
		return nil, err
	}
	summary = utcSummary(summary)
	return &summary, nil
}

func (s *SummaryStore) InsertBatch(ctx context.Context, summaries []domain.PlayerSummary) error {
	query := `
		INSERT INTO player_summaries (
			account_id, persona_name, profile_url, friend_since, updated_at, removed_at
		) VALUES (
			:account_id, :persona_name, :profile_url, :friend_since, :updated_at, :removed_at
		)`

	ex := GetExecutor(ctx, s.db)
	for start := 0; start < len(summaries); start += insertChunk {
		end := min(start+insertChunk, len(summaries))
		if _, err := sqlx.NamedExecContext(ctx, ex, query, utcSummaries(summaries[start:end])); err != nil {
			return err
		}
	}
	return nil
}

// Update overwrites the mutable columns. friend_since is never written.
func (s *SummaryStore) Update(ctx context.Context, summary domain.PlayerSummary) error {
	query := `
		UPDATE player_summaries SET
			persona_name = :persona_name,
			profile_url = :profile_url,
			updated_at = :updated_at,
			removed_at = :removed_at
		WHERE account_id = :account_id`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, utcSummary(summary))
	return err
}

// MarkRemoved sets removed_at on the given accounts unless already set.
func (s *SummaryStore) MarkRemoved(ctx context.Context, accountIDs []int64, at time.Time) error {
	if len(accountIDs) == 0 {
		return nil
	}

	ex := GetExecutor(ctx, s.db)
	at = at.UTC()
	for start := 0; start < len(accountIDs); start += insertChunk {
		end := min(start+insertChunk, len(accountIDs))

		query, args, err := sqlx.In(`
			UPDATE player_summaries
			SET removed_at = ?, updated_at = ?
			WHERE removed_at IS NULL AND account_id IN (?)`,
			at, at, accountIDs[start:end],
		)
		if err != nil {
			return err
		}
		if _, err := ex.ExecContext(ctx, ex.Rebind(query), args...); err != nil {
			return err
		}
	}
	return nil
}

func utcSummaries(in []domain.PlayerSummary) []domain.PlayerSummary {
	out := make([]domain.PlayerSummary, len(in))
	for i, s := range in {
		out[i] = utcSummary(s)
	}
	return out
}

// utcSummary returns s with every timestamp in UTC, whatever location the
// driver decoded them in.
func utcSummary(s domain.PlayerSummary) domain.PlayerSummary {
	s.FriendSince = s.FriendSince.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	if s.RemovedAt != nil {
		at := s.RemovedAt.UTC()
		s.RemovedAt = &at
	}
	return s
}
