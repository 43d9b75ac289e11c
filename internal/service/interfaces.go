package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"friend_tracker/internal/domain"
)

type SummaryStore interface {
	LoadAll(ctx context.Context) (map[int64]domain.PlayerSummary, error)
	InsertBatch(ctx context.Context, summaries []domain.PlayerSummary) error
	Update(ctx context.Context, summary domain.PlayerSummary) error
	MarkRemoved(ctx context.Context, accountIDs []int64, at time.Time) error
}

type HistoryStore interface {
	LoadKeys(ctx context.Context) (map[domain.HistoryKey]struct{}, error)
	InsertBatch(ctx context.Context, entries []domain.NameHistoryEntry) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceAccountID int64) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Source interface {
	ID() string
	Name() string
	ListFriends(ctx context.Context, accountID int64) ([]domain.FriendRecord, error)
	GetProfileDetails(ctx context.Context, ids []int64) (map[int64]domain.ProfileDetails, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, sourceAccountID int64, change domain.Change) error
	Close() error
}
