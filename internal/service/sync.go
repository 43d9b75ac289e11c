package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"friend_tracker/internal/config"
	"friend_tracker/internal/domain"
	"friend_tracker/internal/reconcile"
)

type SyncService struct {
	source    Source
	summaries SummaryStore
	history   HistoryStore
	syncState SyncStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

func NewSyncService(
	source Source,
	summaries SummaryStore,
	history HistoryStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		source:    source,
		summaries: summaries,
		history:   history,
		syncState: syncState,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("source", source.ID(), "account_id", cfg.AccountID),
		config:    cfg,
		now:       time.Now,
	}
}

// Sync performs one reconciliation pass. Errors wrap domain.ErrUpstreamFetch
// or domain.ErrStorage; on a storage error nothing from this pass is visible.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := s.now()
	s.logger.Info("starting sync", "source_name", s.source.Name())

	fetched, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}

	s.logger.Info("fetched friends from source", "count", len(fetched))

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load state: %w", domain.ErrStorage, err)
	}

	now := s.now().UTC()
	plan := reconcile.Reconcile(fetched, state, now)
	if plan.Empty() {
		s.logger.Info("no friend changes detected")
	}

	stats := &domain.SyncStats{
		SourceAccountID: s.config.AccountID,
		Fetched:         len(fetched),
		Added:           plan.Count(domain.ChangeAdded),
		Renamed:         plan.Count(domain.ChangeRenamed),
		Returned:        plan.Count(domain.ChangeReturned),
		ProfileUpdated:  plan.Count(domain.ChangeProfileUpdated),
		Removed:         plan.Count(domain.ChangeRemoved),
		HistoryRows:     len(plan.History),
	}
	stats.Unchanged = len(state.Summaries) - stats.Renamed - stats.Returned - stats.ProfileUpdated - stats.Removed

	if err := s.applyPlan(ctx, &plan, stats, now); err != nil {
		return nil, fmt.Errorf("%w: apply changes: %w", domain.ErrStorage, err)
	}

	s.publishChanges(ctx, plan.Changes, stats)

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"added", stats.Added,
		"renamed", stats.Renamed,
		"returned", stats.Returned,
		"profile_updated", stats.ProfileUpdated,
		"removed", stats.Removed,
		"unchanged", stats.Unchanged,
		"history_rows", stats.HistoryRows,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// fetch pairs every friend with its profile details. Friends the API returns
// no details for are skipped.
func (s *SyncService) fetch(ctx context.Context) ([]domain.FetchedFriend, error) {
	friends, err := s.source.ListFriends(ctx, s.config.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	if len(friends) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(friends))
	for i, f := range friends {
		ids[i] = f.AccountID
	}

	details, err := s.source.GetProfileDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get profile details: %w", err)
	}

	fetched := make([]domain.FetchedFriend, 0, len(friends))
	for _, f := range friends {
		profile, ok := details[f.AccountID]
		if !ok {
			s.logger.Warn("no profile details returned, skipping friend", "friend_id", f.AccountID)
			continue
		}
		fetched = append(fetched, domain.FetchedFriend{FriendRecord: f, Profile: profile})
	}

	return fetched, nil
}

func (s *SyncService) loadState(ctx context.Context) (reconcile.State, error) {
	summaries, err := s.summaries.LoadAll(ctx)
	if err != nil {
		return reconcile.State{}, fmt.Errorf("load summaries: %w", err)
	}

	history, err := s.history.LoadKeys(ctx)
	if err != nil {
		return reconcile.State{}, fmt.Errorf("load name history: %w", err)
	}

	return reconcile.State{Summaries: summaries, History: history}, nil
}

func (s *SyncService) applyPlan(ctx context.Context, plan *reconcile.Plan, stats *domain.SyncStats, now time.Time) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if len(plan.Inserts) > 0 {
			if err := s.summaries.InsertBatch(txCtx, plan.Inserts); err != nil {
				return fmt.Errorf("insert summaries: %w", err)
			}
		}

		for _, summary := range plan.Updates {
			if err := s.summaries.Update(txCtx, summary); err != nil {
				return fmt.Errorf("update summary %d: %w", summary.AccountID, err)
			}
		}

		if len(plan.Removals) > 0 {
			ids := make([]int64, len(plan.Removals))
			for i, r := range plan.Removals {
				ids[i] = r.AccountID
			}
			if err := s.summaries.MarkRemoved(txCtx, ids, now); err != nil {
				return fmt.Errorf("mark removed: %w", err)
			}
		}

		if len(plan.History) > 0 {
			if err := s.history.InsertBatch(txCtx, plan.History); err != nil {
				return fmt.Errorf("insert name history: %w", err)
			}
		}

		return s.updateSyncState(txCtx, stats, now)
	})
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats, now time.Time) error {
	state, err := s.syncState.Get(ctx, s.config.AccountID)
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}

	state.SourceAccountID = s.config.AccountID
	state.LastSyncedAt = now
	state.TotalRuns++
	state.TotalChanges += int64(stats.Changes())

	if err := s.syncState.Update(ctx, state); err != nil {
		return fmt.Errorf("update sync state: %w", err)
	}
	return nil
}

// publishChanges runs after commit, so failures are only counted.
func (s *SyncService) publishChanges(ctx context.Context, changes []domain.Change, stats *domain.SyncStats) {
	if s.publisher == nil {
		return
	}

	for _, change := range changes {
		if err := s.publisher.Publish(ctx, s.config.AccountID, change); err != nil {
			stats.PublishErrors++
			s.logger.Warn("publish change failed",
				"friend_id", change.AccountID,
				"kind", change.Kind,
				"error", err,
			)
			continue
		}
		stats.Published++
	}
}
