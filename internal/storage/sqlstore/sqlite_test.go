package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"friend_tracker/internal/domain"
)

type SQLiteStoreSuite struct {
	suite.Suite
	ctx context.Context
	db  *sqlx.DB
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreSuite))
}

func (s *SQLiteStoreSuite) SetupTest() {
	s.ctx = context.Background()
	path := filepath.Join(s.T().TempDir(), "steam.db")

	db, err := Open(s.ctx, "sqlite", path+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	s.Require().NoError(err)
	s.db = db
}

func (s *SQLiteStoreSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func ts(h int) time.Time {
	return time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC)
}

func (s *SQLiteStoreSuite) TestCreateSchema_Idempotent() {
	s.Require().NoError(CreateSchema(s.ctx, s.db))

	var tables []string
	err := s.db.SelectContext(s.ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	s.Require().NoError(err)
	s.Equal([]string{"name_history", "player_summaries", "sync_state"}, tables)
}

func (s *SQLiteStoreSuite) TestSummaryStore_InsertAndLoad() {
	store := NewSummaryStore(s.db)
	removed := ts(3)

	err := store.InsertBatch(s.ctx, []domain.PlayerSummary{
		{AccountID: 76561197960265729, DisplayName: "one", ProfileURL: "one_url", FriendSince: ts(1), UpdatedAt: ts(2)},
		{AccountID: 2, DisplayName: "two", ProfileURL: "two_url", FriendSince: ts(1), UpdatedAt: ts(2), RemovedAt: &removed},
	})
	s.Require().NoError(err)

	all, err := store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	one := all[76561197960265729]
	s.Equal("one", one.DisplayName)
	s.Equal("one_url", one.ProfileURL)
	s.True(ts(1).Equal(one.FriendSince))
	s.True(ts(2).Equal(one.UpdatedAt))
	s.Nil(one.RemovedAt)

	two := all[2]
	s.Require().NotNil(two.RemovedAt)
	s.True(removed.Equal(*two.RemovedAt))
}

func (s *SQLiteStoreSuite) TestSummaryStore_InsertDuplicateFails() {
	store := NewSummaryStore(s.db)
	row := domain.PlayerSummary{AccountID: 1, DisplayName: "one", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)}

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.PlayerSummary{row}))
	s.Error(store.InsertBatch(s.ctx, []domain.PlayerSummary{row}))
}

func (s *SQLiteStoreSuite) TestSummaryStore_UpdateKeepsFriendSince() {
	store := NewSummaryStore(s.db)
	s.Require().NoError(store.InsertBatch(s.ctx, []domain.PlayerSummary{
		{AccountID: 1, DisplayName: "one", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)},
	}))

	err := store.Update(s.ctx, domain.PlayerSummary{
		AccountID: 1, DisplayName: "uno", ProfileURL: "u2", FriendSince: ts(9), UpdatedAt: ts(5),
	})
	s.Require().NoError(err)

	got, err := store.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("uno", got.DisplayName)
	s.Equal("u2", got.ProfileURL)
	s.True(ts(1).Equal(got.FriendSince))
	s.True(ts(5).Equal(got.UpdatedAt))
}

func (s *SQLiteStoreSuite) TestSummaryStore_MarkRemovedIsStable() {
	store := NewSummaryStore(s.db)
	s.Require().NoError(store.InsertBatch(s.ctx, []domain.PlayerSummary{
		{AccountID: 1, DisplayName: "one", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)},
		{AccountID: 2, DisplayName: "two", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)},
	}))

	s.Require().NoError(store.MarkRemoved(s.ctx, []int64{2}, ts(4)))
	s.Require().NoError(store.MarkRemoved(s.ctx, []int64{2}, ts(6)))

	got, err := store.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().NotNil(got.RemovedAt)
	s.True(ts(4).Equal(*got.RemovedAt))

	untouched, err := store.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Nil(untouched.RemovedAt)
}

func (s *SQLiteStoreSuite) TestHistoryStore_ConflictKeepsFirstObservation() {
	store := NewHistoryStore(s.db)

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.NameHistoryEntry{
		{AccountID: 1, DisplayName: "A", UpdatedAt: ts(1)},
		{AccountID: 1, DisplayName: "B", UpdatedAt: ts(2)},
	}))
	s.Require().NoError(store.InsertBatch(s.ctx, []domain.NameHistoryEntry{
		{AccountID: 1, DisplayName: "A", UpdatedAt: ts(3)},
	}))

	entries, err := store.ListByAccount(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("A", entries[0].DisplayName)
	s.True(ts(1).Equal(entries[0].UpdatedAt))
	s.Equal("B", entries[1].DisplayName)

	keys, err := store.LoadKeys(s.ctx)
	s.Require().NoError(err)
	s.Len(keys, 2)
	s.Contains(keys, domain.HistoryKey{AccountID: 1, DisplayName: "B"})
}

func (s *SQLiteStoreSuite) TestSyncStateStore_GetEmptyThenUpdate() {
	store := NewSyncStateStore(s.db)

	state, err := store.Get(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(int64(7), state.SourceAccountID)
	s.Zero(state.TotalRuns)

	state.LastSyncedAt = ts(8)
	state.TotalRuns = 1
	state.TotalChanges = 3
	s.Require().NoError(store.Update(s.ctx, state))

	state.TotalRuns = 2
	s.Require().NoError(store.Update(s.ctx, state))

	got, err := store.Get(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(int64(2), got.TotalRuns)
	s.Equal(int64(3), got.TotalChanges)
	s.True(ts(8).Equal(got.LastSyncedAt))
}

func (s *SQLiteStoreSuite) TestTransactionManager_RollbackOnError() {
	tm := NewTransactionManager(s.db)
	store := NewSummaryStore(s.db)
	history := NewHistoryStore(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		s.NotNil(GetTxFromContext(txCtx))
		if err := store.InsertBatch(txCtx, []domain.PlayerSummary{
			{AccountID: 1, DisplayName: "one", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)},
		}); err != nil {
			return err
		}
		if err := history.InsertBatch(txCtx, []domain.NameHistoryEntry{{AccountID: 1, DisplayName: "one", UpdatedAt: ts(1)}}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	s.Require().EqualError(err, "boom")

	all, err := store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)

	keys, err := history.LoadKeys(s.ctx)
	s.Require().NoError(err)
	s.Empty(keys)
}

func (s *SQLiteStoreSuite) TestTransactionManager_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewSummaryStore(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		return store.InsertBatch(txCtx, []domain.PlayerSummary{
			{AccountID: 1, DisplayName: "one", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)},
		})
	})
	s.Require().NoError(err)

	all, err := store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *SQLiteStoreSuite) TestSummaryStore_LargeBatch() {
	store := NewSummaryStore(s.db)

	rows := make([]domain.PlayerSummary, 250)
	ids := make([]int64, 250)
	for i := range rows {
		rows[i] = domain.PlayerSummary{AccountID: int64(i + 1), DisplayName: "p", ProfileURL: "u", FriendSince: ts(1), UpdatedAt: ts(1)}
		ids[i] = int64(i + 1)
	}
	s.Require().NoError(store.InsertBatch(s.ctx, rows))
	s.Require().NoError(store.MarkRemoved(s.ctx, ids, ts(2)))

	var removed int
	s.Require().NoError(s.db.GetContext(s.ctx, &removed, `SELECT COUNT(*) FROM player_summaries WHERE removed_at IS NOT NULL`))
	s.Equal(250, removed)
}
