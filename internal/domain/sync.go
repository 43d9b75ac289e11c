package domain

import "time"

// SyncStats holds statistics about a reconciliation pass.
type SyncStats struct {
	SourceAccountID int64
	Fetched         int
	Added           int
	Renamed         int
	Returned        int
	ProfileUpdated  int
	Removed         int
	Unchanged       int
	HistoryRows     int
	Published       int
	PublishErrors   int
	Duration        time.Duration
}

// Changes returns the number of accounts touched by the pass.
func (s *SyncStats) Changes() int {
	return s.Added + s.Renamed + s.Returned + s.ProfileUpdated + s.Removed
}

type SyncState struct {
	SourceAccountID int64     `db:"source_account_id"`
	LastSyncedAt    time.Time `db:"last_synced_at"`
	TotalRuns       int64     `db:"total_runs"`
	TotalChanges    int64     `db:"total_changes"`
}
