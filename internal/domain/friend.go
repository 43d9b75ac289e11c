package domain

import "time"

// FriendRecord is one entry of a friend list as reported by the source.
type FriendRecord struct {
	AccountID   int64
	FriendSince time.Time
}

// ProfileDetails holds the mutable profile attributes of an account.
type ProfileDetails struct {
	AccountID   int64
	DisplayName string
	ProfileURL  string
}

// FetchedFriend pairs a friend list entry with its profile details.
type FetchedFriend struct {
	FriendRecord
	Profile ProfileDetails
}

type PlayerSummary struct {
	AccountID   int64      `db:"account_id"`
	DisplayName string     `db:"persona_name"`
	ProfileURL  string     `db:"profile_url"`
	FriendSince time.Time  `db:"friend_since"`
	UpdatedAt   time.Time  `db:"updated_at"`
	RemovedAt   *time.Time `db:"removed_at"`
}

// Removed reports whether the account was absent from the latest fetch.
func (p PlayerSummary) Removed() bool {
	return p.RemovedAt != nil
}

type NameHistoryEntry struct {
	AccountID   int64     `db:"account_id"`
	DisplayName string    `db:"persona_name"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// HistoryKey identifies a name_history row.
type HistoryKey struct {
	AccountID   int64
	DisplayName string
}

func (e NameHistoryEntry) Key() HistoryKey {
	return HistoryKey{AccountID: e.AccountID, DisplayName: e.DisplayName}
}
