package domain

import "time"

type ChangeKind string

const (
	ChangeAdded          ChangeKind = "added"
	ChangeRenamed        ChangeKind = "renamed"
	ChangeReturned       ChangeKind = "returned"
	ChangeProfileUpdated ChangeKind = "profile_updated"
	ChangeRemoved        ChangeKind = "removed"
)

// Change describes what happened to one account during a pass.
type Change struct {
	Kind       ChangeKind `json:"kind"`
	AccountID  int64      `json:"account_id"`
	OldName    string     `json:"old_name,omitempty"`
	NewName    string     `json:"new_name,omitempty"`
	ProfileURL string     `json:"profile_url,omitempty"`
	At         time.Time  `json:"at"`
}
