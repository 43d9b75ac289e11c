// Package reconcile diffs a freshly fetched friend list against the stored
// player summaries and produces the writes needed to bring storage up to date.
// It performs no I/O.
package reconcile

import (
	"sort"
	"time"

	"friend_tracker/internal/domain"
)

// State is the persisted state loaded once at the start of a pass.
type State struct {
	Summaries map[int64]domain.PlayerSummary
	History   map[domain.HistoryKey]struct{}
}

// Removal marks an account as absent from the latest fetch.
type Removal struct {
	AccountID int64
	At        time.Time
}

// Plan is the set of writes produced by Reconcile. Updates carry the full
// row; FriendSince is always the stored value.
type Plan struct {
	Inserts  []domain.PlayerSummary
	Updates  []domain.PlayerSummary
	Removals []Removal
	History  []domain.NameHistoryEntry
	Changes  []domain.Change
}

func (p *Plan) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Removals) == 0 && len(p.History) == 0
}

// Count returns how many changes of the given kind the plan holds.
func (p *Plan) Count(kind domain.ChangeKind) int {
	n := 0
	for _, c := range p.Changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reconcile treats fetched as the complete friend list. When an account
// appears more than once, the last occurrence wins for field values.
func Reconcile(fetched []domain.FetchedFriend, state State, now time.Time) Plan {
	var plan Plan

	order := make([]int64, 0, len(fetched))
	latest := make(map[int64]domain.FetchedFriend, len(fetched))
	planned := make(map[domain.HistoryKey]struct{})

	for _, f := range fetched {
		id := f.AccountID
		if _, seen := latest[id]; !seen {
			order = append(order, id)
		}
		latest[id] = f

		existing, known := state.Summaries[id]
		if known && existing.DisplayName == f.Profile.DisplayName {
			continue
		}
		key := domain.HistoryKey{AccountID: id, DisplayName: f.Profile.DisplayName}
		if _, ok := state.History[key]; ok {
			continue
		}
		if _, ok := planned[key]; ok {
			continue
		}
		planned[key] = struct{}{}
		plan.History = append(plan.History, domain.NameHistoryEntry{
			AccountID:   id,
			DisplayName: f.Profile.DisplayName,
			UpdatedAt:   now,
		})
	}

	for _, id := range order {
		f := latest[id]
		existing, known := state.Summaries[id]
		if !known {
			plan.Inserts = append(plan.Inserts, domain.PlayerSummary{
				AccountID:   id,
				DisplayName: f.Profile.DisplayName,
				ProfileURL:  f.Profile.ProfileURL,
				FriendSince: f.FriendSince,
				UpdatedAt:   now,
			})
			plan.Changes = append(plan.Changes, domain.Change{
				Kind:       domain.ChangeAdded,
				AccountID:  id,
				NewName:    f.Profile.DisplayName,
				ProfileURL: f.Profile.ProfileURL,
				At:         now,
			})
			continue
		}

		var kind domain.ChangeKind
		switch {
		case existing.DisplayName != f.Profile.DisplayName:
			kind = domain.ChangeRenamed
		case existing.Removed():
			kind = domain.ChangeReturned
		case existing.ProfileURL != f.Profile.ProfileURL:
			kind = domain.ChangeProfileUpdated
		default:
			continue
		}

		updated := existing
		updated.DisplayName = f.Profile.DisplayName
		updated.ProfileURL = f.Profile.ProfileURL
		updated.UpdatedAt = now
		updated.RemovedAt = nil
		plan.Updates = append(plan.Updates, updated)

		change := domain.Change{
			Kind:       kind,
			AccountID:  id,
			NewName:    f.Profile.DisplayName,
			ProfileURL: f.Profile.ProfileURL,
			At:         now,
		}
		if kind == domain.ChangeRenamed {
			change.OldName = existing.DisplayName
		}
		plan.Changes = append(plan.Changes, change)
	}

	gone := make([]int64, 0)
	for id, s := range state.Summaries {
		if _, present := latest[id]; present || s.Removed() {
			continue
		}
		gone = append(gone, id)
	}
	sort.Slice(gone, func(i, j int) bool { return gone[i] < gone[j] })

	for _, id := range gone {
		plan.Removals = append(plan.Removals, Removal{AccountID: id, At: now})
		plan.Changes = append(plan.Changes, domain.Change{
			Kind:      domain.ChangeRemoved,
			AccountID: id,
			OldName:   state.Summaries[id].DisplayName,
			At:        now,
		})
	}

	return plan
}
