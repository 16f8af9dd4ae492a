package tender

import (
	"time"

	tendererrors "go-tender/internal/tender/errors"
)

// DeadlineReached compares at day granularity: the deadline counts as
// reached from 00:00 of its calendar date, regardless of the time-of-day
// component. Awarding opens on the deadline date itself and bidding closes
// at the same boundary, so the two windows never overlap. This coarse
// comparison is a documented policy choice; switching to instant comparison
// would shift award timing by up to 24 hours.
func DeadlineReached(deadline, now time.Time) bool {
	deadlineDate := dateOf(deadline)
	nowDate := dateOf(now)
	return !nowDate.Before(deadlineDate)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GuardAward checks the OPEN → AWARDED transition. Order matters: a tender
// that is already awarded reports AlreadyAwarded even if the caller is also
// early, so re-award attempts always get the same answer.
func GuardAward(status Status, deadline, now time.Time) error {
	if status == StatusAwarded {
		return tendererrors.ErrAlreadyAwarded
	}
	if !DeadlineReached(deadline, now) {
		return tendererrors.ErrDeadlineNotReached
	}
	return nil
}

// GuardMutable checks whether field edits or deletion are still permitted:
// only while the tender is OPEN and its deadline date has not been reached.
func GuardMutable(status Status, deadline, now time.Time) error {
	if status != StatusOpen {
		return tendererrors.ErrTenderLocked
	}
	if DeadlineReached(deadline, now) {
		return tendererrors.ErrTenderLocked
	}
	return nil
}
