package tui

import (
	"time"

	"todayview/internal/api"
)

// errMsg carries an error from a background command.
type errMsg struct{ err error }

// statusMsg sets the status bar text. Background commands whose completion
// needs no further handling report through it.
type statusMsg struct{ msg string }

// tasksLoadedMsg delivers a fresh remote collection. The slice is a new
// instance on every fetch even when content is unchanged; the update loop
// feeds it through the store's content-equality gate.
type tasksLoadedMsg struct{ tasks []api.Task }

// quickAddDoneMsg signals a successful quick-add submission.
type quickAddDoneMsg struct{ task *api.Task }

// taskCompletedMsg signals a completed remote completion call.
type taskCompletedMsg struct{ id string }

// taskDeletedMsg signals a completed remote deletion.
type taskDeletedMsg struct{ id string }

// taskUpdatedMsg signals a completed remote update (e.g. reschedule).
type taskUpdatedMsg struct{ task *api.Task }

// taskReopenedMsg signals that a completed task was reopened (undo).
type taskReopenedMsg struct{ id string }

// refreshTickMsg triggers the periodic remote refetch.
type refreshTickMsg time.Time

// checkDueMsg triggers the overdue-notification sweep.
type checkDueMsg time.Time

// remoteFailedMsg reports a failed fire-and-forget remote call; the update
// loop applies the configured rollback policy.
type remoteFailedMsg struct{ err error }
