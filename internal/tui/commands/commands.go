// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/sched"
	"slate/internal/schedule"
)

// GeneratedMsg is sent when a generation call completes.
type GeneratedMsg struct {
	Seq    uint64
	Result *sched.GenerateResult
}

// GenerateFailedMsg is sent when a generation call fails. The cache is
// left untouched; only the reason is surfaced.
type GenerateFailedMsg struct {
	Seq uint64
	Err error
}

// RevalidatedMsg is sent when an update call returns a fresh conflict
// report.
type RevalidatedMsg struct {
	Seq       uint64
	Conflicts []schedule.Conflict
}

// RevalidateFailedMsg is sent when an update call fails. The optimistic
// local mutation stands; the failure is only surfaced.
type RevalidateFailedMsg struct {
	Seq uint64
	Err error
}

// SessionResumedMsg is sent when a stored session is loaded at startup.
type SessionResumedMsg struct {
	Record *schedule.SessionRecord
}

// SessionPersistedMsg is sent when the session store write completes.
type SessionPersistedMsg struct{}

// ExportCopiedMsg is sent when an export link lands on the clipboard.
type ExportCopiedMsg struct {
	URL string
}

// ErrMsg is sent when an error occurs outside the sync paths.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Generate requests a full timetable from the scheduling service. The
// sequence number ties the response to the issuing call so stale
// responses can be discarded.
func Generate(client *sched.Client, roster sched.Roster, session string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Generate(context.Background(), roster, session)
		if err != nil {
			return GenerateFailedMsg{Seq: seq, Err: err}
		}
		return GeneratedMsg{Seq: seq, Result: result}
	}
}

// Revalidate sends the full entry snapshot for conflict re-validation
// after a local mutation.
func Revalidate(client *sched.Client, session string, entries []schedule.Entry, seq uint64) tea.Cmd {
	return func() tea.Msg {
		conflicts, err := client.Update(context.Background(), session, entries)
		if err != nil {
			return RevalidateFailedMsg{Seq: seq, Err: err}
		}
		return RevalidatedMsg{Seq: seq, Conflicts: conflicts}
	}
}

// ResumeSession loads the most recently stored session, if any.
func ResumeSession(store schedule.Store) tea.Cmd {
	return func() tea.Msg {
		rec, err := store.LatestSession(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SessionResumedMsg{Record: rec}
	}
}

// PersistSession writes the current session state to the local store.
func PersistSession(store schedule.Store, rec *schedule.SessionRecord) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveSession(context.Background(), rec); err != nil {
			return ErrMsg{Err: err}
		}
		return SessionPersistedMsg{}
	}
}
