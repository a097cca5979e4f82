package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/tui/commands"
)

// Init resumes the most recent stored session, if any.
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return commands.ResumeSession(m.store)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.SessionResumedMsg:
		if msg.Record == nil {
			m.setStatus("No stored session. Press g to generate.", false)
			return m, nil
		}
		m.board.ReplaceAll(msg.Record.Entries, msg.Record.Meta, msg.Record.SessionID)
		m.refreshGrid()
		m.setStatus(fmt.Sprintf("Resumed session %s (%d entries)", shortSession(msg.Record.SessionID), m.board.Len()), false)
		// Re-validate against the service to restore conflict flags.
		m.syncing = true
		seq := m.board.NextSync()
		return m, commands.Revalidate(m.client, m.board.Session(), m.board.Snapshot(), seq)

	case commands.GeneratedMsg:
		if msg.Seq == m.loadingSeq {
			m.loading = false
		}
		if msg.Seq != m.board.CurrentSync() {
			LogStaleMsg("generated", msg.Seq, m.board.CurrentSync())
			return m, nil
		}
		m.syncing = false
		meta := m.board.Meta()
		m.board.ReplaceAll(msg.Result.Entries, meta, msg.Result.SessionID)
		m.flags.Rebuild(msg.Result.Conflicts)
		m.refreshGrid()
		m.setStatus(fmt.Sprintf("Generated %d entries, %d conflicts", m.board.Len(), len(msg.Result.Conflicts)), len(msg.Result.Conflicts) > 0)
		if m.store == nil {
			return m, nil
		}
		return m, commands.PersistSession(m.store, m.sessionRecord())

	case commands.GenerateFailedMsg:
		if msg.Seq == m.loadingSeq {
			m.loading = false
		}
		if msg.Seq != m.board.CurrentSync() {
			LogStaleMsg("generate-failed", msg.Seq, m.board.CurrentSync())
			return m, nil
		}
		m.syncing = false
		m.setStatus(fmt.Sprintf("Generate failed: %v", msg.Err), true)
		return m, nil

	case commands.RevalidatedMsg:
		if msg.Seq != m.board.CurrentSync() {
			LogStaleMsg("revalidated", msg.Seq, m.board.CurrentSync())
			return m, nil
		}
		m.syncing = false
		m.flags.Rebuild(msg.Conflicts)
		if n := len(msg.Conflicts); n > 0 {
			m.setStatus(fmt.Sprintf("Synced: %d conflicts", n), true)
		} else {
			m.setStatus("Synced: no conflicts", false)
		}
		return m, nil

	case commands.RevalidateFailedMsg:
		if msg.Seq != m.board.CurrentSync() {
			LogStaleMsg("revalidate-failed", msg.Seq, m.board.CurrentSync())
			return m, nil
		}
		// Local edits stand; only the conflict report is stale now.
		m.syncing = false
		m.setStatus(fmt.Sprintf("Sync failed, local changes kept: %v", msg.Err), true)
		return m, nil

	case commands.SessionPersistedMsg:
		return m, nil

	case commands.ExportCopiedMsg:
		m.setStatus("Export link copied: "+msg.URL, false)
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, nil

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false)
		return m, nil

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// mutated issues the post-mutation side effects: re-validation against
// the service and local persistence.
func (m *Model) mutated() tea.Cmd {
	m.refreshGrid()
	m.syncing = true
	seq := m.board.NextSync()
	cmds := []tea.Cmd{
		commands.Revalidate(m.client, m.board.Session(), m.board.Snapshot(), seq),
	}
	if m.store != nil {
		cmds = append(cmds, commands.PersistSession(m.store, m.sessionRecord()))
	}
	return tea.Batch(cmds...)
}

// generate kicks off a full timetable generation.
func (m *Model) generate() tea.Cmd {
	if err := m.config.RosterReady(); err != nil {
		m.setStatus(fmt.Sprintf("Roster incomplete: %v", err), true)
		return nil
	}
	m.loading = true
	m.syncing = true
	seq := m.board.NextSync()
	m.loadingSeq = seq
	return commands.Generate(m.client, m.config.WireRoster(), m.board.Session(), seq)
}

// revalidate re-checks the current entries without mutating them.
func (m *Model) revalidate() tea.Cmd {
	if m.board.Session() == "" {
		m.setStatus("No session yet. Press g to generate.", false)
		return nil
	}
	m.syncing = true
	seq := m.board.NextSync()
	return commands.Revalidate(m.client, m.board.Session(), m.board.Snapshot(), seq)
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
