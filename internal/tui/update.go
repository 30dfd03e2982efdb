package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todayview/internal/api"
	"todayview/internal/tui/store"
)

// describeError turns a sync failure into status-bar text, with friendlier
// wording for the API error classes a user can act on.
func describeError(err error) string {
	apiErr, ok := api.IsAPIError(err)
	if !ok {
		return err.Error()
	}
	switch {
	case apiErr.IsUnauthorized():
		return "authentication failed, check your API token"
	case apiErr.IsRateLimited():
		return "rate limited by the server, retrying on next refresh"
	case apiErr.IsServerError():
		return "server error, retrying on next refresh"
	}
	return err.Error()
}

// Update is the single event loop: UI events and async remote completions
// interleave here, one message at a time.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := msg.Width - 12
		if inputWidth < 40 {
			inputWidth = 40
		}
		if inputWidth > 80 {
			inputWidth = 80
		}
		m.quickInput.Width = inputWidth
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		m.loading = false
		m.err = nil
		// The fetch layer returns a fresh slice every time; the store's
		// content-equality gate decides whether anything actually changed.
		if m.store.SyncItems(msg.tasks) {
			m.store.ReconcileFocus()
		}
		return m, nil

	case quickAddDoneMsg:
		// Submission completed: reset the wants-focus flag so the next
		// quick-add request is an observable transition again.
		m.statusMsg = "Task added"
		m.quickInput.SetValue("")
		m.quickInput.Blur()
		m.store.SetQuickInputWantsFocus(false)
		return m, m.fetchTasks()

	case taskCompletedMsg:
		m.statusMsg = "Task completed"
		return m, m.fetchTasks()

	case taskDeletedMsg:
		m.statusMsg = "Task deleted"
		return m, m.fetchTasks()

	case taskUpdatedMsg:
		m.statusMsg = "Task updated"
		return m, m.fetchTasks()

	case taskReopenedMsg:
		m.statusMsg = "Task reopened"
		return m, m.fetchTasks()

	case remoteFailedMsg:
		m.statusMsg = "Sync failed: " + describeError(msg.err)
		if m.cfg.UI.RollbackOnError {
			// Policy: discard the optimistic change by re-mirroring.
			return m, m.fetchTasks()
		}
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case statusMsg:
		m.statusMsg = msg.msg
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.fetchTasks(), m.refreshTick())

	case checkDueMsg:
		return m, m.handleCheckDue()
	}

	return m, nil
}

// handleKey routes a key event: quick-input editing first, then the store
// dispatcher, then app-level actions.
func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return nil
	}

	if m.quickInput.Focused() {
		return m.handleQuickInputKey(msg)
	}

	snap := m.store.Snapshot()
	display := m.display()

	if snap.SecondaryOpen() {
		if cmd := m.handleScheduleKey(msg); cmd != nil {
			return cmd
		}
	} else if snap.DetailOpen() && msg.String() == m.keymap.Schedule.Key {
		m.store.OpenSecondaryTarget(snap.DetailTargetID)
		return nil
	}

	// Dispatcher commands: navigation, edit, quick-add request, close.
	if cmd := m.keymap.StoreCommand(msg); cmd != store.CmdNone {
		before := m.store.Snapshot().QuickInputWantsFocus
		m.dispatcher.Dispatch(cmd, display, m.quickInput.Focused())
		if !before && m.store.Snapshot().QuickInputWantsFocus {
			// The rendering layer acquires focus exactly on this edge.
			m.quickInput.Focus()
			return textinput.Blink
		}
		return nil
	}

	if snap.ModalOpen() {
		// Everything else is ignored while a modal is up.
		return nil
	}

	return m.handleListKey(msg, display)
}

// handleQuickInputKey feeds keys into the quick-add field.
func (m *App) handleQuickInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Blur resets the wants-focus flag; without this the next
		// focus request would be an invisible true→true write.
		m.quickInput.Blur()
		m.store.SetQuickInputWantsFocus(false)
		return nil
	case "enter":
		content := m.quickInput.Value()
		if content == "" {
			return nil
		}
		return m.createTask(content)
	}

	var cmd tea.Cmd
	m.quickInput, cmd = m.quickInput.Update(msg)
	return cmd
}

// handleScheduleKey handles the secondary (schedule) modal.
func (m *App) handleScheduleKey(msg tea.KeyMsg) tea.Cmd {
	id := m.store.Snapshot().SecondaryTargetID
	switch msg.String() {
	case "t":
		m.store.CloseSecondaryTarget()
		return m.rescheduleTask(id, todayDate())
	case "m":
		m.store.CloseSecondaryTarget()
		return m.rescheduleTask(id, tomorrowDate())
	case "c":
		m.store.CloseSecondaryTarget()
		return m.rescheduleTask(id, "")
	}
	return nil
}

// handleListKey handles list-level actions outside the dispatcher's scope.
func (m *App) handleListKey(msg tea.KeyMsg, display []displayRow) tea.Cmd {
	k := m.keymap
	switch msg.String() {
	case k.Quit.Key:
		return tea.Quit

	case k.Help.Key:
		m.showHelp = true
		return nil

	case k.Refresh.Key:
		m.loading = true
		return m.fetchTasks()

	case k.Top.Key:
		if len(display) > 0 {
			m.store.SetFocusedID(display[0].Item.ID)
		}
		return nil

	case k.Bottom.Key:
		if len(display) > 0 {
			m.store.SetFocusedID(display[len(display)-1].Item.ID)
		}
		return nil

	case k.ToggleSelect.Key, " ":
		if row := m.focusedRow(display); row != nil {
			row.Actions.ToggleSelect()
		}
		return nil

	case k.CompleteTask.Key:
		return m.actOnSelection(display, func(row *displayRow) { row.Actions.Complete() })

	case k.UndoComplete.Key:
		if m.lastCompleted == "" {
			m.statusMsg = "Nothing to undo"
			return nil
		}
		id := m.lastCompleted
		m.lastCompleted = ""
		return m.reopenTask(id)

	case k.DeleteTask.Key:
		return m.actOnSelection(display, func(row *displayRow) { row.Actions.Delete() })

	case k.Schedule.Key:
		if row := m.focusedRow(display); row != nil {
			row.Actions.SecondaryFlow()
		}
		return nil

	case k.Yank.Key:
		if row := m.focusedRow(display); row != nil {
			if err := clipboard.WriteAll(row.Item.Content); err != nil {
				m.statusMsg = "Clipboard unavailable"
			} else {
				m.statusMsg = "Yanked: " + row.Item.Content
			}
		}
		return nil

	case k.MoveDown.Key:
		return m.moveFocused(display, +1)

	case k.MoveUp.Key:
		return m.moveFocused(display, -1)
	}

	return nil
}

// focusedRow returns the display row for the focused item, or nil.
func (m *App) focusedRow(display []displayRow) *displayRow {
	id := m.store.Snapshot().FocusedID
	for i := range display {
		if display[i].Item.ID == id {
			return &display[i]
		}
	}
	return nil
}

// actOnSelection applies act to every selected row, or to the focused row
// when nothing is selected, then drains the commands the callbacks queued.
func (m *App) actOnSelection(display []displayRow, act func(*displayRow)) tea.Cmd {
	selected := m.store.Snapshot().SelectedIDs
	acted := false
	if len(selected) > 0 {
		for i := range display {
			if selected[display[i].Item.ID] {
				act(&display[i])
				acted = true
			}
		}
		m.store.ClearSelected()
	}
	if !acted {
		if row := m.focusedRow(display); row != nil {
			act(row)
		}
	}
	return m.drainPending()
}

// moveFocused reorders the focused item one position up or down, then
// persists the new order.
func (m *App) moveFocused(display []displayRow, delta int) tea.Cmd {
	id := m.store.Snapshot().FocusedID
	idx := -1
	for i := range display {
		if display[i].Item.ID == id {
			idx = i
			break
		}
	}
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(display) {
		return nil
	}

	m.store.ReorderItems(id, display[target].Item.ID)

	snap := m.store.Snapshot()
	ids := make([]string, len(snap.Items))
	for i, t := range snap.Items {
		ids[i] = t.ID
	}
	return m.persistOrder(ids)
}

// drainPending batches and clears commands queued by callbacks.
func (m *App) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
