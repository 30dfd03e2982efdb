package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"todayview/internal/tui/styles"
)

// View renders the whole screen from the current snapshot's projection.
func (m *App) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.StatusError.Render("Error: " + describeError(m.err)))
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading tasks...")
	default:
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderQuickInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	content := styles.App.Render(b.String())

	if m.showHelp {
		return m.overlay(m.renderHelp())
	}
	snap := m.store.Snapshot()
	if snap.SecondaryOpen() {
		return m.overlay(m.renderScheduleModal())
	}
	if snap.DetailOpen() {
		return m.overlay(m.renderDetailModal())
	}
	return content
}

func (m *App) renderHeader() string {
	title := styles.Title.Render("Today")
	count := styles.Subtitle.Render(fmt.Sprintf("%d tasks", len(m.store.Snapshot().Items)))
	return title + "  " + count
}

// renderTaskList paints the projected display list. Focus and selection come
// from the display items' derived flags, never recomputed here.
func (m *App) renderTaskList() string {
	display := m.display()
	if len(display) == 0 {
		return styles.Subtitle.Render("Nothing scheduled for today.")
	}

	maxWidth := m.width - 12
	if maxWidth < 20 {
		maxWidth = 20
	}

	var rows []string
	for _, row := range display {
		marker := "  "
		if row.IsSelected {
			marker = styles.SelectMarker.Render("✓ ")
		}

		content := truncate(row.Item.Content, maxWidth)
		line := marker + priorityGlyph(row.Item.Priority) + content

		if row.Item.DueDate != "" {
			due := styles.TaskDue
			if row.Item.IsOverdue() {
				due = styles.TaskDueOverdue
			}
			line += due.Render(row.Item.DueDate)
		}

		switch {
		case row.Item.Done:
			line = styles.TaskCompleted.Render(line)
		case row.IsFocused:
			line = styles.TaskFocused.Render(line)
		default:
			line = styles.TaskItem.Render(line)
		}
		rows = append(rows, line)
	}

	return strings.Join(rows, "\n")
}

func (m *App) renderQuickInput() string {
	if !m.quickInput.Focused() {
		return styles.Subtitle.Render("Press 'a' to add a task")
	}
	return styles.DialogTitle.Render("Add: ") + m.quickInput.View()
}

func (m *App) renderStatusBar() string {
	snap := m.store.Snapshot()
	parts := []string{}
	if n := len(snap.SelectedIDs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	parts = append(parts, "? for help")
	return styles.StatusBar.Render(strings.Join(parts, "  ·  "))
}

// renderDetailModal renders the detail overlay for the detail target id.
func (m *App) renderDetailModal() string {
	snap := m.store.Snapshot()
	task, ok := snap.ItemByID(snap.DetailTargetID)
	if !ok {
		// Target removed under the modal; self-heals on next reconcile.
		return styles.Dialog.Render("Task no longer exists")
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(task.Content))
	b.WriteString("\n\n")
	if task.DueDate != "" {
		b.WriteString(styles.Subtitle.Render("Due: "+task.DueDate) + "\n")
	}
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Priority: P%d", task.Priority)) + "\n")
	if task.Notes != "" {
		b.WriteString("\n")
		b.WriteString(renderMarkdown(task.Notes, m.dialogWidth()-4))
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render("s schedule · esc close"))

	return styles.Dialog.Width(m.dialogWidth()).Render(b.String())
}

// renderScheduleModal renders the secondary flow: quick due-date picking.
func (m *App) renderScheduleModal() string {
	snap := m.store.Snapshot()
	task, _ := snap.ItemByID(snap.SecondaryTargetID)

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Schedule"))
	b.WriteString("\n\n")
	b.WriteString(truncate(task.Content, m.dialogWidth()-6) + "\n\n")
	b.WriteString("  t  today\n")
	b.WriteString("  m  tomorrow\n")
	b.WriteString("  c  clear due date\n\n")
	b.WriteString(styles.StatusBar.Render("esc cancel"))

	return styles.Dialog.Width(m.dialogWidth()).Render(b.String())
}

func (m *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keybindings"))
	b.WriteString("\n\n")
	for _, item := range m.keymap.HelpItems() {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", item[0], item[1]))
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render("any key to close"))
	return styles.Dialog.Render(b.String())
}

// overlay centers a dialog in the window, replacing the list behind it.
func (m *App) overlay(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (m *App) dialogWidth() int {
	w := 70
	if m.width < 80 {
		w = m.width - 10
	}
	if w < 40 {
		w = 40
	}
	return w
}

// priorityGlyph returns a colored priority marker for P1-P3.
func priorityGlyph(priority int) string {
	var color lipgloss.Color
	switch priority {
	case 1:
		color = styles.Priority1Color
	case 2:
		color = styles.Priority2Color
	case 3:
		color = styles.Priority3Color
	default:
		return ""
	}
	return lipgloss.NewStyle().Foreground(color).Render("! ")
}

// truncate shortens s to maxWidth terminal cells, appending an ellipsis.
// Wide characters are measured with runewidth.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}

	width := 0
	var b strings.Builder
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "…"
}
