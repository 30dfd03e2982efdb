package tui

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

// Debug logger for the notification sweep; nil when the log file cannot
// be opened.
var debugLog *log.Logger

func init() {
	f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		debugLog = log.New(f, "NOTIF: ", log.Ltime|log.Lshortfile)
	}
}

// handleCheckDue sends a desktop notification for each overdue task that
// has not been notified about yet this session, then schedules the next
// sweep.
func (m *App) handleCheckDue() tea.Cmd {
	if debugLog != nil {
		debugLog.Printf("notification sweep, %d tasks mirrored", len(m.store.Snapshot().Items))
	}

	for _, task := range m.store.Snapshot().Items {
		if m.notified[task.ID] || task.Done || !task.IsOverdue() {
			continue
		}
		m.notified[task.ID] = true
		if err := beeep.Notify("TodayView", "Overdue: "+task.Content, ""); err != nil && debugLog != nil {
			debugLog.Printf("notify failed for %s: %v", task.ID, err)
		}
	}

	return checkDueCmd()
}
