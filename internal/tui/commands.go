package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todayview/internal/api"
)

// fetchTasks loads the remote collection.
func (m *App) fetchTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.client.FetchTasks()
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// createTask submits a quick-add entry.
func (m *App) createTask(content string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.client.CreateTask(api.CreateTaskRequest{Content: content})
		if err != nil {
			return errMsg{err}
		}
		return quickAddDoneMsg{task: task}
	}
}

// completeTask marks a task done remotely. The local state change was
// already applied optimistically.
func (m *App) completeTask(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.CompleteTask(id); err != nil {
			return remoteFailedMsg{err}
		}
		return taskCompletedMsg{id: id}
	}
}

// deleteTask deletes a task remotely.
func (m *App) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteTask(id); err != nil {
			return remoteFailedMsg{err}
		}
		return taskDeletedMsg{id: id}
	}
}

// rescheduleTask sets or clears a task's due date.
func (m *App) rescheduleTask(id, dueDate string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.client.UpdateTask(id, api.UpdateTaskRequest{DueDate: &dueDate})
		if err != nil {
			return remoteFailedMsg{err}
		}
		return taskUpdatedMsg{task: task}
	}
}

// reopenTask reverts a completed task back to open.
func (m *App) reopenTask(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.ReopenTask(id); err != nil {
			return remoteFailedMsg{err}
		}
		return taskReopenedMsg{id: id}
	}
}

// persistOrder saves the current item order after an optimistic reorder.
func (m *App) persistOrder(ids []string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.ReorderTasks(ids); err != nil {
			return remoteFailedMsg{err}
		}
		return statusMsg{msg: "Order saved"}
	}
}

// refreshTick schedules the next periodic refetch.
func (m *App) refreshTick() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.RefreshInterval())*time.Second, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// todayDate returns the current local date as YYYY-MM-DD.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// tomorrowDate returns tomorrow's local date as YYYY-MM-DD.
func tomorrowDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

// checkDueCmd schedules the next overdue-notification sweep.
func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}
