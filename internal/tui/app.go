package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todayview/internal/api"
	"todayview/internal/config"
	"todayview/internal/tui/store"
	"todayview/internal/tui/styles"
)

// displayRow is the projected presentation record for one task.
type displayRow = store.DisplayItem[api.Task]

// App is the bubbletea model hosting the today view. All view state lives in
// the store; App holds the rendering-layer pieces (text input, spinner,
// window size) and the glue between bubbletea events and store mutators.
type App struct {
	client *api.Client
	cfg    *config.Config
	keymap Keymap

	store      *store.Store[api.Task]
	projector  *store.Projector[api.Task]
	dispatcher *store.Dispatcher[api.Task]
	callbacks  *store.Callbacks

	quickInput textinput.Model
	spinner    spinner.Model

	width  int
	height int

	loading   bool
	err       error
	statusMsg string
	showHelp  bool

	// lastCompleted remembers the most recently completed task for undo.
	lastCompleted string

	// notified tracks which overdue tasks already produced a desktop
	// notification this session.
	notified map[string]bool

	// pending collects commands queued by projection callbacks during a
	// single Update pass.
	pending []tea.Cmd
}

// NewApp creates the application model.
func NewApp(client *api.Client, cfg *config.Config) *App {
	input := textinput.New()
	input.Placeholder = "e.g. Buy milk"
	input.CharLimit = 500
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Highlight)

	st := store.New[api.Task]()

	m := &App{
		client:     client,
		cfg:        cfg,
		keymap:     DefaultKeymap(),
		store:      st,
		projector:  store.NewProjector[api.Task](),
		dispatcher: store.NewDispatcher(st),
		quickInput: input,
		spinner:    sp,
		loading:    true,
		notified:   make(map[string]bool),
	}
	m.callbacks = m.bindCallbacks()
	return m
}

// bindCallbacks builds the callback bundle the projector attaches to every
// display item. Store-only actions mutate directly; remote actions apply the
// optimistic local change and queue the fire-and-forget API call.
func (m *App) bindCallbacks() *store.Callbacks {
	return &store.Callbacks{
		Edit: func(id string) {
			m.store.OpenDetailTarget(id)
		},
		ToggleSelect: func(id string) {
			m.store.ToggleSelected(id)
		},
		Complete: func(id string) {
			m.removeLocally(id)
			m.lastCompleted = id
			m.pending = append(m.pending, m.completeTask(id))
		},
		Delete: func(id string) {
			m.removeLocally(id)
			m.pending = append(m.pending, m.deleteTask(id))
		},
		SecondaryFlow: func(id string) {
			m.store.OpenSecondaryTarget(id)
		},
	}
}

// removeLocally drops id from the mirror optimistically and heals focus.
func (m *App) removeLocally(id string) {
	snap := m.store.Snapshot()
	items := make([]api.Task, 0, len(snap.Items))
	for _, t := range snap.Items {
		if t.ID != id {
			items = append(items, t)
		}
	}
	m.store.SetItems(items)
	m.store.ReconcileFocus()
}

// display projects the current snapshot into the ordered display list.
func (m *App) display() []store.DisplayItem[api.Task] {
	return m.projector.Project(m.store.Snapshot(), m.callbacks)
}

// Init starts the initial fetch and the periodic timers.
func (m *App) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.fetchTasks(), m.refreshTick()}
	if m.cfg.UI.Notifications {
		cmds = append(cmds, checkDueCmd())
	}
	return tea.Batch(cmds...)
}
