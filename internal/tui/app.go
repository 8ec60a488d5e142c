package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/search"
	"github.com/dcastillo/studia/internal/service"
	"github.com/dcastillo/studia/internal/state"
	"github.com/dcastillo/studia/internal/tui/components"
	"github.com/dcastillo/studia/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLogin ApplicationState = iota
	StateBrowsing
)

const statusTimeout = 4 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Level Level
	Ready bool

	// Shared state and orchestrators
	Store        *state.Store
	Auth         *service.AuthService
	Careers      *service.CareerService
	Courses      *service.CourseService
	Deliverables *service.DeliverableService
	Tasks        *service.TaskService
	Sessions     *service.SessionService
	Logger       *slog.Logger

	// UI components
	Keys     KeyMap
	HelpView help.Model
	Spinner  spinner.Model
	Browser  components.List
	Pager    paginator.Model

	LoginForm *components.Form

	// Active CRUD dialog. DialogLevel says which entity it edits and
	// EditID is non-empty for update flows.
	Dialog      *components.Form
	DialogLevel Level
	EditID      string

	Picker  components.CareerPicker
	Confirm components.ConfirmModal
	Finder  components.SearchModal
	Clock   components.SessionClock

	// True while a ClockTickCmd is in flight; keeps a re-started clock
	// from running two tick loops at once.
	clockTicking bool

	// Pending delete, kept until the confirm modal answers
	deleteLevel Level
	deleteID    string

	// Edit/delete pressed on an empty page
	noSelection bool

	// Current page per level, 1-based
	pages       map[Level]int
	returnLevel Level

	Width, Height int
	StatusMsg     string
	StatusIsErr   bool
}

// NewModel creates the application model. When a persisted session was
// restored the model starts in the browser, otherwise at the login screen.
func NewModel(
	store *state.Store,
	auth *service.AuthService,
	careers *service.CareerService,
	courses *service.CourseService,
	deliverables *service.DeliverableService,
	tasks *service.TaskService,
	sessions *service.SessionService,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{Frames: styles.SpinnerFrames, FPS: time.Second / 10}
	sp.Style = styles.AccentStyle

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.AccentStyle.Render("●")
	pager.InactiveDot = styles.DimStyle.Render("○")

	appState := StateLogin
	if auth.User().ID != "" {
		appState = StateBrowsing
	}

	return Model{
		State:        appState,
		Level:        LevelCareers,
		Store:        store,
		Auth:         auth,
		Careers:      careers,
		Courses:      courses,
		Deliverables: deliverables,
		Tasks:        tasks,
		Sessions:     sessions,
		Logger:       logger,
		Keys:         DefaultKeyMap(),
		HelpView:     help.New(),
		Spinner:      sp,
		Browser:      components.NewList(),
		Pager:        pager,
		LoginForm:    components.NewLoginForm(),
		Picker:       components.NewCareerPicker(),
		Confirm:      components.NewConfirmModal(),
		Finder:       components.NewSearchModal(),
		Clock:        components.NewSessionClock(),
		pages: map[Level]int{
			LevelCareers:      1,
			LevelCourses:      1,
			LevelDeliverables: 1,
			LevelTasks:        1,
			LevelSessions:     1,
		},
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick, textinput.Blink}
	if m.State == StateBrowsing {
		cmds = append(cmds, m.loadCmd(LevelCareers))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.HelpView.Width = msg.Width
		m.Ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case ClockTickMsg:
		return m.handleClockTick()

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case MutationDoneMsg:
		return m.handleMutationDone(msg)

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blink and friends) goes to the live input
	return m, m.updateFocused(msg)
}

// updateFocused forwards a non-key message to whichever component holds a
// text input right now.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if m.State == StateLogin {
		cmd, _ := m.LoginForm.Update(msg)
		return cmd
	}
	if m.Picker.IsVisible() {
		cmd, _ := m.Picker.Update(msg)
		return cmd
	}
	if m.Finder.IsVisible() {
		cmd, _ := m.Finder.Update(msg)
		return cmd
	}
	if m.Dialog != nil {
		cmd, _ := m.Dialog.Update(msg)
		return cmd
	}
	if m.Browser.Filtering() {
		cmd, _ := m.Browser.Update(msg)
		return cmd
	}
	return nil
}

func (m Model) handleClockTick() (tea.Model, tea.Cmd) {
	if !m.Clock.IsVisible() {
		m.clockTicking = false
		return m, nil
	}
	if finished := m.Clock.Tick(); finished {
		m.Clock.Hide()
		m.clockTicking = false
		return m, m.setStatus("Sesión terminada", false)
	}
	return m, ClockTickCmd()
}

func (m Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	m.LoginForm.SetSubmitting(false)

	switch msg.Code {
	case domain.Success:
		m.State = StateBrowsing
		m.Level = LevelCareers
		m.pages[LevelCareers] = 1
		m.LoginForm.Reset()
		m.refreshRows()
		return m, tea.Batch(
			m.loadCmd(LevelCareers),
			m.setStatus("Bienvenido, "+m.Auth.User().Name, false),
		)
	case domain.Unauthorized:
		m.LoginForm.SetFieldError("password", "credenciales inválidas")
		return m, nil
	default:
		return m, m.setStatus(msg.Code.Message(), true)
	}
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Code == domain.Unauthorized {
		return m.forceLogout()
	}
	if msg.Level == m.Level {
		m.refreshRows()
		m.syncPager()
	}
	if msg.Code != domain.Success {
		return m, m.setStatus(msg.Code.Message(), true)
	}
	return m, nil
}

func (m Model) handleMutationDone(msg MutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Code == domain.Unauthorized {
		return m.forceLogout()
	}
	if m.Dialog != nil {
		m.Dialog.SetSubmitting(false)
	}

	if msg.Code != domain.Success {
		return m, m.setStatus(msg.Code.Message(), true)
	}

	m.Dialog = nil
	m.EditID = ""

	var cmds []tea.Cmd
	if msg.Op == OpDelete {
		// Deleting the last record of the last page shrinks the page
		// count; fall back to the new last page and refetch it.
		if total := max(m.totalPagesFor(msg.Level), 1); m.pages[msg.Level] > total {
			m.pages[msg.Level] = total
			if msg.Level == m.Level {
				cmds = append(cmds, m.loadCmd(msg.Level))
			}
		}
	}
	if msg.Level == m.Level {
		m.refreshRows()
		m.syncPager()
	}

	verb := "guardado"
	switch msg.Op {
	case OpCreate:
		verb = "creado"
	case OpUpdate:
		verb = "actualizado"
	case OpDelete:
		verb = "eliminado"
	}
	cmds = append(cmds, m.setStatus("Registro "+verb, false))
	return m, tea.Batch(cmds...)
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Code == domain.Unauthorized {
		return m.forceLogout()
	}
	if msg.Code != domain.Success {
		m.Picker.Hide()
		return m, m.setStatus(msg.Code.Message(), true)
	}
	m.Picker.SetCatalog(msg.Careers)
	return m, nil
}

// forceLogout handles an Unauthorized response from any flow: the session
// is cleared and the user lands back on the login screen.
func (m Model) forceLogout() (tea.Model, tea.Cmd) {
	m.Auth.Logout()
	m.State = StateLogin
	m.LoginForm = components.NewLoginForm()
	m.Dialog = nil
	m.EditID = ""
	m.Picker.Hide()
	m.Confirm.Hide()
	m.Finder.Hide()
	m.Clock.Hide()
	return m, m.setStatus("Tu sesión expiró, inicia sesión otra vez", true)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.State == StateLogin {
		return m.handleLoginKey(msg)
	}

	// Modals take the keyboard in order of precedence
	if m.Clock.IsVisible() {
		m.Clock.Update(msg)
		return m, nil
	}
	if m.Confirm.IsVisible() {
		confirmed, _ := m.Confirm.Update(msg)
		if confirmed {
			return m, m.deleteCmd()
		}
		return m, nil
	}
	if m.Picker.IsVisible() {
		cmd, chosen := m.Picker.Update(msg)
		if chosen != nil {
			m.Picker.Hide()
			return m, tea.Batch(cmd, JoinCareerCmd(m.Careers, chosen.ID, m.Auth.User().ID))
		}
		return m, cmd
	}
	if m.Finder.IsVisible() {
		cmd, entry := m.Finder.Update(msg)
		if entry != nil {
			m.jumpTo(*entry)
		}
		return m, cmd
	}
	if m.noSelection {
		m.noSelection = false
		return m, nil
	}
	if m.Dialog != nil {
		return m.handleDialogKey(msg)
	}
	if m.Browser.Filtering() {
		cmd, consumed := m.Browser.Update(msg)
		if consumed {
			return m, cmd
		}
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.LoginForm.Submitting() {
		return m, nil
	}
	if key.Matches(msg, m.Keys.Escape) {
		return m, tea.Quit
	}

	cmd, submitted := m.LoginForm.Update(msg)
	if !submitted {
		return m, cmd
	}

	creds, err := components.CredentialsFromForm(m.LoginForm)
	if err != nil {
		return m, cmd
	}
	m.LoginForm.SetSubmitting(true)
	return m, tea.Batch(cmd, LoginCmd(m.Auth, creds))
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Escape) && !m.Dialog.Submitting() {
		m.Dialog = nil
		m.EditID = ""
		return m, nil
	}

	cmd, submitted := m.Dialog.Update(msg)
	if !submitted {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.submitDialog())
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.HelpView.ShowAll = !m.HelpView.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		m.Browser.MoveUp()
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.Browser.MoveDown()
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		return m, m.descend()

	case key.Matches(msg, m.Keys.Back):
		m.ascend()
		return m, nil

	case key.Matches(msg, m.Keys.PrevPage):
		return m, m.changePage(-1)

	case key.Matches(msg, m.Keys.NextPage):
		return m, m.changePage(1)

	case key.Matches(msg, m.Keys.New):
		return m, m.openCreate()

	case key.Matches(msg, m.Keys.Edit):
		m.openEdit()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Delete):
		m.askDelete()
		return m, nil

	case key.Matches(msg, m.Keys.Filter):
		m.Browser.StartFilter()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Search):
		m.Finder.Show(m.collectEntries())
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Sessions):
		return m, m.toggleSessions()

	case key.Matches(msg, m.Keys.Refresh):
		return m, m.loadCmd(m.Level)

	case key.Matches(msg, m.Keys.Logout):
		m.Auth.Logout()
		m.State = StateLogin
		m.LoginForm = components.NewLoginForm()
		return m, m.setStatus("Sesión cerrada", false)

	case key.Matches(msg, m.Keys.Escape):
		m.Browser.StopFilter()
		return m, nil
	}

	return m, nil
}

// descend opens the entity under the cursor: careers drill into courses,
// courses into deliverables, deliverables into tasks. At the sessions level
// enter starts the countdown clock instead.
func (m *Model) descend() tea.Cmd {
	row, ok := m.Browser.CursorRow()
	if !ok {
		return nil
	}

	switch m.Level {
	case LevelCareers:
		career, ok := findByID(m.Store.Careers.Items(), row.ID, func(c domain.Career) string { return c.ID })
		if !ok {
			return nil
		}
		m.Store.Careers.SetSelected(career)
		return m.enter(LevelCourses)

	case LevelCourses:
		course, ok := findByID(m.Store.Courses.Items(), row.ID, func(c domain.Course) string { return c.ID })
		if !ok {
			return nil
		}
		m.Store.Courses.SetSelected(course)
		return m.enter(LevelDeliverables)

	case LevelDeliverables:
		deliverable, ok := findByID(m.Store.Deliverables.Items(), row.ID, func(d domain.Deliverable) string { return d.ID })
		if !ok {
			return nil
		}
		m.Store.Deliverables.SetSelected(deliverable)
		return m.enter(LevelTasks)

	case LevelSessions:
		sess, ok := findByID(m.Store.Sessions.Items(), row.ID, func(s domain.StudySession) string { return s.ID })
		if !ok {
			return nil
		}
		m.Store.Sessions.SetSelected(sess)
		m.Clock.Start(sess)
		if m.clockTicking {
			return nil
		}
		m.clockTicking = true
		return ClockTickCmd()
	}

	return nil
}

// enter switches to a child level on page 1 and loads it.
func (m *Model) enter(level Level) tea.Cmd {
	m.Level = level
	m.pages[level] = 1
	m.Browser.StopFilter()
	m.refreshRows()
	m.syncPager()
	return m.loadCmd(level)
}

func (m *Model) ascend() {
	switch m.Level {
	case LevelCourses:
		m.Store.Courses.ClearSelected()
		m.Level = LevelCareers
	case LevelDeliverables:
		m.Store.Deliverables.ClearSelected()
		m.Level = LevelCourses
	case LevelTasks:
		m.Level = LevelDeliverables
	case LevelSessions:
		m.Level = m.returnLevel
	default:
		return
	}
	m.Browser.StopFilter()
	m.refreshRows()
	m.syncPager()
}

func (m *Model) toggleSessions() tea.Cmd {
	if m.Level == LevelSessions {
		m.Level = m.returnLevel
		m.refreshRows()
		m.syncPager()
		return nil
	}
	m.returnLevel = m.Level
	m.Level = LevelSessions
	m.pages[LevelSessions] = 1
	m.Browser.StopFilter()
	m.refreshRows()
	m.syncPager()
	return m.loadCmd(LevelSessions)
}

func (m *Model) changePage(delta int) tea.Cmd {
	total := m.totalPagesFor(m.Level)
	page := m.pages[m.Level] + delta
	if page < 1 || page > max(total, 1) {
		return nil
	}
	m.pages[m.Level] = page
	m.syncPager()
	return m.loadCmd(m.Level)
}

// loadCmd builds the load command for a level at its current page.
func (m *Model) loadCmd(level Level) tea.Cmd {
	page := m.pages[level]
	switch level {
	case LevelCareers:
		return LoadCareersCmd(m.Careers, m.Auth.User().ID, page)
	case LevelCourses:
		career, ok := m.Store.Careers.Selected()
		if !ok {
			return nil
		}
		return LoadCoursesCmd(m.Courses, career.ID, page)
	case LevelDeliverables:
		course, ok := m.Store.Courses.Selected()
		if !ok {
			return nil
		}
		return LoadDeliverablesCmd(m.Deliverables, course.ID, page)
	case LevelTasks:
		deliverable, ok := m.Store.Deliverables.Selected()
		if !ok {
			return nil
		}
		return LoadTasksCmd(m.Tasks, deliverable.ID, page)
	case LevelSessions:
		return LoadSessionsCmd(m.Sessions, m.Auth.User().ID, page)
	}
	return nil
}

func (m *Model) openCreate() tea.Cmd {
	switch m.Level {
	case LevelCareers:
		// Careers are joined from the catalog, not created
		m.Picker.Show()
		return tea.Batch(LoadCatalogCmd(m.Careers), textinput.Blink)
	case LevelCourses:
		m.Dialog = components.NewCourseForm()
	case LevelDeliverables:
		m.Dialog = components.NewDeliverableForm()
	case LevelTasks:
		m.Dialog = components.NewTaskForm()
	case LevelSessions:
		m.Dialog = components.NewSessionForm()
	}
	m.DialogLevel = m.Level
	m.EditID = ""
	return textinput.Blink
}

func (m *Model) openEdit() {
	row, ok := m.Browser.CursorRow()
	if !ok {
		m.noSelection = true
		return
	}

	switch m.Level {
	case LevelCareers:
		// Careers carry no editable fields on the client
		return
	case LevelCourses:
		course, ok := findByID(m.Store.Courses.Items(), row.ID, func(c domain.Course) string { return c.ID })
		if !ok {
			m.noSelection = true
			return
		}
		m.Dialog = components.NewEditCourseForm(course)
	case LevelDeliverables:
		deliverable, ok := findByID(m.Store.Deliverables.Items(), row.ID, func(d domain.Deliverable) string { return d.ID })
		if !ok {
			m.noSelection = true
			return
		}
		m.Dialog = components.NewEditDeliverableForm(deliverable)
	case LevelTasks:
		task, ok := findByID(m.Store.Tasks.Items(), row.ID, func(t domain.Task) string { return t.ID })
		if !ok {
			m.noSelection = true
			return
		}
		m.Dialog = components.NewEditTaskForm(task)
	case LevelSessions:
		sess, ok := findByID(m.Store.Sessions.Items(), row.ID, func(s domain.StudySession) string { return s.ID })
		if !ok {
			m.noSelection = true
			return
		}
		m.Dialog = components.NewEditSessionForm(sess)
	}

	m.DialogLevel = m.Level
	m.EditID = row.ID
}

func (m *Model) askDelete() {
	row, ok := m.Browser.CursorRow()
	if !ok {
		m.noSelection = true
		return
	}

	m.deleteLevel = m.Level
	m.deleteID = row.ID

	if m.Level == LevelCareers {
		m.Confirm.Show("Abandonar carrera", fmt.Sprintf("¿Seguro que quieres abandonar %q?", row.Title))
		return
	}
	m.Confirm.Show("Eliminar registro", fmt.Sprintf("¿Seguro que quieres eliminar %q?", row.Title))
}

func (m *Model) deleteCmd() tea.Cmd {
	switch m.deleteLevel {
	case LevelCareers:
		return LeaveCareerCmd(m.Careers, m.deleteID, m.Auth.User().ID)
	case LevelCourses:
		return DeleteCourseCmd(m.Courses, m.deleteID)
	case LevelDeliverables:
		return DeleteDeliverableCmd(m.Deliverables, m.deleteID)
	case LevelTasks:
		return DeleteTaskCmd(m.Tasks, m.deleteID)
	case LevelSessions:
		return DeleteSessionCmd(m.Sessions, m.deleteID)
	}
	return nil
}

// submitDialog validates the active dialog and, when clean, issues the
// create or update command. Validation failures leave the dialog open with
// its field messages set.
func (m *Model) submitDialog() tea.Cmd {
	switch m.DialogLevel {
	case LevelCourses:
		career, ok := m.Store.Careers.Selected()
		if !ok {
			m.Dialog = nil
			return nil
		}
		payload, err := components.CoursePayloadFromForm(m.Dialog, career.ID)
		if err != nil {
			return nil
		}
		m.Dialog.SetSubmitting(true)
		if m.EditID != "" {
			return UpdateCourseCmd(m.Courses, m.EditID, payload)
		}
		return CreateCourseCmd(m.Courses, payload)

	case LevelDeliverables:
		course, ok := m.Store.Courses.Selected()
		if !ok {
			m.Dialog = nil
			return nil
		}
		payload, err := components.DeliverablePayloadFromForm(m.Dialog, course.ID)
		if err != nil {
			return nil
		}
		m.Dialog.SetSubmitting(true)
		if m.EditID != "" {
			return UpdateDeliverableCmd(m.Deliverables, m.EditID, payload)
		}
		return CreateDeliverableCmd(m.Deliverables, payload)

	case LevelTasks:
		deliverable, ok := m.Store.Deliverables.Selected()
		if !ok {
			m.Dialog = nil
			return nil
		}
		payload, err := components.TaskPayloadFromForm(m.Dialog, deliverable.ID)
		if err != nil {
			return nil
		}
		m.Dialog.SetSubmitting(true)
		if m.EditID != "" {
			return UpdateTaskCmd(m.Tasks, m.EditID, payload)
		}
		return CreateTaskCmd(m.Tasks, payload)

	case LevelSessions:
		payload, err := components.SessionPayloadFromForm(m.Dialog)
		if err != nil {
			return nil
		}
		m.Dialog.SetSubmitting(true)
		if m.EditID != "" {
			return UpdateSessionCmd(m.Sessions, m.EditID, payload)
		}
		return CreateSessionCmd(m.Sessions, payload)
	}

	return nil
}

// collectEntries flattens every loaded slice into search entries.
func (m *Model) collectEntries() []search.Entry {
	var entries []search.Entry
	for _, c := range m.Store.Careers.Items() {
		entries = append(entries, search.Entry{Kind: "carrera", ID: c.ID, Title: c.Name})
	}
	for _, c := range m.Store.Courses.Items() {
		entries = append(entries, search.Entry{Kind: "curso", ID: c.ID, Title: c.Name})
	}
	for _, d := range m.Store.Deliverables.Items() {
		entries = append(entries, search.Entry{Kind: "entregable", ID: d.ID, Title: d.Name})
	}
	for _, t := range m.Store.Tasks.Items() {
		entries = append(entries, search.Entry{Kind: "tarea", ID: t.ID, Title: t.Name})
	}
	for _, s := range m.Store.Sessions.Items() {
		entries = append(entries, search.Entry{Kind: "sesión", ID: s.ID, Title: s.Name})
	}
	return entries
}

// jumpTo moves the browser to the level and row of a search result. Only
// loaded entities appear in the finder, so switching levels is safe.
func (m *Model) jumpTo(entry search.Entry) {
	switch entry.Kind {
	case "carrera":
		m.Level = LevelCareers
	case "curso":
		m.Level = LevelCourses
	case "entregable":
		m.Level = LevelDeliverables
	case "tarea":
		m.Level = LevelTasks
	case "sesión":
		m.Level = LevelSessions
	default:
		return
	}
	m.Browser.StopFilter()
	m.refreshRows()
	m.syncPager()
	m.Browser.SelectID(entry.ID)
}

// refreshRows rebuilds the browser rows for the current level from the
// store. Deliverables render as multi-line cards.
func (m *Model) refreshRows() {
	var rows []components.Row

	switch m.Level {
	case LevelCareers:
		for _, c := range m.Store.Careers.Items() {
			rows = append(rows, components.Row{ID: c.ID, Title: c.Name})
		}

	case LevelCourses:
		for _, c := range m.Store.Courses.Items() {
			rows = append(rows, components.Row{ID: c.ID, Title: c.Name})
		}

	case LevelDeliverables:
		now := time.Now()
		for _, d := range m.Store.Deliverables.Items() {
			label := d.DeliveryLabel(now)
			style := styles.WarnStyle
			switch {
			case d.Status == domain.DeliverableSent:
				style = styles.SuccessStyle
			case d.Overdue(now):
				style = styles.ErrorStyle
			}
			rows = append(rows, components.Row{
				ID:    d.ID,
				Title: d.Name,
				Lines: []string{
					styles.SubtitleStyle.Render(d.Description),
					"Estado: " + string(d.Status) + " · " + style.Render(label),
					styles.DimStyle.Render(fmt.Sprintf("Calificación: %.1f · Porcentaje: %.0f%%", d.Note, d.Percent)),
				},
			})
		}

	case LevelTasks:
		for _, t := range m.Store.Tasks.Items() {
			marker := "○ "
			if t.Status == domain.TaskCompleted {
				marker = styles.SuccessStyle.Render("✓ ")
			}
			rows = append(rows, components.Row{
				ID:    t.ID,
				Title: marker + t.Name,
				Lines: []string{styles.SubtitleStyle.Render(t.Description)},
			})
		}

	case LevelSessions:
		for _, s := range m.Store.Sessions.Items() {
			style := styles.InfoStyle
			if s.Type == domain.SessionResting {
				style = styles.SuccessStyle
			}
			rows = append(rows, components.Row{
				ID:    s.ID,
				Title: s.Name,
				Lines: []string{style.Render(string(s.Type)) + styles.DimStyle.Render(fmt.Sprintf(" · %d min", s.Duration))},
			})
		}
	}

	m.Browser.SetRows(rows)
}

func (m *Model) syncPager() {
	total := max(m.totalPagesFor(m.Level), 1)
	m.Pager.TotalPages = total
	m.Pager.Page = min(max(m.pages[m.Level]-1, 0), total-1)
}

func (m *Model) totalPagesFor(level Level) int {
	switch level {
	case LevelCareers:
		return m.Store.Careers.TotalPages()
	case LevelCourses:
		return m.Store.Courses.TotalPages()
	case LevelDeliverables:
		return m.Store.Deliverables.TotalPages()
	case LevelTasks:
		return m.Store.Tasks.TotalPages()
	case LevelSessions:
		return m.Store.Sessions.TotalPages()
	}
	return 0
}

func (m *Model) levelLoading() bool {
	switch m.Level {
	case LevelCareers:
		return m.Store.Careers.Loading()
	case LevelCourses:
		return m.Store.Courses.Loading()
	case LevelDeliverables:
		return m.Store.Deliverables.Loading()
	case LevelTasks:
		return m.Store.Tasks.Loading()
	case LevelSessions:
		return m.Store.Sessions.Loading()
	}
	return false
}

func (m *Model) levelErr() string {
	switch m.Level {
	case LevelCareers:
		return m.Store.Careers.Err()
	case LevelCourses:
		return m.Store.Courses.Err()
	case LevelDeliverables:
		return m.Store.Deliverables.Err()
	case LevelTasks:
		return m.Store.Tasks.Err()
	case LevelSessions:
		return m.Store.Sessions.Err()
	}
	return ""
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusTimeout)
}

func findByID[T any](items []T, id string, keyOf func(T) string) (T, bool) {
	for _, item := range items {
		if keyOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
