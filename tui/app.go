package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"showtime-cli/booking"
	"showtime-cli/config"
	"showtime-cli/model"
	"showtime-cli/service"
	"showtime-cli/store"
)

type appState int

const (
	stateMovies appState = iota
	stateDetails
	stateTheaters
	stateSeats
	stateConfirmation
	stateSelectDate
	stateHistory
	stateError
)

// Options overrides the collaborators New would otherwise build from
// defaults.
type Options struct {
	Catalog   *service.Catalog
	Directory *service.Directory
	History   *store.History
	Random    booking.RandomSource
	Now       func() time.Time
	Start     booking.Step
}

type appModel struct {
	cfg       config.Config
	catalog   *service.Catalog
	directory *service.Directory
	history   *store.History
	wizard    *booking.Wizard
	now       func() time.Time

	// overlay is drawn on top of the wizard step when overlaySet is true.
	overlay    appState
	overlaySet bool
	err        error

	width  int
	height int

	movieList   list.Model
	theaterList list.Model
	dateList    list.Model
	historyList list.Model

	cursorRow       int
	cursorCol       int
	showSeatNumbers bool

	spinner   spinner.Model
	exporting bool
	flash     string
}

type errMsg struct {
	err error
}

type ticketExportedMsg struct {
	files store.TicketFiles
	err   error
}

type ticketSharedMsg struct {
	err error
}

func New(cfg config.Config, opts Options) tea.Model {
	if opts.Catalog == nil {
		opts.Catalog = service.NewCatalog(nil)
	}
	if opts.Directory == nil {
		opts.Directory = service.NewDirectory(nil)
	}
	if opts.History == nil {
		opts.History = store.NewHistory(nil)
	}
	if opts.Random == nil {
		opts.Random = booking.NewRandomSource(cfg.SeatSeed, cfg.SeedFixed)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if cfg.Movie != "" {
		if movie, ok := opts.Catalog.Find(cfg.Movie); ok {
			opts.Start = booking.DetailsStep{Movie: movie}
		}
	}

	history := opts.History
	m := appModel{
		cfg:       cfg,
		catalog:   opts.Catalog,
		directory: opts.Directory,
		history:   history,
		now:       opts.Now,
		wizard: booking.NewWizard(
			booking.WithRandom(opts.Random),
			booking.WithClock(opts.Now),
			booking.WithStep(opts.Start),
			booking.WithOnConfirm(history.Remember),
		),
	}

	m.movieList = newList("Now Showing")
	m.theaterList = newList("Select Cinema & Showtime")
	m.dateList = newList("Select Date")
	m.historyList = newList("My Bookings")

	m.movieList.SetItems(buildMovieItems(m.catalog.Movies()))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.enterStep()
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.SetWindowTitle("BookMyShow")
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
		// fallthrough to component update
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.exporting {
			return m, cmd
		}
		return m, nil

	case errMsg:
		log.Printf("tui error state=%d err=%v", m.state(), msg.err)
		m.err = msg.err
		m.setOverlay(stateError)
		return m, nil

	case ticketExportedMsg:
		m.exporting = false
		if msg.err != nil {
			return m, errCmd(fmt.Errorf("download ticket: %w", msg.err))
		}
		m.flash = fmt.Sprintf("Ticket saved to %s", msg.files.PDF)
		return m, nil

	case ticketSharedMsg:
		if msg.err != nil {
			return m, errCmd(fmt.Errorf("share ticket: %w", msg.err))
		}
		m.flash = "Ticket details copied to clipboard"
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state() {
	case stateMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateTheaters:
		m.theaterList, cmd = m.theaterList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case stateHistory:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	if !m.overlaySet && !booking.Ready(m.wizard.Step()) {
		return header
	}
	switch m.state() {
	case stateMovies:
		return header + "\n\n" + m.movieList.View()
	case stateDetails:
		return header + "\n\n" + m.detailsView()
	case stateTheaters:
		return header + "\n\n" + m.theaterList.View()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateSeats:
		return header + "\n\n" + m.seatsView()
	case stateConfirmation:
		return header + "\n\n" + m.confirmationView()
	case stateHistory:
		return header + "\n\n" + m.historyList.View()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

// state is the active overlay, or else the wizard's current step.
func (m appModel) state() appState {
	if m.overlaySet {
		return m.overlay
	}
	switch m.wizard.Kind() {
	case booking.StepDetails:
		return stateDetails
	case booking.StepTheaters:
		return stateTheaters
	case booking.StepSeats:
		return stateSeats
	case booking.StepConfirmation:
		return stateConfirmation
	default:
		return stateMovies
	}
}

func (m *appModel) setOverlay(state appState) {
	m.overlay = state
	m.overlaySet = true
}

func (m *appModel) clearOverlay() {
	m.overlaySet = false
	m.err = nil
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")).Render("BookMyShow")
	sub := []string{"Mumbai"}
	switch s := m.wizard.Step().(type) {
	case booking.DetailsStep:
		sub = append(sub, s.Movie.Title)
	case booking.TheatersStep:
		sub = append(sub, s.Movie.Title, "Date: "+service.DateLabel(s.Date, m.now()))
	case booking.SeatsStep:
		sub = append(sub, s.Movie.Title, s.Theater.Name, service.DateLabel(s.Date, m.now())+" "+s.Showtime)
	case booking.ConfirmationStep:
		sub = append(sub, "Booking "+s.Booking.Id)
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • type to filter • enter book now • ctrl+b my bookings"
	switch m.state() {
	case stateDetails:
		hints = "ctrl+c quit • esc back • enter book tickets • ctrl+b my bookings"
	case stateTheaters:
		hints = "ctrl+c quit • esc back • type to filter • ctrl+d pick date • enter select showtime"
	case stateSelectDate:
		hints = "ctrl+c quit • esc back • enter select date"
	case stateSeats:
		hints = "ctrl+c quit • esc back • arrows/hjkl move • space select • p proceed to payment • n toggle numbers"
	case stateConfirmation:
		hints = "ctrl+c quit • d download ticket • s share ticket • h back to home • ctrl+b my bookings"
	case stateHistory:
		hints = "ctrl+c quit • esc back • type to filter"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	state := m.state()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if state != stateSeats {
			return m, tea.Quit, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		m.goBack()
		return m, nil, true
	case "ctrl+b":
		if state != stateHistory && state != stateError {
			m.openHistory()
			return m, nil, true
		}
	case "ctrl+d":
		if state == stateTheaters {
			m.openDatePicker()
			return m, nil, true
		}
	}

	switch state {
	case stateSeats:
		return m.handleSeatKey(msg)
	case stateConfirmation:
		return m.handleConfirmationKey(msg)
	}

	if msg.Type != tea.KeyEnter {
		return m, nil, false
	}
	switch state {
	case stateMovies:
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		m.apply(m.wizard.SelectMovie(item.movie))
	case stateDetails:
		m.apply(m.wizard.BookTickets())
	case stateTheaters:
		item, ok := m.theaterList.SelectedItem().(showtimeItem)
		if !ok {
			return m, nil, true
		}
		m.apply(m.wizard.SelectShowtime(item.theater, item.showtime))
	case stateSelectDate:
		item, ok := m.dateList.SelectedItem().(dateItem)
		if !ok {
			return m, nil, true
		}
		m.clearOverlay()
		m.apply(m.wizard.SelectDate(item.date))
	}
	return m, nil, true
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ", "enter", "x":
		m.toggleSeatAtCursor()
	case "n":
		m.showSeatNumbers = !m.showSeatNumbers
	case "p":
		err := m.wizard.ProceedToPayment()
		if errors.Is(err, booking.ErrEmptySelection) {
			m.flash = "Please select your seats"
			return m, nil, true
		}
		m.apply(err)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m appModel) handleConfirmationKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	s, ok := m.wizard.Step().(booking.ConfirmationStep)
	if !ok {
		return m, nil, false
	}
	switch msg.String() {
	case "h", "enter":
		m.apply(m.wizard.BackToHome())
	case "d":
		if m.exporting {
			return m, nil, true
		}
		m.exporting = true
		m.flash = ""
		return m, tea.Batch(m.exportTicketCmd(s.Booking), m.spinner.Tick), true
	case "s":
		m.flash = ""
		return m, shareTicketCmd(s.Booking), true
	default:
		return m, nil, false
	}
	return m, nil, true
}

// apply settles the view after a wizard transition. Rejected transitions are
// ignored; the wizard state is unchanged in that case.
func (m *appModel) apply(err error) {
	if err != nil {
		log.Printf("tui ignored action step=%s err=%v", m.wizard.Kind(), err)
		return
	}
	m.enterStep()
}

// enterStep prepares lists and cursor for the wizard's current step.
func (m *appModel) enterStep() {
	m.flash = ""
	switch s := m.wizard.Step().(type) {
	case booking.MoviesStep:
		m.movieList.ResetFilter()
	case booking.TheatersStep:
		m.theaterList.Title = fmt.Sprintf("%s • %s", s.Movie.Title, service.DateLabel(s.Date, m.now()))
		m.theaterList.SetItems(buildShowtimeItems(m.directory.Theaters()))
	case booking.SeatsStep:
		m.cursorRow, m.cursorCol = 0, 0
	}
}

func (m *appModel) goBack() {
	if m.overlaySet {
		m.clearOverlay()
		return
	}
	if m.wizard.Kind() == booking.StepConfirmation {
		return
	}
	m.apply(m.wizard.Back())
}

func (m *appModel) openDatePicker() {
	s, ok := m.wizard.Step().(booking.TheatersStep)
	if !ok {
		return
	}
	dates := m.directory.Dates(m.now())
	m.dateList.SetItems(buildDateItems(dates, m.now()))
	for i, date := range dates {
		if date.Equal(s.Date) {
			m.dateList.Select(i)
		}
	}
	m.setOverlay(stateSelectDate)
}

func (m *appModel) openHistory() {
	m.historyList.SetItems(buildHistoryItems(m.history.List()))
	m.historyList.Select(0)
	m.setOverlay(stateHistory)
}

func (m *appModel) moveCursor(dRow int, dCol int) {
	m.cursorRow = clamp(m.cursorRow+dRow, 0, booking.Rows-1)
	m.cursorCol = clamp(m.cursorCol+dCol, 0, booking.Columns-1)
}

func (m *appModel) toggleSeatAtCursor() {
	s, ok := m.wizard.Step().(booking.SeatsStep)
	if !ok {
		return
	}
	seat, ok := s.Map.At(m.cursorRow, m.cursorCol)
	if !ok {
		return
	}
	m.flash = ""
	changed, err := m.wizard.ToggleSeat(seat.Id)
	if err != nil || changed {
		return
	}
	switch {
	case !seat.Selectable():
		m.flash = fmt.Sprintf("Seat %s is occupied", seat.Id)
	case len(m.wizard.Selection()) >= booking.MaxSeats:
		m.flash = fmt.Sprintf("You can book up to %d seats", booking.MaxSeats)
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state() {
	case stateMovies:
		return &m.movieList
	case stateTheaters:
		return &m.theaterList
	case stateHistory:
		return &m.historyList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.theaterList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
	m.historyList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) exportTicketCmd(b model.Booking) tea.Cmd {
	dir := m.cfg.TicketDir
	return func() tea.Msg {
		files, err := store.ExportTicket(dir, b)
		return ticketExportedMsg{files: files, err: err}
	}
}

func shareTicketCmd(b model.Booking) tea.Cmd {
	return func() tea.Msg {
		return ticketSharedMsg{err: clipboard.WriteAll(store.TicketText(b))}
	}
}

func clamp(v int, lo int, hi int) int {
	return max(lo, min(v, hi))
}
