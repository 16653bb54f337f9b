package booking

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"showtime-cli/model"
)

type StepKind int

const (
	StepMovies StepKind = iota
	StepDetails
	StepTheaters
	StepSeats
	StepConfirmation
)

func (k StepKind) String() string {
	switch k {
	case StepMovies:
		return "movies"
	case StepDetails:
		return "details"
	case StepTheaters:
		return "theaters"
	case StepSeats:
		return "seats"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is one state of the booking wizard. Each variant carries exactly the
// selections its view needs.
type Step interface {
	Kind() StepKind
}

type MoviesStep struct{}

type DetailsStep struct {
	Movie model.Movie
}

type TheatersStep struct {
	Movie model.Movie
	Date  time.Time
}

type SeatsStep struct {
	Movie    model.Movie
	Theater  model.Theater
	Date     time.Time
	Showtime string
	Map      SeatMap
}

type ConfirmationStep struct {
	Booking model.Booking
}

func (MoviesStep) Kind() StepKind       { return StepMovies }
func (DetailsStep) Kind() StepKind      { return StepDetails }
func (TheatersStep) Kind() StepKind     { return StepTheaters }
func (SeatsStep) Kind() StepKind        { return StepSeats }
func (ConfirmationStep) Kind() StepKind { return StepConfirmation }

// Ready reports whether step holds every selection its view renders. Views
// render nothing for a step that is not ready.
func Ready(step Step) bool {
	switch s := step.(type) {
	case MoviesStep:
		return true
	case DetailsStep:
		return s.Movie.Id != ""
	case TheatersStep:
		return s.Movie.Id != ""
	case SeatsStep:
		return s.Movie.Id != "" && s.Theater.Id != "" && s.Showtime != "" && s.Map.Len() > 0
	case ConfirmationStep:
		return s.Booking.Id != "" && s.Booking.Movie.Id != "" && s.Booking.Theater.Id != "" && len(s.Booking.Seats) > 0
	default:
		return false
	}
}

// Wizard owns the current step and every selection made along the way. It is
// not safe for concurrent use; the render surface drives it from one
// goroutine.
type Wizard struct {
	step      Step
	selection Selection
	random    RandomSource
	now       func() time.Time
	ids       idGenerator
	onConfirm func(model.Booking)
}

type Option func(*Wizard)

// WithRandom sets the source used for seat occupancy.
func WithRandom(r RandomSource) Option {
	return func(w *Wizard) {
		if r != nil {
			w.random = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithOnConfirm registers a hook called with every confirmed booking.
func WithOnConfirm(fn func(model.Booking)) Option {
	return func(w *Wizard) {
		w.onConfirm = fn
	}
}

// WithStep starts the wizard at step instead of the catalog.
func WithStep(step Step) Option {
	return func(w *Wizard) {
		if step != nil {
			w.step = step
		}
	}
}

func NewWizard(opts ...Option) *Wizard {
	w := &Wizard{
		step:   MoviesStep{},
		random: NewRandomSource(0, false),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Kind() StepKind {
	return w.step.Kind()
}

// Selection returns a copy of the seats chosen in the current seats step.
func (w *Wizard) Selection() []model.Seat {
	return w.selection.Seats()
}

func (w *Wizard) IsSelected(seatId string) bool {
	return w.selection.Contains(seatId)
}

// Summary prices the current selection.
func (w *Wizard) Summary() Summary {
	return Summarize(w.selection.seats)
}

func (w *Wizard) SelectMovie(movie model.Movie) error {
	if _, ok := w.step.(MoviesStep); !ok {
		return w.invalid("select movie")
	}
	if movie.Id == "" {
		return fmt.Errorf("select movie: %w", ErrIncompleteStep)
	}
	w.transition(DetailsStep{Movie: movie})
	return nil
}

func (w *Wizard) BookTickets() error {
	s, ok := w.step.(DetailsStep)
	if !ok {
		return w.invalid("book tickets")
	}
	if !Ready(s) {
		return fmt.Errorf("book tickets: %w", ErrIncompleteStep)
	}
	w.transition(TheatersStep{Movie: s.Movie, Date: truncateDate(w.now())})
	return nil
}

// SelectDate changes the show date while choosing a theater.
func (w *Wizard) SelectDate(date time.Time) error {
	s, ok := w.step.(TheatersStep)
	if !ok {
		return w.invalid("select date")
	}
	s.Date = truncateDate(date)
	w.step = s
	return nil
}

// SelectShowtime moves to seat selection and generates the seat map for this
// visit.
func (w *Wizard) SelectShowtime(theater model.Theater, showtime string) error {
	s, ok := w.step.(TheatersStep)
	if !ok {
		return w.invalid("select showtime")
	}
	if !Ready(s) || theater.Id == "" {
		return fmt.Errorf("select showtime: %w", ErrIncompleteStep)
	}
	if !theater.HasShowtime(showtime) {
		return fmt.Errorf("select showtime %q at %s: %w", showtime, theater.Name, ErrUnknownShowtime)
	}
	w.selection.Clear()
	w.transition(SeatsStep{
		Movie:    s.Movie,
		Theater:  theater,
		Date:     s.Date,
		Showtime: showtime,
		Map:      GenerateSeatMap(w.random),
	})
	return nil
}

// ToggleSeat flips seatId in the selection and reports whether anything
// changed. Occupied seats and an eleventh seat are silently ignored.
func (w *Wizard) ToggleSeat(seatId string) (bool, error) {
	s, ok := w.step.(SeatsStep)
	if !ok {
		return false, w.invalid("toggle seat")
	}
	seat, found := s.Map.Seat(seatId)
	if !found {
		return false, fmt.Errorf("toggle seat %q: %w", seatId, ErrUnknownSeat)
	}
	return w.selection.Toggle(seat), nil
}

// ProceedToPayment confirms the selection and builds the booking receipt with
// a freshly generated id.
func (w *Wizard) ProceedToPayment() error {
	s, ok := w.step.(SeatsStep)
	if !ok {
		return w.invalid("proceed to payment")
	}
	if w.selection.Len() == 0 {
		return fmt.Errorf("proceed to payment: %w", ErrEmptySelection)
	}
	now := w.now()
	summary := w.Summary()
	b := model.Booking{
		Id:         w.ids.next(now),
		TicketCode: uuid.NewString(),
		Movie:      s.Movie,
		Theater:    s.Theater,
		Date:       s.Date,
		Showtime:   s.Showtime,
		Seats:      w.selection.Seats(),
		Subtotal:   summary.Subtotal,
		Fee:        summary.Fee(),
		Total:      summary.GrandTotal(),
		Status:     model.StatusConfirmed,
		BookedAt:   now,
	}
	w.transition(ConfirmationStep{Booking: b})
	if w.onConfirm != nil {
		w.onConfirm(b)
	}
	return nil
}

// Back steps one screen backwards. Leaving the seat map discards it along
// with the selection. Confirmation has no way back; use BackToHome.
func (w *Wizard) Back() error {
	switch s := w.step.(type) {
	case DetailsStep:
		w.transition(MoviesStep{})
	case TheatersStep:
		w.transition(DetailsStep{Movie: s.Movie})
	case SeatsStep:
		w.selection.Clear()
		w.transition(TheatersStep{Movie: s.Movie, Date: s.Date})
	default:
		return w.invalid("back")
	}
	return nil
}

// BackToHome ends a confirmed booking and resets every selection.
func (w *Wizard) BackToHome() error {
	if _, ok := w.step.(ConfirmationStep); !ok {
		return w.invalid("back to home")
	}
	w.Reset()
	return nil
}

// Reset returns to the catalog from any step.
func (w *Wizard) Reset() {
	w.selection.Clear()
	w.transition(MoviesStep{})
}

func (w *Wizard) transition(next Step) {
	log.Printf("wizard transition from=%s to=%s", w.step.Kind(), next.Kind())
	w.step = next
}

func (w *Wizard) invalid(action string) error {
	return fmt.Errorf("%s from %s: %w", action, w.step.Kind(), ErrInvalidTransition)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
