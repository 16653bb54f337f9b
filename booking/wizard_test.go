package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"showtime-cli/model"
)

var (
	testMovie   = model.Movie{Id: "1", Title: "Inception Dreams", Rating: 8.9}
	testTheater = model.Theater{
		Id:        "1",
		Name:      "PVR Cinemas - Phoenix MarketCity",
		Showtimes: []string{"10:00 AM", "8:30 PM"},
	}
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestWizard(t *testing.T, opts ...Option) (*Wizard, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 8, 14, 18, 30, 0, 0, time.UTC)}
	base := []Option{WithRandom(noOccupancy()), WithClock(clock.Now)}
	return NewWizard(append(base, opts...)...), clock
}

func walkToSeats(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SelectMovie(testMovie))
	require.NoError(t, w.BookTickets())
	require.NoError(t, w.SelectShowtime(testTheater, "8:30 PM"))
	require.Equal(t, StepSeats, w.Kind())
}

func TestWizard_StartsAtMovies(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepMovies, w.Kind())
	assert.True(t, Ready(w.Step()))
}

func TestWizard_FullFlow(t *testing.T) {
	var confirmed []model.Booking
	w, clock := newTestWizard(t, WithOnConfirm(func(b model.Booking) {
		confirmed = append(confirmed, b)
	}))

	require.NoError(t, w.SelectMovie(testMovie))
	details, ok := w.Step().(DetailsStep)
	require.True(t, ok)
	assert.Equal(t, testMovie, details.Movie)

	require.NoError(t, w.BookTickets())
	theaters, ok := w.Step().(TheatersStep)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC), theaters.Date)

	tomorrow := clock.now.AddDate(0, 0, 1)
	require.NoError(t, w.SelectDate(tomorrow))
	require.NoError(t, w.SelectShowtime(testTheater, "8:30 PM"))
	seats, ok := w.Step().(SeatsStep)
	require.True(t, ok)
	assert.Equal(t, testTheater, seats.Theater)
	assert.Equal(t, "8:30 PM", seats.Showtime)
	assert.Equal(t, 15, seats.Date.Day())
	assert.Equal(t, Rows*Columns, seats.Map.Len())

	changed, err := w.ToggleSeat("D5")
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = w.ToggleSeat("A1")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 550, w.Summary().Subtotal)

	require.NoError(t, w.ProceedToPayment())
	confirmation, ok := w.Step().(ConfirmationStep)
	require.True(t, ok)
	b := confirmation.Booking
	assert.Equal(t, "BMS1755196200000", b.Id)
	assert.NotEmpty(t, b.TicketCode)
	assert.Equal(t, []string{"D5", "A1"}, b.SeatIds())
	assert.Equal(t, 550, b.Subtotal)
	assert.Equal(t, 30, b.Fee)
	assert.Equal(t, 580, b.Total)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	assert.True(t, Ready(confirmation))
	require.Len(t, confirmed, 1)
	assert.Equal(t, b, confirmed[0])
}

func TestWizard_BackToHomeResetsEverything(t *testing.T) {
	w, _ := newTestWizard(t)
	walkToSeats(t, w)
	_, _ = w.ToggleSeat("B3")
	require.NoError(t, w.ProceedToPayment())

	require.NoError(t, w.BackToHome())
	assert.Equal(t, StepMovies, w.Kind())
	assert.Empty(t, w.Selection())
	assert.Zero(t, w.Summary().Subtotal)
	assert.Equal(t, MoviesStep{}, w.Step())
}

func TestWizard_FreshIdPerBooking(t *testing.T) {
	w, clock := newTestWizard(t)

	var ids []string
	for i := 0; i < 3; i++ {
		walkToSeats(t, w)
		_, err := w.ToggleSeat("C7")
		require.NoError(t, err)
		require.NoError(t, w.ProceedToPayment())
		ids = append(ids, w.Step().(ConfirmationStep).Booking.Id)
		require.NoError(t, w.BackToHome())
		if i == 0 {
			clock.now = clock.now.Add(time.Second)
		}
	}

	assert.Equal(t, "BMS1755196200000", ids[0])
	assert.Equal(t, "BMS1755196201000", ids[1])
	// Clock did not move: the id is still unique.
	assert.Equal(t, "BMS1755196201001", ids[2])
}

func TestWizard_BackTransitions(t *testing.T) {
	w, _ := newTestWizard(t)
	walkToSeats(t, w)
	_, _ = w.ToggleSeat("A1")

	require.NoError(t, w.Back())
	theaters, ok := w.Step().(TheatersStep)
	require.True(t, ok)
	assert.Equal(t, testMovie, theaters.Movie)
	assert.Empty(t, w.Selection())

	require.NoError(t, w.Back())
	assert.Equal(t, DetailsStep{Movie: testMovie}, w.Step())

	require.NoError(t, w.Back())
	assert.Equal(t, MoviesStep{}, w.Step())

	err := w.Back()
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestWizard_ReenteringSeatsGeneratesNewMap(t *testing.T) {
	w := NewWizard(WithRandom(NewRandomSource(3, true)))
	require.NoError(t, w.SelectMovie(testMovie))
	require.NoError(t, w.BookTickets())

	require.NoError(t, w.SelectShowtime(testTheater, "10:00 AM"))
	first := w.Step().(SeatsStep).Map
	require.NoError(t, w.Back())
	require.NoError(t, w.SelectShowtime(testTheater, "10:00 AM"))
	second := w.Step().(SeatsStep).Map

	assert.NotEqual(t, first, second)
}

func TestWizard_InvalidTransitionsLeaveStateUntouched(t *testing.T) {
	w, _ := newTestWizard(t)

	assert.ErrorIs(t, w.BookTickets(), ErrInvalidTransition)
	assert.ErrorIs(t, w.SelectShowtime(testTheater, "10:00 AM"), ErrInvalidTransition)
	assert.ErrorIs(t, w.ProceedToPayment(), ErrInvalidTransition)
	assert.ErrorIs(t, w.BackToHome(), ErrInvalidTransition)
	assert.ErrorIs(t, w.SelectDate(time.Now()), ErrInvalidTransition)
	_, err := w.ToggleSeat("A1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StepMovies, w.Kind())

	require.NoError(t, w.SelectMovie(testMovie))
	assert.ErrorIs(t, w.SelectMovie(testMovie), ErrInvalidTransition)
	assert.Equal(t, StepDetails, w.Kind())
}

func TestWizard_ConfirmationHasNoBack(t *testing.T) {
	w, _ := newTestWizard(t)
	walkToSeats(t, w)
	_, _ = w.ToggleSeat("A1")
	require.NoError(t, w.ProceedToPayment())

	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
	assert.Equal(t, StepConfirmation, w.Kind())
}

func TestWizard_ProceedRequiresSeats(t *testing.T) {
	w, _ := newTestWizard(t)
	walkToSeats(t, w)

	assert.ErrorIs(t, w.ProceedToPayment(), ErrEmptySelection)
	assert.Equal(t, StepSeats, w.Kind())
}

func TestWizard_UnknownShowtimeAndSeat(t *testing.T) {
	w, _ := newTestWizard(t)
	require.NoError(t, w.SelectMovie(testMovie))
	require.NoError(t, w.BookTickets())

	assert.ErrorIs(t, w.SelectShowtime(testTheater, "3:00 AM"), ErrUnknownShowtime)
	assert.Equal(t, StepTheaters, w.Kind())

	require.NoError(t, w.SelectShowtime(testTheater, "10:00 AM"))
	_, err := w.ToggleSeat("K1")
	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestWizard_OccupiedSeatCannotBeSelected(t *testing.T) {
	src := &scriptedSource{values: []float64{0.01}, fallback: 0.99}
	w := NewWizard(WithRandom(src))
	walkToSeats(t, w)

	changed, err := w.ToggleSeat("A1")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, w.IsSelected("A1"))
}

func TestWizard_CapAtTenSeats(t *testing.T) {
	w, _ := newTestWizard(t)
	walkToSeats(t, w)

	for _, id := range []string{"A1", "A2", "A3", "A4", "A5", "D1", "D2", "D3", "D4", "D5"} {
		changed, err := w.ToggleSeat(id)
		require.NoError(t, err)
		require.True(t, changed)
	}
	before := w.Selection()

	changed, err := w.ToggleSeat("J20")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, w.Selection())
}

func TestReady_GuardsIncompleteSteps(t *testing.T) {
	assert.False(t, Ready(DetailsStep{}))
	assert.False(t, Ready(TheatersStep{}))
	assert.False(t, Ready(SeatsStep{Movie: testMovie, Theater: testTheater}))
	assert.False(t, Ready(ConfirmationStep{}))
	assert.True(t, Ready(DetailsStep{Movie: testMovie}))

	w := NewWizard(WithStep(DetailsStep{}))
	assert.Equal(t, StepDetails, w.Kind())
	assert.False(t, Ready(w.Step()))
	assert.ErrorIs(t, w.BookTickets(), ErrIncompleteStep)
}

func TestStepKind_String(t *testing.T) {
	assert.Equal(t, "movies", StepMovies.String())
	assert.Equal(t, "confirmation", StepConfirmation.String())
	assert.Equal(t, "step(9)", StepKind(9).String())
}
