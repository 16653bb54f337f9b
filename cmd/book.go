package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"showtime-cli/booking"
	"showtime-cli/model"
	"showtime-cli/service"
	"showtime-cli/store"
)

var errCancelled = errors.New("booking cancelled")

func newBookCmd(c *cli) *cobra.Command {
	var download bool
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book tickets with line prompts instead of the full-screen UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.book(cmd.OutOrStdout(), download)
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&download, "download", false, "save the e-ticket without asking")
	return cmd
}

func (c *cli) book(out io.Writer, download bool) error {
	wizard := booking.NewWizard(
		booking.WithRandom(booking.NewRandomSource(c.cfg.SeatSeed, c.cfg.SeedFixed)),
		booking.WithOnConfirm(c.history.Remember),
	)

	movie, err := promptSelectMovie(c.catalog.Movies())
	if err != nil {
		return err
	}
	if err := wizard.SelectMovie(movie); err != nil {
		return err
	}
	renderMovieDetails(out, movie)
	if err := promptConfirm("Book tickets"); err != nil {
		return err
	}
	if err := wizard.BookTickets(); err != nil {
		return err
	}

	date, err := promptSelectDate(c.directory.Dates(time.Now()))
	if err != nil {
		return err
	}
	if err := wizard.SelectDate(date); err != nil {
		return err
	}

	theater, showtime, err := promptSelectShowtime(c.directory.Theaters())
	if err != nil {
		return err
	}
	if err := wizard.SelectShowtime(theater, showtime); err != nil {
		return err
	}

	seats := wizard.Step().(booking.SeatsStep)
	renderSeatMap(out, seats.Map, nil)
	ids, err := promptSeats(seats.Map)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := wizard.ToggleSeat(id); err != nil {
			return err
		}
	}
	renderSelection(out, wizard.Summary())
	if err := promptConfirm("Proceed to payment"); err != nil {
		return err
	}
	if err := wizard.ProceedToPayment(); err != nil {
		return err
	}

	b := wizard.Step().(booking.ConfirmationStep).Booking
	renderConfirmation(out, b)

	if !download {
		if err := promptConfirm("Download ticket"); err != nil {
			if errors.Is(err, errCancelled) {
				return nil
			}
			return err
		}
	}
	files, err := store.ExportTicket(c.cfg.TicketDir, b)
	if err != nil {
		return fmt.Errorf("download ticket: %w", err)
	}
	fmt.Fprintf(out, "Ticket saved to %s\nReceipt saved to %s\n", files.PDF, files.Receipt)
	return nil
}

func promptSelectMovie(movies []model.Movie) (model.Movie, error) {
	titles := make([]string, 0, len(movies))
	for _, movie := range movies {
		titles = append(titles, fmt.Sprintf("%s (★ %.1f • %s)", movie.Title, movie.Rating, movie.Genre))
	}
	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(titles[index]), strings.ToLower(strings.TrimSpace(input)))
	}
	selectMovie := promptui.Select{
		Label:    "Select Movie",
		Items:    titles,
		Size:     10,
		Searcher: searcher,
	}
	index, _, err := selectMovie.Run()
	if err != nil {
		return model.Movie{}, promptError(err)
	}
	return movies[index], nil
}

func promptSelectDate(dates []time.Time) (time.Time, error) {
	now := time.Now()
	labels := make([]string, 0, len(dates))
	for _, date := range dates {
		labels = append(labels, fmt.Sprintf("%s • %s", service.DateLabel(date, now), date.Format("2 Jan")))
	}
	selectDate := promptui.Select{
		Label: "Select Date",
		Items: labels,
	}
	index, _, err := selectDate.Run()
	if err != nil {
		return time.Time{}, promptError(err)
	}
	return dates[index], nil
}

func promptSelectShowtime(theaters []model.Theater) (model.Theater, string, error) {
	type option struct {
		theater  model.Theater
		showtime string
	}
	var options []option
	var labels []string
	for _, theater := range theaters {
		for _, showtime := range theater.Showtimes {
			options = append(options, option{theater: theater, showtime: showtime})
			labels = append(labels, fmt.Sprintf("%s • %s", showtime, theater.Name))
		}
	}
	selectShowtime := promptui.Select{
		Label: "Select Cinema & Showtime",
		Items: labels,
		Size:  10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(labels[index]), strings.ToLower(strings.TrimSpace(input)))
		},
	}
	index, _, err := selectShowtime.Run()
	if err != nil {
		return model.Theater{}, "", promptError(err)
	}
	return options[index].theater, options[index].showtime, nil
}

func promptSeats(seatMap booking.SeatMap) ([]string, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Seats (up to %d, e.g. D5 D6)", booking.MaxSeats),
		Validate: func(input string) error {
			_, err := parseSeatIds(seatMap, input)
			return err
		},
	}
	input, err := prompt.Run()
	if err != nil {
		return nil, promptError(err)
	}
	return parseSeatIds(seatMap, input)
}

// parseSeatIds reads a space or comma separated seat list and checks every
// seat can be booked.
func parseSeatIds(seatMap booking.SeatMap, input string) ([]string, error) {
	fields := strings.FieldsFunc(strings.ToUpper(input), func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, errors.New("please select your seats")
	}
	seen := make(map[string]bool, len(fields))
	ids := make([]string, 0, len(fields))
	for _, id := range fields {
		if seen[id] {
			continue
		}
		seen[id] = true
		seat, ok := seatMap.Seat(id)
		if !ok {
			return nil, fmt.Errorf("seat %s does not exist", id)
		}
		if !seat.Selectable() {
			return nil, fmt.Errorf("seat %s is occupied", id)
		}
		ids = append(ids, id)
	}
	if len(ids) > booking.MaxSeats {
		return nil, fmt.Errorf("you can book up to %d seats", booking.MaxSeats)
	}
	return ids, nil
}

func promptConfirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return promptError(err)
	}
	return nil
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errCancelled
	}
	return err
}

func renderMovieDetails(out io.Writer, movie model.Movie) {
	fmt.Fprintf(out, "\n%s\n★ %.1f/10 (%s votes) • %s • %s", movie.Title, movie.Rating, movie.Votes, movie.Genre, movie.Language)
	if movie.Duration != "" {
		fmt.Fprintf(out, " • %s", movie.Duration)
	}
	if movie.Certification != "" {
		fmt.Fprintf(out, " • %s", movie.Certification)
	}
	fmt.Fprintln(out)
	if len(movie.Formats) > 0 {
		fmt.Fprintf(out, "Formats: %s\n", strings.Join(movie.Formats, ", "))
	}
	for _, paragraph := range movie.Synopsis {
		fmt.Fprintf(out, "\n%s\n", paragraph)
	}
	fmt.Fprintln(out)
}

func renderSelection(out io.Writer, summary booking.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Booking Summary")
	if summary.RegularCount > 0 {
		t.AppendRow(table.Row{fmt.Sprintf("Regular (%d)", summary.RegularCount), store.FormatAmount(summary.RegularAmount)})
	}
	if summary.PremiumCount > 0 {
		t.AppendRow(table.Row{fmt.Sprintf("Premium (%d)", summary.PremiumCount), store.FormatAmount(summary.PremiumAmount)})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Total", store.FormatAmount(summary.Subtotal)})
	t.Render()
}

func renderConfirmation(out io.Writer, b model.Booking) {
	summary := booking.Summarize(b.Seats)
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Booking Confirmed! " + b.Id)
	t.AppendRows([]table.Row{
		{"Movie", b.Movie.Title},
		{"Cinema", b.Theater.Name},
		{"Date", b.Date.Format("Monday, 2 January 2006")},
		{"Time", b.Showtime},
		{"Screen", store.Screen},
		{"Seats", strings.Join(b.SeatIds(), ", ")},
		{"Total Seats", len(b.Seats)},
	})
	t.AppendSeparator()
	if summary.RegularCount > 0 {
		t.AppendRow(table.Row{fmt.Sprintf("Regular Seats (%d)", summary.RegularCount), store.FormatAmount(summary.RegularAmount)})
	}
	if summary.PremiumCount > 0 {
		t.AppendRow(table.Row{fmt.Sprintf("Premium Seats (%d)", summary.PremiumCount), store.FormatAmount(summary.PremiumAmount)})
	}
	t.AppendRow(table.Row{"Convenience Fee", store.FormatAmount(b.Fee)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Total Paid", store.FormatAmount(b.Total)})
	t.Render()
}
