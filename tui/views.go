package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"showtime-cli/booking"
	"showtime-cli/model"
	"showtime-cli/service"
	"showtime-cli/store"
)

var (
	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m appModel) detailsView() string {
	s, ok := m.wizard.Step().(booking.DetailsStep)
	if !ok {
		return ""
	}
	movie := s.Movie

	title := lipgloss.NewStyle().Bold(true).Render(movie.Title)
	rating := accentStyle.Render(fmt.Sprintf("★ %.1f/10", movie.Rating)) + labelStyle.Render(fmt.Sprintf("  %s votes", movie.Votes))

	facts := []string{movie.Genre, movie.Language}
	if movie.Duration != "" {
		facts = append(facts, movie.Duration)
	}
	if movie.Certification != "" {
		facts = append(facts, movie.Certification)
	}
	if movie.ReleaseDate != "" {
		facts = append(facts, movie.ReleaseDate)
	}

	lines := []string{title, rating, labelStyle.Render(strings.Join(facts, " • "))}
	if len(movie.Formats) > 0 {
		chips := make([]string, 0, len(movie.Formats))
		chip := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Padding(0, 1)
		for _, format := range movie.Formats {
			chips = append(chips, chip.Render(format))
		}
		lines = append(lines, "", strings.Join(chips, " "))
	}
	if len(movie.Synopsis) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("About the movie"))
		for _, paragraph := range movie.Synopsis {
			lines = append(lines, paragraph)
		}
	}
	lines = append(lines, "", accentStyle.Render("Press enter to book tickets"))

	style := panelStyle
	if m.width > 40 {
		style = style.Width(min(m.width-4, 90))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m appModel) seatsView() string {
	s, ok := m.wizard.Step().(booking.SeatsStep)
	if !ok {
		return ""
	}
	grid := m.renderSeatMap(s.Map)
	summary := m.summaryPanel()
	var body string
	if m.width == 0 || m.width >= lipgloss.Width(grid)+lipgloss.Width(summary)+2 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", summary)
	} else {
		body = grid + "\n" + summary
	}
	if m.flash != "" {
		body += "\n" + flashStyle.Render(m.flash)
	}
	return body
}

func (m appModel) renderSeatMap(seatMap booking.SeatMap) string {
	if seatMap.Len() == 0 {
		return "No seat map data."
	}

	cellWidth := 2
	rowWidth := 1
	seatStyleRegular := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStylePremium := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	seatStyleOccupied := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatStyleSelected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("204"))
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	gridWidth := booking.Columns*(cellWidth+1) - 1
	screenBar := screenBarBlock(gridWidth, "SCREEN THIS WAY")
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	var b strings.Builder
	indent := strings.Repeat(" ", rowWidth+1)
	b.WriteString(indent + screenBorderStyle.Render(screenBar.top) + "\n")
	b.WriteString(indent + screenStyle.Render(screenBar.mid) + "\n")
	b.WriteString(indent + screenBorderStyle.Render(screenBar.bot) + "\n")
	b.WriteString(indent + hint("All eyes this way please!") + "\n\n")

	for r := 0; r < booking.Rows; r++ {
		first, _ := seatMap.At(r, 0)
		label := first.Row
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < booking.Columns; c++ {
			seat, ok := seatMap.At(r, c)
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			text := seatToken(seat)
			if m.showSeatNumbers && seat.Selectable() {
				text = strconv.Itoa(seat.Number)
			}
			rendered := padCell(text, cellWidth)
			switch {
			case m.wizard.IsSelected(seat.Id):
				rendered = seatStyleSelected.Render(rendered)
			case seat.Type == model.SeatOccupied:
				rendered = seatStyleOccupied.Render(rendered)
			case seat.Type == model.SeatPremium:
				rendered = seatStylePremium.Render(rendered)
			default:
				rendered = seatStyleRegular.Render(rendered)
			}
			if r == m.cursorRow && c == m.cursorCol {
				rendered = cursorStyle.Render(rendered)
			}
			b.WriteString(rendered)
			if c < booking.Columns-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	counts := seatMap.Counts()
	legend := fmt.Sprintf("Legend: [] regular %s • [] premium %s • pink selected • XX occupied",
		formatPrice(booking.RegularPrice), formatPrice(booking.PremiumPrice))
	if m.showSeatNumbers {
		legend = "Legend: green regular • gold premium • pink selected • XX occupied"
	}
	available := counts[model.SeatRegular] + counts[model.SeatPremium]
	stats := fmt.Sprintf("Available: %d • Occupied: %d • Total: %d", available, counts[model.SeatOccupied], seatMap.Len())
	if seat, ok := seatMap.At(m.cursorRow, m.cursorCol); ok {
		stats += fmt.Sprintf(" • Cursor: %s (%s)", seat.Id, seat.Type)
	}
	b.WriteString("\n")
	return b.String() + hint(legend) + "\n" + hint(stats)
}

func seatToken(seat model.Seat) string {
	switch seat.Type {
	case model.SeatOccupied:
		return "XX"
	default:
		return "[]"
	}
}

func (m appModel) summaryPanel() string {
	selected := m.wizard.Selection()
	summary := m.wizard.Summary()

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Booking Summary")}
	if len(selected) == 0 {
		lines = append(lines, "", labelStyle.Render("Select up to 10 seats"))
		return panelStyle.Render(strings.Join(lines, "\n"))
	}

	ids := make([]string, 0, len(selected))
	for _, seat := range selected {
		ids = append(ids, seat.Id)
	}
	lines = append(lines, "", labelStyle.Render("Selected Seats"), strings.Join(ids, ", "), "")
	if summary.RegularCount > 0 {
		lines = append(lines, summaryLine(fmt.Sprintf("Regular (%d)", summary.RegularCount), formatPrice(summary.RegularAmount)))
	}
	if summary.PremiumCount > 0 {
		lines = append(lines, summaryLine(fmt.Sprintf("Premium (%d)", summary.PremiumCount), formatPrice(summary.PremiumAmount)))
	}
	lines = append(lines,
		summaryLine("Total", accentStyle.Render(formatPrice(summary.Subtotal))),
		"",
		accentStyle.Render(fmt.Sprintf("p • Proceed to Payment (%d/%d)", summary.Count(), booking.MaxSeats)),
	)
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m appModel) confirmationView() string {
	s, ok := m.wizard.Step().(booking.ConfirmationStep)
	if !ok {
		return ""
	}
	b := s.Booking
	summary := booking.Summarize(b.Seats)

	check := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Render("✓ Booking Confirmed!")
	lines := []string{
		check,
		labelStyle.Render("Your tickets have been booked successfully"),
		"",
		summaryLine("Booking ID", accentStyle.Render(b.Id)),
		"",
		lipgloss.NewStyle().Bold(true).Render(b.Movie.Title),
		labelStyle.Render(fmt.Sprintf("%s • %s", b.Movie.Genre, b.Movie.Language)),
		"",
		summaryLine("Cinema", b.Theater.Name),
		summaryLine("Date", fmt.Sprintf("%s, %s", service.DateLabel(b.Date, m.now()), b.Date.Format("2 January 2006"))),
		summaryLine("Time", b.Showtime),
		summaryLine("Screen", store.Screen),
		summaryLine("Seats", strings.Join(b.SeatIds(), ", ")),
		summaryLine("Total Seats", strconv.Itoa(len(b.Seats))),
		"",
		lipgloss.NewStyle().Bold(true).Render("Payment Summary"),
	}
	if summary.RegularCount > 0 {
		lines = append(lines, summaryLine(fmt.Sprintf("Regular Seats (%d)", summary.RegularCount), formatPrice(summary.RegularAmount)))
	}
	if summary.PremiumCount > 0 {
		lines = append(lines, summaryLine(fmt.Sprintf("Premium Seats (%d)", summary.PremiumCount), formatPrice(summary.PremiumAmount)))
	}
	lines = append(lines,
		summaryLine("Convenience Fee", formatPrice(b.Fee)),
		summaryLine("Total Paid", accentStyle.Render(formatPrice(b.Total))),
		"",
	)

	switch {
	case m.exporting:
		lines = append(lines, m.spinner.View()+" Saving ticket...")
	case m.flash != "":
		lines = append(lines, flashStyle.Render(m.flash))
	}
	lines = append(lines, hint("d download ticket • s share ticket • h back to home"))

	style := panelStyle
	if m.width > 56 {
		style = style.Width(min(m.width-8, 72))
	}
	panel := style.Render(strings.Join(lines, "\n"))
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}

func summaryLine(label string, value string) string {
	return labelStyle.Render(label+": ") + value
}

func formatPrice(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
