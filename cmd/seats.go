package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"showtime-cli/booking"
	"showtime-cli/model"
)

func newSeatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seats",
		Short: "Print a generated seat layout",
		Long:  `Print one randomly generated seat layout. Use --seed or SHOWTIME_SEAT_SEED to get the same layout every time.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			random := booking.NewRandomSource(c.cfg.SeatSeed, c.cfg.SeedFixed)
			renderSeatMap(cmd.OutOrStdout(), booking.GenerateSeatMap(random), nil)
		},
	}
}

// renderSeatMap prints the layout as plain text. Seats in selected are
// marked with "**".
func renderSeatMap(out io.Writer, seatMap booking.SeatMap, selected map[string]bool) {
	fmt.Fprintf(out, "  %s\n", centered("SCREEN THIS WAY", booking.Columns*3-1))
	for _, row := range seatMap.RowLabels() {
		cells := make([]string, 0, booking.Columns)
		for _, seat := range seatMap.Row(row) {
			cells = append(cells, seatGlyph(seat, selected[seat.Id]))
		}
		fmt.Fprintf(out, "%s %s %s\n", row, strings.Join(cells, " "), row)
	}

	counts := seatMap.Counts()
	fmt.Fprintf(out, "\n[] regular %d • <> premium %d • XX occupied • ** selected\n",
		booking.RegularPrice, booking.PremiumPrice)
	fmt.Fprintf(out, "Available: %d • Occupied: %d • Total: %d\n",
		counts[model.SeatRegular]+counts[model.SeatPremium], counts[model.SeatOccupied], seatMap.Len())
}

func seatGlyph(seat model.Seat, selected bool) string {
	switch {
	case selected:
		return "**"
	case seat.Type == model.SeatOccupied:
		return "XX"
	case seat.Type == model.SeatPremium:
		return "<>"
	default:
		return "[]"
	}
}

func centered(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text
}
