package cmd

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"showtime-cli/model"
	"showtime-cli/store"
)

func newHistoryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your bookings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderHistory(cmd.OutOrStdout(), c.history.List())
		},
	}
}

func renderHistory(out io.Writer, bookings []model.Booking) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Booking ID", "Movie", "Theater", "Date", "Time", "Seats", "Total", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 20},
		{Number: 3, WidthMax: 24},
	})
	for _, b := range bookings {
		t.AppendRow(table.Row{
			b.Id,
			b.Movie.Title,
			b.Theater.Name,
			b.Date.Format("2 Jan 2006"),
			b.Showtime,
			strings.Join(b.SeatIds(), ", "),
			store.FormatAmount(b.Total),
			strings.ToUpper(string(b.Status)),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "Bookings", len(bookings)})
	t.Render()
}
