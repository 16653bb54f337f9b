package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"showtime-cli/model"
)

func newMoviesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "List movies now showing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderMovies(cmd.OutOrStdout(), c.catalog.Movies())
		},
	}
}

func newTheatersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "theaters",
		Short: "List cinemas with their showtimes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderTheaters(cmd.OutOrStdout(), c.directory.Theaters())
		},
	}
}

func renderMovies(out io.Writer, movies []model.Movie) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Title", "Rating", "Votes", "Genre", "Language", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 24},
	})
	for _, movie := range movies {
		t.AppendRow(table.Row{
			movie.Id,
			movie.Title,
			fmt.Sprintf("%.1f/10", movie.Rating),
			movie.Votes,
			movie.Genre,
			movie.Language,
			movie.Duration,
		})
	}
	t.Render()
}

func renderTheaters(out io.Writer, theaters []model.Theater) {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Theater", "Location", "Distance", "Rating", "Time"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 24},
		{Number: 2, AutoMerge: true},
		{Number: 3, AutoMerge: true},
		{Number: 4, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	facilities := make(map[string]bool)
	for _, theater := range theaters {
		var items []table.Row
		for _, showtime := range theater.Showtimes {
			items = append(items, table.Row{
				theater.Name,
				theater.Location,
				theater.Distance,
				fmt.Sprintf("%.1f", theater.Rating),
				showtime,
			})
		}
		for _, facility := range theater.Facilities {
			facilities[facility] = true
		}
		t.AppendRows(items, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	t.Render()

	names := maps.Keys(facilities)
	sort.Strings(names)
	fmt.Fprintf(out, "Facilities: %s\n", strings.Join(names, ", "))
}
