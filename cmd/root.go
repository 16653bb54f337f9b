package cmd

import (
	"fmt"
	"io"
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"showtime-cli/config"
	"showtime-cli/service"
	"showtime-cli/store"
	"showtime-cli/tui"
)

const appName = "showtime"

// BuildInfo is stamped at link time by the release build.
type BuildInfo struct {
	Version string
	Commit  string
}

type cli struct {
	build   BuildInfo
	envFile string
	seed    string
	cfg     config.Config
	closeFn func()

	catalog   *service.Catalog
	directory *service.Directory
	history   *store.History
}

// Execute runs the command line and returns the first error any command
// produced.
func Execute(build BuildInfo) error {
	return newRootCmd(build).Execute()
}

func newRootCmd(build BuildInfo) *cobra.Command {
	c := &cli{
		build:     build,
		catalog:   service.NewCatalog(nil),
		directory: service.NewDirectory(nil),
		history:   store.NewHistory(nil),
	}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Book movie tickets from the terminal",
		Long:          `Browse movies, pick a cinema and showtime, choose your seats and get an e-ticket, all from the terminal :)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			program := tea.NewProgram(tui.New(c.cfg, tui.Options{
				Catalog:   c.catalog,
				Directory: c.directory,
				History:   c.history,
			}), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "load settings from this .env file")
	root.PersistentFlags().StringVar(&c.seed, "seed", "", "fixed seat layout seed (overrides SHOWTIME_SEAT_SEED)")

	root.AddCommand(
		newMoviesCmd(c),
		newTheatersCmd(c),
		newSeatsCmd(c),
		newHistoryCmd(c),
		newBookCmd(c),
		newVersionCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	var envFiles []string
	if c.envFile != "" {
		envFiles = append(envFiles, c.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if c.seed != "" {
		seed, err := strconv.ParseUint(c.seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --seed %q: %w", c.seed, err)
		}
		cfg.SeatSeed = seed
		cfg.SeedFixed = true
	}
	c.cfg = cfg

	closeFn, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	c.closeFn = closeFn
	return nil
}

func (c *cli) close() {
	if c.closeFn != nil {
		c.closeFn()
		c.closeFn = nil
	}
}

// setupLogging sends the standard logger to path, or discards it when no
// path is configured. The TUI owns the terminal so logs never go to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, appName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s", appName, c.build.Version)
			if c.build.Commit != "none" && c.build.Commit != "" {
				fmt.Fprintf(out, " (%s)", c.build.Commit)
			}
			fmt.Fprintln(out)
		},
	}
}
