package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/stockroom/internal/core/manifest"
	"github.com/colonyops/stockroom/internal/core/styles"
	"github.com/colonyops/stockroom/internal/stock"
	"github.com/colonyops/stockroom/pkg/iojson"
)

type RunCmd struct {
	flags *Flags

	// flags
	days         int64
	manifestPath string
	jsonOutput   bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Age the inventory day by day and print a report",
		UsageText: "stockroom run [--days N] [--manifest FILE] [--json]",
		Description: `Loads the starting inventory from a YAML manifest and advances it one
simulated day at a time, printing each day's state.

Use --json for machine-readable output: one JSON line per item per day.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "days",
				Aliases:     []string{"n"},
				Usage:       "number of days to simulate",
				Value:       1,
				Destination: &cmd.days,
			},
			&cli.StringFlag{
				Name:        "manifest",
				Aliases:     []string{"m"},
				Usage:       "path to inventory manifest (defaults to config)",
				Destination: &cmd.manifestPath,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", cmd.days)
	}

	path := cmd.manifestPath
	if path == "" {
		path = cmd.flags.Config.Manifest
	}

	m, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	if len(m.Items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No items in manifest\n")
		}
		return nil
	}

	registry := stock.NewRegistry()
	cmd.flags.Config.Apply(registry)
	updater := stock.NewUpdater(m.Build(), registry)

	log.Debug().
		Str("manifest", path).
		Int("items", len(updater.Items())).
		Int("days", int(cmd.days)).
		Msg("starting simulation")

	return cmd.simulate(c.Root().Writer, updater)
}

// simulate runs the tick loop and writes the report to out.
func (cmd *RunCmd) simulate(out io.Writer, updater *stock.Updater) error {
	for day := 1; day <= int(cmd.days); day++ {
		updater.Tick()

		if cmd.jsonOutput {
			for _, it := range updater.Items() {
				line := dayItem{
					Day:        day,
					Name:       it.Name,
					DaysToSell: it.DaysToSell,
					Quality:    it.Quality,
					PastDue:    it.PastDue(),
				}
				if err := iojson.WriteLine(out, line); err != nil {
					return fmt.Errorf("encode item: %w", err)
				}
			}
			continue
		}

		cmd.printDay(out, updater, day)
	}

	return nil
}

func (cmd *RunCmd) printDay(out io.Writer, updater *stock.Updater, day int) {
	_, _ = fmt.Fprintln(out, styles.Render(styles.Header, fmt.Sprintf("Day %d", day)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDAYS\tQUALITY\tSTATUS")

	for _, it := range updater.Items() {
		// Status sits in the last column so its escape codes can't skew
		// tabwriter's column widths.
		status := ""
		if it.PastDue() {
			status = styles.Render(styles.Error, "past due")
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", it.Name, it.DaysToSell, it.Quality, status)
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
}

// dayItem is the JSON output format for stockroom run --json.
type dayItem struct {
	Day        int    `json:"day"`
	Name       string `json:"name"`
	DaysToSell int    `json:"days_to_sell"`
	Quality    int    `json:"quality"`
	PastDue    bool   `json:"past_due"`
}
