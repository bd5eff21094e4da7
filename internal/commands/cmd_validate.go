package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stockroom/internal/core/manifest"
	"github.com/colonyops/stockroom/internal/core/styles"
	"github.com/colonyops/stockroom/internal/stock"
)

type ValidateCmd struct {
	flags *Flags

	// flags
	manifestPath string
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate config and inventory manifest",
		UsageText: "stockroom validate [--manifest FILE]",
		Description: `Checks that the config file and inventory manifest parse and are
structurally sound. Warns about quality values outside the normal bounds
on items whose category enforces them.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "manifest",
				Aliases:     []string{"m"},
				Usage:       "path to inventory manifest (defaults to config)",
				Destination: &cmd.manifestPath,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	// Config was already loaded and validated in the Before hook; getting
	// here means it passed.
	bindings := 0
	for _, names := range cmd.flags.Config.Categories {
		bindings += len(names)
	}
	_, _ = fmt.Fprintln(out, styles.Render(styles.Success, fmt.Sprintf("config: OK (%d extra binding(s))", bindings)))

	path := cmd.manifestPath
	if path == "" {
		path = cmd.flags.Config.Manifest
	}

	m, err := manifest.Load(path)
	if err != nil {
		_, _ = fmt.Fprintln(out, styles.Render(styles.Error, fmt.Sprintf("manifest: %v", err)))
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintln(out, styles.Render(styles.Success, fmt.Sprintf("manifest: OK (%d item(s))", len(m.Items))))

	registry := stock.NewRegistry()
	cmd.flags.Config.Apply(registry)

	for _, it := range m.Items {
		kind, _ := stock.KindOf(registry.Resolve(it.Name))
		if kind == stock.KindLegendary {
			// Legendary items are exempt from the quality bounds.
			continue
		}
		if it.Quality < stock.MinQuality || it.Quality > stock.MaxQuality {
			warn := fmt.Sprintf("warning: %q starts with quality %d, outside [%d, %d]; it will be clamped on the first day",
				it.Name, it.Quality, stock.MinQuality, stock.MaxQuality)
			_, _ = fmt.Fprintln(out, styles.Render(styles.Warning, warn))
		}
	}

	return nil
}
