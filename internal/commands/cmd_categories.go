package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stockroom/internal/core/styles"
	"github.com/colonyops/stockroom/internal/stock"
	"github.com/colonyops/stockroom/pkg/iojson"
)

type CategoriesCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewCategoriesCmd creates a new categories command
func NewCategoriesCmd(flags *Flags) *CategoriesCmd {
	return &CategoriesCmd{flags: flags}
}

// Register adds the categories command to the application
func (cmd *CategoriesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "categories",
		Usage:     "List item name to category bindings",
		UsageText: "stockroom categories [--json]",
		Description: `Displays the active name bindings: the built-in ones plus any added
through the config file. Item names without a binding age as generic goods.`,
		Flags: []cli.Flag{
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

func (cmd *CategoriesCmd) run(ctx context.Context, c *cli.Command) error {
	registry := stock.NewRegistry()
	cmd.flags.Config.Apply(registry)

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, name := range registry.Names() {
			info := bindingInfo{Name: name, Category: categoryName(registry, name)}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode binding: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCATEGORY")

	for _, name := range registry.Names() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, categoryName(registry, name))
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(out, styles.Render(styles.Muted, "Unlisted names age as generic goods"))

	return nil
}

func categoryName(registry *stock.Registry, name string) string {
	kind, ok := stock.KindOf(registry.Resolve(name))
	if !ok {
		// Strategies registered through the API rather than config.
		return "custom"
	}
	return string(kind)
}

// bindingInfo is the JSON output format for stockroom categories --json.
type bindingInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
