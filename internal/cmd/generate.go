package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/vuemdi/mdigen/internal/gen"
	"github.com/vuemdi/mdigen/internal/gen/format"
)

// Generate runs the full pipeline: clean output trees, scan the asset tree,
// generate icon components, then indexes and demo files.
type Generate struct {
	Source       string `help:"Material Design Icons 4.0 source tree" default:"material-design-icons-4.0.0/src" env:"MDIGEN_SOURCE"`
	OutDir       string `help:"Output root for generated icon components" default:"src" env:"MDIGEN_OUT_DIR"`
	DemoDir      string `help:"Output root for generated demo (playground) files" default:"playground" env:"MDIGEN_DEMO_DIR"`
	Concurrency  int    `help:"Max concurrent icon file jobs" default:"10" env:"MDIGEN_CONCURRENCY"`
	FormatConfig string `help:"Project style configuration file" default:".mdigenrc.json" env:"MDIGEN_FORMAT_CONFIG"`
	Plain        bool   `help:"Disable styled terminal output" env:"MDIGEN_PLAIN"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if g.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	if _, err := os.Stat(g.Source); err != nil {
		return fmt.Errorf("icon source tree not found at %s: %w", g.Source, err)
	}

	formatter, err := format.New(g.FormatConfig)
	if err != nil {
		return err
	}

	logger.Info("Starting icon generation", "source", g.Source, "out", g.OutDir, "demo", g.DemoDir)
	start := time.Now()

	generator := gen.New(os.DirFS(g.Source), g.OutDir, g.DemoDir, formatter, logger)
	generator.SetConcurrency(g.Concurrency)

	spinner, _ := pterm.DefaultSpinner.Start("Generating icon components")
	summary, err := generator.Run(ctx)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Generation failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Generated %d icon components", summary.Total))
	}

	printSummary(summary)
	pterm.Success.Printfln("Done in %.2fs", time.Since(start).Seconds())
	return nil
}

func printSummary(summary *gen.Summary) {
	rows := pterm.TableData{{"Category", "Icons"}}
	for _, category := range gen.Categories {
		rows = append(rows, []string{category, fmt.Sprintf("%d", summary.PerCategory[category])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if len(summary.Duplicates) > 0 {
		pterm.Warning.Printfln("Renamed %d duplicate icon name(s):", len(summary.Duplicates))
		for _, entry := range summary.Duplicates {
			for _, rename := range entry.Renames {
				pterm.Info.Printfln("  %s -> %s (from %s)", entry.Original, rename.RenamedTo, rename.FromCategory)
			}
		}
	}
}
