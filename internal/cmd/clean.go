package cmd

import (
	"log/slog"

	"github.com/vuemdi/mdigen/internal/gen"
)

// Clean removes the generated icon and demo trees without regenerating.
type Clean struct {
	OutDir  string `help:"Output root for generated icon components" default:"src" env:"MDIGEN_OUT_DIR"`
	DemoDir string `help:"Output root for generated demo (playground) files" default:"playground" env:"MDIGEN_DEMO_DIR"`
}

// Run is called by Kong when the clean command is executed.
func (c *Clean) Run(logger *slog.Logger) error {
	if err := gen.Clean(c.OutDir, c.DemoDir); err != nil {
		return err
	}
	logger.Info("Removed generated output", "out", c.OutDir, "demo", c.DemoDir)
	return nil
}
