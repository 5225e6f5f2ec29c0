package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/mazewalk/internal/config"
	"github.com/matzehuels/mazewalk/pkg/pipeline"
)

// mazeOpts holds the flags shared by the maze commands. Flags left unset keep
// the value from the config file or environment.
type mazeOpts struct {
	rows      int
	columns   int
	seed      uint64
	mode      string
	size      int
	delay     time.Duration
	visualize bool
}

func (o *mazeOpts) addDimensionFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.rows, "rows", "r", pipeline.DefaultRows, "number of rows")
	fs.IntVarP(&o.columns, "columns", "c", pipeline.DefaultColumns, "number of columns")
	fs.Uint64VarP(&o.seed, "seed", "s", 0, "random seed (0 picks one and reports it)")
}

func (o *mazeOpts) addSearchFlags(fs *pflag.FlagSet, modeHelp string) {
	fs.StringVarP(&o.mode, "mode", "m", pipeline.DefaultMode, modeHelp)
	fs.BoolVar(&o.visualize, "visualize", true, "show every visited cell, not just the path")
}

// apply overlays the flags the user actually set onto cfg.
func (o *mazeOpts) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	fs := cmd.Flags()
	if fs.Changed("rows") {
		cfg.Rows = o.rows
	}
	if fs.Changed("columns") {
		cfg.Columns = o.columns
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("mode") && o.mode != modeBoth {
		cfg.Mode = o.mode
	}
	if fs.Changed("size") {
		cfg.Size = o.size
	}
	if fs.Changed("delay") {
		cfg.Delay = config.Duration(o.delay)
	}
	if fs.Changed("visualize") {
		cfg.Visualize = o.visualize
	}
	return cfg
}

// options merges cmd's flags into the loaded config, validates the result and
// converts it to pipeline options.
func (c *CLI) options(cmd *cobra.Command, o *mazeOpts) (pipeline.Options, config.Config, error) {
	cfg := o.apply(cmd, c.cfg)
	if err := cfg.Validate(); err != nil {
		return pipeline.Options{}, cfg, err
	}
	opts := cfg.Options()
	opts.Logger = loggerFromContext(cmd.Context())
	return opts, cfg, nil
}
