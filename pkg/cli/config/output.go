package config

import (
	"github.com/m-mizutani/grfetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Output holds local output configuration
type Output struct {
	Dir string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory the downloaded photo is written to",
			Value:       types.DefaultOutputDir,
			Destination: &c.Dir,
			Sources:     cli.EnvVars("GRFETCH_OUTPUT_DIR"),
		},
	}
}
