package config

import "github.com/urfave/cli/v3"

// Emulator holds camera emulator configuration
type Emulator struct {
	Addr     string
	PhotoDir string
}

// Flags returns CLI flags for emulator configuration
func (c *Emulator) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Emulator listen address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GRFETCH_EMULATOR_ADDR"),
		},
		&cli.StringFlag{
			Name:        "photo-dir",
			Usage:       "Directory served as camera storage; each sub-directory is a photo directory",
			Required:    true,
			Destination: &c.PhotoDir,
			Sources:     cli.EnvVars("GRFETCH_EMULATOR_PHOTO_DIR"),
		},
	}
}
