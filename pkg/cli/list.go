package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/grfetch/pkg/cli/config"
	"github.com/m-mizutani/grfetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdList(w io.Writer, cameraCfg *config.Camera) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print every photo path on the camera in listing order",
		Action: func(ctx context.Context, c *cli.Command) error {
			photoUC := usecase.NewPhoto(cameraCfg.NewClient(), "")

			if !photoUC.CheckConnection(ctx) {
				usecase.PrintUnreachable(w)
				return nil
			}

			list := photoUC.FetchPhotoList(ctx)
			usecase.PrintTotal(w, list.Len())
			for _, p := range list.Paths {
				fmt.Fprintln(w, p)
			}

			return nil
		},
	}
}
