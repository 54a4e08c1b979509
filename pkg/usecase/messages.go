package usecase

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed)
)

// PrintUnreachable reports a failed connectivity check to the user
func PrintUnreachable(w io.Writer) {
	failureColor.Fprintln(w, "Unable to connect to the camera. Please check your connection and try again.")
}

// PrintTotal reports the number of photos in the listing
func PrintTotal(w io.Writer, total int) {
	fmt.Fprintf(w, "Total number of images on %s: %d\n", types.CameraName, total)
}
