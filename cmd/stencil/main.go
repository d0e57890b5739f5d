package main

import (
	"os"

	"github.com/stencil-dev/stencil-cli/internal/cli"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(clierrors.ExitCode(err))
	}
}
