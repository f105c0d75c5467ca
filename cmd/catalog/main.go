package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	appcli "github.com/yigit/coursecatalog/internal/cli"
)

func main() {
	app := appcli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Error())
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
