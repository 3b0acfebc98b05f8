// Package main is the entry point for the chain CLI.
package main

import (
	"os"

	"github.com/leeovery/chain/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	os.Exit(app.Run(os.Args))
}
