package main

import (
	"fmt"
	"os"

	"github.com/mcdonaldj/bls/internal/cli"
	"github.com/mcdonaldj/bls/internal/tui"
)

// version is set via ldflags at build time: -ldflags "-X main.version=x.y.z"
var version = "dev"

func main() {
	// Handle TUI mode (ui/tui command)
	if len(os.Args) >= 2 && (os.Args[1] == "ui" || os.Args[1] == "tui") {
		dir := "."
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		if err := tui.Run(dir); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Use CLI for everything else
	c := cli.New(version)
	c.Run()
}
