package main

import (
	"fmt"
	"os"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
)

func main() {
	if err := app.RunLookup(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "lookup failed: %v\n", err)
		os.Exit(1)
	}
}
