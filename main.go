package main

import (
	"os"

	"github.com/langlint/langlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
