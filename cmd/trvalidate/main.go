package main

import (
	"os"

	"github.com/dmitrymomot/trvalidator/cmd/trvalidate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
