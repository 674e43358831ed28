package main

import (
	"os"

	"github.com/mkerrigan/figgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
