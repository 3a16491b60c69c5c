package main

import (
	"os"

	"github.com/adwitiya/lexio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
