package main

import (
	"os"

	"github.com/JonMunkholm/csvdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
