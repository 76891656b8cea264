package main

import (
	"os"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
