package main

import (
	"os"

	"github.com/lexstat/zipfian/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
