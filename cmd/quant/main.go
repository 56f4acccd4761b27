package main

import (
	"os"

	"github.com/felixzhu97/fintech-project/cmd/quant/commands"
)

// main is the entry point for the quant CLI: go run ./cmd/quant [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
