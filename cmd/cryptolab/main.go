package main

import (
	"os"

	"github.com/cryptolab/go-cryptolab/cmd/cryptolab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
