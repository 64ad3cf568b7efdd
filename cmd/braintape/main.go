package main

import (
	"os"

	"github.com/agenthands/braintape/cmd/braintape/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
