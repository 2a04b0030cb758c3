package main

import (
	"os"

	"github.com/nxt-gen-cli/nxt-gen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
