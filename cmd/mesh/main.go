package main

import (
	"os"

	"github.com/go-mesh/mesh/cmd/mesh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
