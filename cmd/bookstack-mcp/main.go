package main

import (
	"os"

	"github.com/james-choncholas/bookstack-mcp-server/cmd/bookstack-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
