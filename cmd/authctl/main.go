package main

import (
	"os"

	"MockAuthPortal/internal/cli"
	"MockAuthPortal/internal/logs"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		logs.Error("%v", err)
		os.Exit(1)
	}
}
