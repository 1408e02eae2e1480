package main

import (
	"os"

	"github.com/jt828/perfmon/cmd/perfmon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
