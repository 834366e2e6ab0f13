package main

import (
	"os"

	"github.com/masti01/pcms3/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
