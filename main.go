package main

import (
	"os"

	"github.com/wrenbrowser/toolbarkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
