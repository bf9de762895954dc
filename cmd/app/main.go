package main

import (
	"os"

	"github.com/khelan-mehta/cookie/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
