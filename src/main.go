package main

import (
	"os"

	"sortdemo/src/cmd"
)

func main() {
	if err := cmd.Main(os.Args); err != nil {
		os.Exit(1)
	}
}
