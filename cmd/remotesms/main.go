package main

import (
	"os"

	"remotesms/cmd/remotesms/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
