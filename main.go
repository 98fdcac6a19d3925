package main

import (
	"drivesync/cmd"
	"os"
)

func main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "sync")
	}
	cmd.Execute()
}
