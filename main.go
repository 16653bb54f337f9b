package main

import (
	"fmt"
	"os"

	"showtime-cli/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := cmd.Execute(cmd.BuildInfo{Version: version, Commit: commit}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
