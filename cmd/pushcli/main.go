// pushcli - Pushover notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pushcli

package main

import (
	"os"

	"github.com/ariel-frischer/pushcli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
