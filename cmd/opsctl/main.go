// Command opsctl is the terminal client for the operations API.
package main

import (
	"os"

	"go-opscentral/cmd/opsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
