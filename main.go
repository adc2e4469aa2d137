// Idiomatic entrypoint for the Cobra CLI; delegates to the root command in cmd/root.go.
package main

import (
	"github.com/queue-sim/queue-sim/cmd"
)

func main() {
	cmd.Execute()
}
