// Command ndnclient is a thin CLI wrapper over the client-node core: it
// wires a Transport chosen by configuration to an engine.Node and drives
// a handful of everyday operations (run the event loop, fetch one object,
// register a prefix) from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
