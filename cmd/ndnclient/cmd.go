package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd mirrors the corpus's cobra root command layout (cmd/cmd.go):
// one persistent flag shared by every subcommand, groups for readability.
var rootCmd = &cobra.Command{
	Use:   "ndnclient",
	Short: "NDN client-node core",
	Long: `ndnclient talks to a local NDN forwarder over Unix, TCP or
WebSocket, expressing and answering Interests through the client-node
core engine.`,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/ndnclient/client.toml", "path to client.toml")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Operations"})
	cmdRun.GroupID = "core"
	cmdFetch.GroupID = "core"
	cmdRegister.GroupID = "core"

	rootCmd.AddCommand(cmdRun, cmdFetch, cmdRegister)
}

func fatalf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
