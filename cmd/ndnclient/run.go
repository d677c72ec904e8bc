package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/named-data/ndn-client-core/internal/config"
	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/internal/engine"
)

var cmdRun = &cobra.Command{
	Use:     "run",
	Short:   "Run the event loop until interrupted (sends nothing, so the transport is not connected)",
	Args:    cobra.NoArgs,
	Example: "  ndnclient run -c client.toml",
	RunE:    runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fatalf("ndnclient: loading config: %w", err)
	}
	corelog.SetLevel(cfg.Log.Level)

	t, err := dialTransport(cfg)
	if err != nil {
		return err
	}
	node := engine.NewNode(t)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		corelog.Info("ndnclient", "shutting down")
		node.Shutdown()
	}()

	return node.ProcessEvents()
}
