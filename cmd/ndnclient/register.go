package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/named-data/ndn-client-core/internal/config"
	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/internal/engine"
	"github.com/named-data/ndn-client-core/pkg/ndn"
)

var cmdRegister = &cobra.Command{
	Use:     "register prefix",
	Short:   "Register a prefix with the local forwarder and log Interests received under it",
	Args:    cobra.ExactArgs(1),
	Example: "  ndnclient register /my/example/service",
	RunE:    runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
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

	prefix := parseName(args[0])
	failed := make(chan error, 1)

	node.RegisterPrefix(prefix, func(_ ndn.Name, interest *ndn.Interest, _ ndn.Transport, _ uint64) {
		fmt.Fprintf(os.Stderr, "interest received: %s\n", interest.Name)
	}, func(p ndn.Name) {
		failed <- fatalf("ndnclient: registration failed for %s", p)
	}, 0)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
			node.Shutdown()
		case err := <-failed:
			corelog.Error("ndnclient", err.Error())
			node.Shutdown()
		}
	}()

	return node.ProcessEvents()
}
