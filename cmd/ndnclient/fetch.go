package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/named-data/ndn-client-core/internal/config"
	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/internal/engine"
	"github.com/named-data/ndn-client-core/pkg/ndn"
)

var toolFetch = struct {
	lifetimeMs int64
}{}

var cmdFetch = &cobra.Command{
	Use:     "fetch name",
	Short:   "Express one Interest and write the matching Data's content to stdout",
	Args:    cobra.ExactArgs(1),
	Example: "  ndnclient fetch /my/example/data > data.bin",
	RunE:    runFetch,
}

func init() {
	cmdFetch.Flags().Int64VarP(&toolFetch.lifetimeMs, "lifetime", "l", -1, "interest lifetime in milliseconds (default: engine default)")
}

func runFetch(cmd *cobra.Command, args []string) error {
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

	name := parseName(args[0])
	done := make(chan error, 1)

	_, err = node.ExpressInterest(&ndn.Interest{Name: name, LifetimeMs: toolFetch.lifetimeMs},
		func(_ *ndn.Interest, data *ndn.Data) {
			_, werr := os.Stdout.Write(data.Content)
			done <- werr
		},
		func(interest *ndn.Interest) {
			done <- fatalf("ndnclient: timed out fetching %s", interest.Name)
		},
	)
	if err != nil {
		return fatalf("ndnclient: expressing interest: %w", err)
	}

	go node.ProcessEvents()
	err = <-done
	node.Shutdown()
	return err
}
