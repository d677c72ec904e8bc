package main

import (
	"fmt"

	"github.com/named-data/ndn-client-core/internal/config"
	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/transport"
)

// dialTransport builds the concrete Transport named by the client's
// transport.network setting. Connection happens lazily, on the engine's
// first ExpressInterest/RegisterPrefix call, not here.
func dialTransport(cfg *config.Config) (ndn.Transport, error) {
	switch cfg.Transport.Network {
	case "unix", "tcp":
		return transport.NewStreamTransport(cfg.Transport.Network, cfg.Transport.Address), nil
	case "ws":
		return transport.NewWebSocketTransport(cfg.Transport.Address), nil
	default:
		return nil, fmt.Errorf("ndnclient: unknown transport.network %q (want unix, tcp or ws)", cfg.Transport.Network)
	}
}

// parseName splits a slash-separated command-line name argument
// ("/a/b/c") into an ndn.Name, treating each non-empty segment as one raw
// name component. This is not general NDN URI unescaping - just enough to
// let the CLI take human-typed names.
func parseName(s string) ndn.Name {
	name := ndn.NewName()
	comp := ""
	flush := func() {
		if comp != "" {
			name = name.Append([]byte(comp))
			comp = ""
		}
	}
	for _, r := range s {
		if r == '/' {
			flush()
			continue
		}
		comp += string(r)
	}
	flush()
	return name
}
