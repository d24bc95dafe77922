package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NATS publishes events as JSON on a subject.
type NATS struct {
	nc      *nats.Conn
	subject string
	log     *slog.Logger
}

// ConnectNATS dials url and returns a publisher on subject.
func ConnectNATS(url, subject string, logger *slog.Logger) (*NATS, error) {
	nc, err := nats.Connect(url, nats.Name("work-force-matchup"))
	if err != nil {
		return nil, fmt.Errorf("nats connect %s: %w", url, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NATS{nc: nc, subject: subject, log: logger.With("component", "notify.nats")}, nil
}

func (n *NATS) Notify(_ context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		n.log.Error("encode event failed", "kind", ev.Kind, "err", err)
		return
	}
	if err := n.nc.Publish(n.subject, payload); err != nil {
		n.log.Warn("publish event failed", "subject", n.subject, "kind", ev.Kind, "err", err)
	}
}

// Close flushes pending messages and closes the connection.
func (n *NATS) Close() error {
	if err := n.nc.Drain(); err != nil {
		n.nc.Close()
		return err
	}
	return nil
}
