// Command eventtail prints session events published to the NATS stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"deal-insights-be/internal/config"
	"deal-insights-be/pkg/events"
	pktNats "deal-insights-be/pkg/nats"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	url := flag.String("nats", cfg.Events.NatsURL, "NATS server URL")
	subject := flag.String("subject", pktNats.Subject("session.>"), "subject filter")
	durable := flag.String("durable", "", "durable consumer name (empty tails new events only)")
	flag.Parse()

	if err := run(*url, *subject, *durable); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so its deferred cleanup always happens.
func run(url, subject, durable string) error {
	if url == "" {
		return errors.New("NATS_URL is not set; pass -nats")
	}

	sub, err := pktNats.NewSubscriber(url)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, subject, durable, func(ctx context.Context, e events.Event) error {
		data := e.Payload()
		color.New(color.FgCyan).Printf("%s ", e.Timestamp().Format("15:04:05.000"))
		color.New(color.FgYellow).Printf("%-28s ", e.EventType())
		color.White("session=%v state=%v pending=%v", data["session_id"], data["state"], data["pending_replies"])
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	<-ctx.Done()
	return nil
}
