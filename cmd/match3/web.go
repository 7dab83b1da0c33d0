package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/web"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP/WebSocket server",
	Long: `Start an HTTP server that exposes the level pack and runs boards
over WebSocket.

Endpoints:
  GET /levels      - Level summaries as JSON
  GET /levels/:id  - One level with its layout rows
  GET /play        - WebSocket play session (JSON messages)

Examples:
  match3 web
  match3 web --http :9090 --levels ./my-levels
  match3 web --seed 42          # Every session gets the same boards`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(web.Config{
		Address: flagHTTPAddr,
		Levels:  levelLoader(),
		Game:    gameConfig,
		Seed:    flagSeed,
		Logger:  logger.WithPrefix("match3-web"),
	})

	fmt.Printf("Starting Match-3 web server on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
