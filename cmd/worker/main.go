package main

import (
	"context"
	"os/signal"
	"syscall"

	"procuredesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes.Run(ctx)
}
