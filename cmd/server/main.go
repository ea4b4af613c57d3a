package main

import (
	"context"
	"log"

	"github.com/arolabs/aronotes/internal/server"
	"github.com/arolabs/aronotes/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
