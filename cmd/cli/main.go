package main

import (
	"context"
	"log"
	"os"

	"calendard/internal/client/cli"
)

func main() {

	ctx := context.Background()
	app := cli.NewApp()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
