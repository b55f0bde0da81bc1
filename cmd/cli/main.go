package main

import (
	"context"
	"log"
	"os"

	"github.com/nuesadev/scholarengine/internal/buildinfo"
	"github.com/nuesadev/scholarengine/internal/cli"
	"github.com/nuesadev/scholarengine/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
