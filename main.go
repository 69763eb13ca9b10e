package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"pursuit/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		log.Error().Err(err).Msg("pursuit failed")
		os.Exit(1)
	}
}
