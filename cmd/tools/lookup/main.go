package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/app"
	"github.com/kapu/pokedex-lookup-go/internal/config"
	"github.com/kapu/pokedex-lookup-go/pkg/errors"
)

func main() {
	timeout := flag.Duration("timeout", 15*time.Second, "overall deadline for the lookup")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-timeout 15s] <pokemon-name>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	container, err := app.Build(cfg, logger)
	if err != nil {
		logger.Fatal("failed to assemble services", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pokemon, err := container.Pokemon.Lookup(ctx, name)
	if err != nil {
		logger.Error("lookup failed",
			zap.String("name", name),
			zap.Bool("not_found", errors.IsNotFound(err)),
			zap.Error(err),
		)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(pokemon, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode result", zap.Error(err))
	}
	fmt.Println(string(out))
}
