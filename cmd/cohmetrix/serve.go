package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/cohmetrix/classify"
	"github.com/revelaction/cohmetrix/server"
)

func serveCommand(opts ServeOptions, ui UI) error {
	conf, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	logging.SetupLogging(conf.LogFile, conf.LogLevel)
	log.Info().Str("config", conf.SourcePath()).Msg("Starting cohmetrix server")

	a, err := newAnalyzer(conf, true)
	if err != nil {
		return err
	}

	var c *classify.Classifier
	if conf.Classifier.IsSet() {
		if c, err = newClassifier(conf); err != nil {
			return err
		}
	} else {
		log.Warn().Msg("no classifier configured, /classify is disabled")
	}

	actions := server.NewActions(a, c, *conf.Workers, conf.BatchSize)
	engine := server.NewEngine(conf.IsDebugMode(), conf.Server.CorsAllowedOrigins, actions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, conf.Server, engine)
}
