package main

import (
	"context"

	"github.com/revelaction/cohmetrix/config"
	"github.com/revelaction/cohmetrix/query"
)

func queryCommand(opts QueryOptions, ui UI) error {
	conf := config.Default()
	if opts.Postgres {
		var err error
		if conf, err = loadConfig(opts.ConfigPath); err != nil {
			return err
		}
	}

	p := &Pool{}
	defer p.Close()

	repo, closeRepo, err := NewRecordRepository(context.Background(), p, conf, opts.DbPath, opts.Postgres)
	if err != nil {
		return err
	}
	defer closeRepo()

	h := query.NewHandler(repo, ui.Out)
	h.HasColor = !opts.NoColor
	return h.Run()
}
