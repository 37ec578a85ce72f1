package main

import "github.com/revelaction/cohmetrix/render"

func indicesCommand(opts IndicesOptions, ui UI) error {
	render.IndexList(ui.Out, !opts.NoColor)
	return nil
}
