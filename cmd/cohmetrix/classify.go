package main

import (
	"context"
	"fmt"
)

// classifyCommand prints one line per input with its category. Inputs that
// cannot be classified are reported on ui.Err.
func classifyCommand(opts ClassifyOptions, files []string, ui UI) error {
	conf, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	workers, _ := runSettings(conf, opts.Workers, optionalInt{})

	c, err := newClassifier(conf)
	if err != nil {
		return err
	}

	a, err := newAnalyzer(conf, true)
	if err != nil {
		return err
	}

	inputs, err := readInputs(files, ui)
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		label, err := a.Classify(context.Background(), in.text, workers, c)
		if err != nil {
			failed++
			fprintErr(ui.Err, fmt.Errorf("%s: %w", in.title, err))
			continue
		}
		_, _ = fmt.Fprintf(ui.Out, "🔖 %s %s\n", label, in.title)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d texts could not be classified", failed, len(inputs))
	}
	return nil
}
