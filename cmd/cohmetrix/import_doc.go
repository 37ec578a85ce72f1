package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/cohmetrix/annotate/vertical"
	sent "github.com/revelaction/cohmetrix/sentence"
	"github.com/revelaction/cohmetrix/storage"
	"github.com/revelaction/cohmetrix/storage/filesystem"
	"github.com/revelaction/cohmetrix/storage/sqlite/zombiezen"
)

// importDocCommand copies pre-annotated documents from a JSON docs
// directory or a vertical file into a SQLite database or a docs directory.
func importDocCommand(opts ImportDocOptions, ui UI) error {
	info, err := os.Stat(opts.From)
	if err != nil {
		return fmt.Errorf("source not found: %s", opts.From)
	}

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)

	var docs sent.Library
	if info.IsDir() {
		docs, err = readDocDir(opts.From)
	} else {
		conf, cerr := loadConfig(opts.ConfigPath)
		if cerr != nil {
			return cerr
		}
		docs, err = vertical.Read(opts.From, conf.Vertical)
	}
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()

	dst, err := docWriter(p, opts.To)
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, doc := range docs {
		if _, err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", doc.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}

func readDocDir(dir string) (sent.Library, error) {
	src, err := filesystem.NewDocStore(dir)
	if err != nil {
		return nil, err
	}

	list, err := src.List("")
	if err != nil {
		return nil, err
	}

	docs := make(sent.Library, 0, len(list))
	for _, meta := range list {
		doc, err := src.Read(meta.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// docWriter returns the filesystem store of an existing directory and the
// SQLite store, created if needed, otherwise.
func docWriter(p *Pool, path string) (storage.DocWriter, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
