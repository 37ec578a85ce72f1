package main

import (
	"fmt"

	"github.com/revelaction/cohmetrix/render"
	"github.com/revelaction/cohmetrix/storage"
)

// docCommand prints the sentences of a document, numbered across
// paragraphs.
func docCommand(repo storage.DocReader, opts DocOptions, docId int, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	i, shown := 0, 0
	for _, para := range doc.Paragraphs {
		for _, sentence := range para.Sentences {
			if i < opts.Start {
				i++
				continue
			}
			if opts.Count >= 0 && shown >= opts.Count {
				return nil
			}

			fmt.Fprintf(ui.Out, "✍  %d-%d %s\n", docId, i, render.Sentence(sentence))
			i++
			shown++
		}
	}

	return nil
}
