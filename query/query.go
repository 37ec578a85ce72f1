// Package query is the interactive explorer of stored analysis runs.
package query

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/cohmetrix/index"
	"github.com/revelaction/cohmetrix/render"
	"github.com/revelaction/cohmetrix/stat"
	"github.com/revelaction/cohmetrix/storage"
)

const (
	// minimum run id prefix length to complete
	completionThreshold = 2

	runsCommand  = "runs"
	statsCommand = "stats"
	quitCommand  = "quit"
)

type Handler struct {
	Repo     storage.RecordReader
	Out      io.Writer
	HasColor bool
	Describe bool
}

func NewHandler(repo storage.RecordReader, out io.Writer) *Handler {
	return &Handler{Repo: repo, Out: out}
}

// Run reads commands until quit.
func (h *Handler) Run() error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle descriptions, 🔧 runs | <run> [CODE...] | stats <run> CODE... | quit")

	history := []string{}

	for {
		runs, err := h.Repo.Runs()
		if err != nil {
			return err
		}

		in := prompt.Input("      🔖 ", h.completer(runs),
			prompt.OptionTitle("cohmetrix query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Describe = !h.Describe
					fmt.Fprintf(h.Out, "Descriptions set to %t\n", h.Describe)
				}}),
		)

		if strings.TrimSpace(in) == quitCommand {
			return nil
		}

		history = append(history, in)
		if err := h.Exec(in); err != nil {
			fmt.Fprintf(h.Out, "%s\n", err)
		}
	}
}

// Exec runs one command line.
func (h *Handler) Exec(in string) error {
	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case runsCommand:
		return h.runs()
	case statsCommand:
		if len(tokens) < 3 {
			return errors.New("usage: stats <run> CODE...")
		}
		return h.stats(tokens[1], tokens[2:])
	}
	return h.records(tokens[0], tokens[1:])
}

func (h *Handler) runs() error {
	runs, err := h.Repo.Runs()
	if err != nil {
		return err
	}

	for _, r := range runs {
		fmt.Fprintf(h.Out, "🏃 %s %s %d records, %d failed\n", r.Id, r.Created.Format("2006-01-02 15:04:05"), r.Records, r.Failed)
	}
	return nil
}

func (h *Handler) records(prefix string, codes []string) error {
	recs, err := h.find(prefix)
	if err != nil {
		return err
	}
	if err := validCodes(codes); err != nil {
		return err
	}

	reports := make([]render.Report, len(recs))
	for i, rec := range recs {
		reports[i] = render.Report{Id: rec.DocId, Title: rec.Title, Indices: rec.Indices, Label: rec.Label, Error: rec.Err}
		if len(codes) > 0 && rec.Indices != nil {
			reports[i].Indices = make(index.Map, len(codes))
			for _, c := range codes {
				reports[i].Indices[c] = rec.Indices[c]
			}
		}
	}

	r := &render.TextRenderer{W: h.Out, HasColor: h.HasColor, Describe: h.Describe}
	return r.Render(reports)
}

// stats writes mean and standard deviation of each code over the successful
// records of the run. Undefined values are left out of the sample.
func (h *Handler) stats(prefix string, codes []string) error {
	recs, err := h.find(prefix)
	if err != nil {
		return err
	}
	if err := validCodes(codes); err != nil {
		return err
	}

	for _, c := range codes {
		var sample []float64
		for _, rec := range recs {
			v, ok := rec.Indices[c]
			if !ok || math.IsNaN(v) {
				continue
			}
			sample = append(sample, v)
		}

		res, err := stat.Describe(sample, stat.All)
		if err != nil {
			fmt.Fprintf(h.Out, "  %-9s %12s\n", c, "n/a")
			continue
		}
		fmt.Fprintf(h.Out, "  %-9s mean %12.4f std %12.4f n %d\n", c, res.Mean, res.Std, len(sample))
	}
	return nil
}

// find returns the records of the only run whose id starts with prefix.
func (h *Handler) find(prefix string) ([]storage.Record, error) {
	runs, err := h.Repo.Runs()
	if err != nil {
		return nil, err
	}

	var found []string
	for _, r := range runs {
		if strings.HasPrefix(r.Id, prefix) {
			found = append(found, r.Id)
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("no run matches %q", prefix)
	case 1:
		return h.Repo.Records(found[0])
	}
	return nil, fmt.Errorf("%d runs match %q", len(found), prefix)
}

func validCodes(codes []string) error {
	for _, c := range codes {
		if index.Describe(c) == "" {
			return fmt.Errorf("unknown index %q", c)
		}
	}
	return nil
}

func (h *Handler) completer(runs []storage.Run) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return suggest(in.TextBeforeCursor(), runs)
	}
}

func suggest(befCursor string, runs []storage.Run) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	last := tokens[len(tokens)-1]

	// first token: command or run id
	if len(tokens) == 1 {
		for _, c := range []string{runsCommand, statsCommand, quitCommand} {
			if strings.HasPrefix(c, last) {
				s = append(s, prompt.Suggest{Text: c, Description: "🔧 " + c})
			}
		}
		return append(s, completeRun(last, runs)...)
	}

	if tokens[0] == statsCommand && len(tokens) == 2 {
		return completeRun(last, runs)
	}

	if last == "" {
		return s
	}
	for _, c := range index.Codes() {
		if strings.HasPrefix(strings.ToUpper(c), strings.ToUpper(last)) {
			s = append(s, prompt.Suggest{Text: c, Description: index.Describe(c)})
		}
	}
	return s
}

func completeRun(token string, runs []storage.Run) (s []prompt.Suggest) {
	if len(token) < completionThreshold {
		return s
	}

	for _, r := range runs {
		if strings.HasPrefix(r.Id, token) {
			s = append(s, prompt.Suggest{Text: r.Id, Description: fmt.Sprintf("🏃 %s (%d)", r.Created.Format("2006-01-02 15:04"), r.Records)})
		}
	}
	return s
}
