package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// UI contains the input and output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := runCommand(cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "cohmetrix: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("cohmetrix", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "analyze":
		opts, files, err := parseAnalyzeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return analyzeCommand(opts, files, ui)

	case "classify":
		opts, files, err := parseClassifyArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return classifyCommand(opts, files, ui)

	case "indices":
		opts, err := parseIndicesArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return indicesCommand(opts, ui)

	case "import-doc":
		opts, err := parseImportDocArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return importDocCommand(opts, ui)

	case "ls-doc":
		opts, err := parseLsDocArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, opts.DocPath)
		if err != nil {
			return err
		}
		return lsDocCommand(repo, opts, ui)

	case "ls-labels":
		opts, err := parseLsLabelsArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, opts.DocPath)
		if err != nil {
			return err
		}
		return lsLabelsCommand(repo, opts, ui)

	case "doc":
		opts, docId, err := parseDocArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, opts.DocPath)
		if err != nil {
			return err
		}
		return docCommand(repo, opts, docId, ui)

	case "query":
		opts, err := parseQueryArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return queryCommand(opts, ui)

	case "serve":
		opts, err := parseServeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return serveCommand(opts, ui)

	case "version":
		if err := parseNoArgs("version", args, ui); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return versionCommand(ui)

	case "bash":
		if err := parseNoArgs("bash", args, ui); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}
