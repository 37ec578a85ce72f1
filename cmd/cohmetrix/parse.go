package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/cohmetrix/config"
	"github.com/revelaction/cohmetrix/render"
)

// Option structs for subcommands that have flags
type AnalyzeOptions struct {
	ConfigPath string
	Format     string
	NoColor    bool
	NoProgress bool
	Describe   bool
	Workers    optionalInt
	BatchSize  optionalInt
	Classify   bool

	// analyze stored documents instead of text files
	Docs    bool
	DocPath string
	Label   string

	DbPath   string
	Postgres bool
}

type ClassifyOptions struct {
	ConfigPath string
	Workers    optionalInt
}

type IndicesOptions struct {
	NoColor bool
}

type ImportDocOptions struct {
	ConfigPath string
	From       string
	To         string
}

type LsDocOptions struct {
	DocPath string
	Label   string
}

type LsLabelsOptions struct {
	DocPath string
	Match   string
}

type DocOptions struct {
	Start   int
	Count   int
	DocPath string
}

type QueryOptions struct {
	DbPath     string
	ConfigPath string
	Postgres   bool
	NoColor    bool
}

type ServeOptions struct {
	ConfigPath string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// parseFlags parses args, printing usage to ui.Out on help and the error
// plus usage to ui.Err otherwise.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func usageError(fs *flag.FlagSet, ui UI, msg string) error {
	fs.SetOutput(ui.Err)
	fs.Usage()
	return errors.New(msg)
}

func configFlag(fs *flag.FlagSet, p *string) {
	fs.StringVar(p, "config", config.DefaultConfigPath(), "Path to the TOML configuration file (COHMETRIX_CONFIG)")
	fs.StringVar(p, "c", config.DefaultConfigPath(), "alias for -config")
}

func docPathFlag(fs *flag.FlagSet, p *string) {
	fs.StringVar(p, "doc-path", os.Getenv("COHMETRIX_DOC_PATH"), "Path to docs directory or SQLite file")
	fs.StringVar(p, "d", os.Getenv("COHMETRIX_DOC_PATH"), "alias for -doc-path")
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("cohmetrix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := parseFlags(fs, args, ui); err != nil {
		return "", nil, err
	}

	if fs.NArg() == 0 {
		return "", nil, usageError(fs, ui, "no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseAnalyzeArgs(args []string, ui UI) (AnalyzeOptions, []string, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts AnalyzeOptions
	configFlag(fs, &opts.ConfigPath)
	docPathFlag(fs, &opts.DocPath)

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Output format: "+strings.Join(render.SupportedFormats(), ", "))
	fs.Var(formatFlag, "f", "alias for -format")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress bar")
	fs.BoolVar(&opts.Describe, "describe", false, "Show the description of every index (text format)")
	fs.Var(&opts.Workers, "workers", "Number of concurrent workers, -1 for one per CPU (overrides config)")
	fs.Var(&opts.Workers, "w", "alias for -workers")
	fs.Var(&opts.BatchSize, "batch", "Number of texts per worker task (overrides config)")
	fs.BoolVar(&opts.Classify, "classify", false, "Assign a category with the configured classifier")
	fs.BoolVar(&opts.Docs, "docs", false, "Analyze stored documents of -doc-path; arguments are doc ids")
	fs.StringVar(&opts.Label, "label", "", "With -docs, only documents with a label containing this string")
	fs.StringVar(&opts.DbPath, "db", os.Getenv("COHMETRIX_DB_PATH"), "SQLite file to store the analysis records")
	fs.BoolVar(&opts.Postgres, "postgres", false, "Store the analysis records in the configured PostgreSQL database")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s analyze [options] [file...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Compute the complexity indices of text files, or of standard input when no file is given.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  With -docs, compute them for stored pre-annotated documents.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if opts.Docs {
		if opts.DocPath == "" {
			return opts, nil, errors.New("Doc path must be specified via -d or COHMETRIX_DOC_PATH with -docs")
		}
		for _, a := range fs.Args() {
			if _, err := strconv.Atoi(a); err != nil {
				return opts, nil, fmt.Errorf("invalid doc id: %s", a)
			}
		}
	}

	if opts.Label != "" && !opts.Docs {
		return opts, nil, usageError(fs, ui, "-label needs -docs")
	}

	if opts.BatchSize.value != nil && *opts.BatchSize.value < 1 {
		return opts, nil, fmt.Errorf("invalid batch size: %d", *opts.BatchSize.value)
	}

	return opts, fs.Args(), nil
}

func parseClassifyArgs(args []string, ui UI) (ClassifyOptions, []string, error) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ClassifyOptions
	configFlag(fs, &opts.ConfigPath)
	fs.Var(&opts.Workers, "workers", "Number of concurrent workers, -1 for one per CPU (overrides config)")
	fs.Var(&opts.Workers, "w", "alias for -workers")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s classify [options] [file...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Assign a complexity category to text files, or to standard input when no file is given.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	return opts, fs.Args(), nil
}

func parseIndicesArgs(args []string, ui UI) (IndicesOptions, error) {
	fs := flag.NewFlagSet("indices", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts IndicesOptions
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s indices [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the index codes in classifier order.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, usageError(fs, ui, "indices command accepts no arguments")
	}

	return opts, nil
}

func parseImportDocArgs(args []string, ui UI) (ImportDocOptions, error) {
	fs := flag.NewFlagSet("import-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDocOptions
	configFlag(fs, &opts.ConfigPath)
	fs.StringVar(&opts.From, "from", "", "Source directory with JSON docs or vertical file")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file or docs directory")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-doc --from <dir|vertical_file> --to <sqlite_file|dir>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseLsDocArgs(args []string, ui UI) (LsDocOptions, error) {
	fs := flag.NewFlagSet("ls-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsDocOptions
	docPathFlag(fs, &opts.DocPath)
	fs.StringVar(&opts.Label, "label", "", "Only documents with a label containing this string")
	fs.StringVar(&opts.Label, "l", "", "alias for -label")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls-doc [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the stored documents.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d or COHMETRIX_DOC_PATH")
	}

	return opts, nil
}

func parseLsLabelsArgs(args []string, ui UI) (LsLabelsOptions, error) {
	fs := flag.NewFlagSet("ls-labels", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsLabelsOptions
	docPathFlag(fs, &opts.DocPath)
	fs.StringVar(&opts.Match, "match", "", "Only labels containing this string")
	fs.StringVar(&opts.Match, "m", "", "alias for -match")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls-labels [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List the labels of the stored documents.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.DocPath == "" {
		return opts, errors.New("Doc path must be specified via -d or COHMETRIX_DOC_PATH")
	}

	return opts, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, int, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.IntVar(&opts.Start, "start", 0, "Index of the first sentence to show")
	fs.IntVar(&opts.Count, "n", -1, "Number of sentences to show (-1 for all)")
	docPathFlag(fs, &opts.DocPath)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] <docId>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the sentences of a stored document.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, 0, err
	}

	if fs.NArg() != 1 {
		return opts, 0, usageError(fs, ui, "doc command needs exactly one argument: <docId>")
	}

	docId, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, 0, fmt.Errorf("invalid docId: %v", err)
	}

	if opts.DocPath == "" {
		return opts, 0, errors.New("Doc path must be specified via -d or COHMETRIX_DOC_PATH")
	}

	return opts, docId, nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	configFlag(fs, &opts.ConfigPath)
	fs.StringVar(&opts.DbPath, "db", os.Getenv("COHMETRIX_DB_PATH"), "SQLite file with the analysis records")
	fs.BoolVar(&opts.Postgres, "postgres", false, "Read the analysis records from the configured PostgreSQL database")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Explore the stored analysis runs interactively.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.DbPath == "" && !opts.Postgres {
		return opts, errors.New("Records must be specified via -db, COHMETRIX_DB_PATH or -postgres")
	}

	return opts, nil
}

func parseServeArgs(args []string, ui UI) (ServeOptions, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ServeOptions
	configFlag(fs, &opts.ConfigPath)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s serve [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Start the HTTP API.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseNoArgs(name string, args []string, ui UI) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s %s\n", os.Args[0], name)
	}

	if err := parseFlags(fs, args, ui); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return usageError(fs, ui, name+" command accepts no arguments")
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Coh-Metrix text complexity indices for Spanish\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  analyze     Compute the indices of texts or stored documents.\n")
		_, _ = fmt.Fprintf(output, "  classify    Assign a complexity category to texts.\n")
		_, _ = fmt.Fprintf(output, "  indices     List the index codes.\n")
		_, _ = fmt.Fprintf(output, "  import-doc  Import pre-annotated docs (JSON or vertical) to SQLite or a directory.\n")
		_, _ = fmt.Fprintf(output, "  ls-doc      List stored documents.\n")
		_, _ = fmt.Fprintf(output, "  ls-labels   List the labels of stored documents.\n")
		_, _ = fmt.Fprintf(output, "  doc         Show the sentences of a stored document.\n")
		_, _ = fmt.Fprintf(output, "  query       Enter interactive mode over stored analysis runs.\n")
		_, _ = fmt.Fprintf(output, "  serve       Start the HTTP API.\n")
		_, _ = fmt.Fprintf(output, "  version     Show version.\n")
		_, _ = fmt.Fprintf(output, "  bash        Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  help        Show help for a command.\n")
	}
}
