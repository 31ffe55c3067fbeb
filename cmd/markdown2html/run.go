package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logging/gologger"
)

// ErrUsage indicates the command line did not name an input and an output.
var ErrUsage = errors.New("expected an input and an output file")

// runMain runs the CLI and returns the process exit code.
// args includes the program name, as in os.Args.
func runMain(args []string, deps *Dependencies) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(deps.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(deps.Stderr, err)
		printUsage(deps.Stderr)
		return ExitGeneral
	}

	if flags.help {
		printUsage(deps.Stdout)
		return ExitSuccess
	}

	if flags.version {
		fmt.Fprintf(deps.Stdout, "go-md2html %s\n", Version)
		return ExitSuccess
	}

	// Arguments past the output path are ignored.
	if len(positional) < 2 {
		printUsage(deps.Stderr)
		return exitCodeFor(ErrUsage)
	}
	inputPath, outputPath := positional[0], positional[1]

	if err := run(inputPath, outputPath, flags, deps); err != nil {
		reportError(deps, err, inputPath, flags)
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// run loads configuration, merges flags, and converts one file.
func run(inputPath, outputPath string, flags *cliFlags, deps *Dependencies) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over the config file.
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}
	logger := provider.GetLogger("markdown2html")

	conv, err := md2html.NewConverter(
		md2html.WithEngine(cfg.Engine),
		md2html.WithCloseLists(cfg.CloseLists),
		md2html.WithFrontMatter(cfg.FrontMatter),
		md2html.WithStandalone(cfg.Standalone),
		md2html.WithTitle(cfg.Title),
		md2html.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	start := deps.Now()
	logger.Debug("converting", "input", inputPath, "output", outputPath, "engine", conv.Engine())

	if err := conv.ConvertFile(deps.Context, inputPath, outputPath); err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(deps.Stdout, "%s -> %s (%s, %v)\n", inputPath, outputPath, conv.Engine(), deps.Now().Sub(start))
	}
	return nil
}

// mergeFlags applies explicitly set CLI flags onto cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.changed["close-lists"] {
		cfg.CloseLists = flags.closeLists
	}
	if flags.changed["front-matter"] {
		cfg.FrontMatter = flags.frontMatter
	}
	if flags.changed["standalone"] {
		cfg.Standalone = flags.standalone
	}
	if flags.title != "" {
		cfg.Title = flags.title
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
}

// reportError writes err to stderr, with a hint when one applies.
// A missing input is reported as exactly "Missing <input>".
func reportError(deps *Dependencies, err error, inputPath string, flags *cliFlags) {
	if errors.Is(err, md2html.ErrMissingInput) {
		fmt.Fprintf(deps.Stderr, "Missing %s\n", inputPath)
		return
	}
	fmt.Fprintln(deps.Stderr, err.Error()+hintFor(err, flags))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if fileutil.IsFilePath(flags.config) {
			return hints.ForConfigNotFound(nil)
		}
		return hints.ForConfigNotFound(config.SearchPaths(flags.config))
	case errors.Is(err, md2html.ErrUnknownEngine):
		return hints.ForUnknownEngine(md2html.Engines())
	case errors.Is(err, md2html.ErrWriteHTML):
		return hints.ForOutputWrite()
	case errors.Is(err, md2html.ErrFrontMatter):
		return hints.ForFrontMatter()
	default:
		return ""
	}
}
