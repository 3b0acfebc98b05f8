// Package cli implements the chain and snake command-line interfaces.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/leeovery/chain/internal/chain"
	"github.com/leeovery/chain/internal/config"
)

// App is the chain CLI application.
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *VerboseLogger

	// copyFn writes text to the system clipboard. Replaced in tests.
	copyFn func(string) error
}

// Params holds everything a chain run needs. It is built from the command
// line by Run, or directly by callers and tests.
type Params struct {
	Filename    string
	Title       string
	Format      OutputFormat
	Quiet       bool
	Verbose     bool
	Copy        string
	LockTimeout time.Duration
}

// NewApp creates a new CLI application with the given output writers.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
		copyFn: clipboard.WriteAll,
	}
}

// Run parses arguments, chains the input file and writes the result.
// args[0] is the program name; an empty args is treated as no arguments.
// Returns the exit code (0 for success, 1 for error).
func (a *App) Run(args []string) int {
	if len(args) > 0 {
		args = args[1:]
	}
	params, err := a.parseArgs(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return reportError(a.stdout, a.stderr, err, missingFileMsg)
	}

	if params.Verbose {
		a.logger = NewVerboseLogger(a.stderr)
		defer a.logger.Sync()
	}

	result, err := a.Chain(params)
	if err != nil {
		return reportError(a.stdout, a.stderr, err, missingFileMsg)
	}

	if params.Copy != "" {
		if err := a.copyBlock(result, params.Copy); err != nil {
			return reportError(a.stdout, a.stderr, err, missingFileMsg)
		}
	}

	a.logger.Logf("writing %s output", params.Format)
	if err := NewFormatter(params).FormatResult(a.stdout, result); err != nil {
		return reportError(a.stdout, a.stderr, err, missingFileMsg)
	}
	return 0
}

func (a *App) parseArgs(args []string) (Params, error) {
	fs := pflag.NewFlagSet("chain", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		p          Params
		toonFlag   bool
		prettyFlag bool
		jsonFlag   bool
		configPath string
	)
	fs.BoolVarP(&p.Quiet, "quiet", "q", false, "Omit the summary line from pretty output.")
	fs.BoolVarP(&p.Verbose, "verbose", "v", false, "Write debug output to stderr.")
	fs.BoolVar(&toonFlag, "toon", false, "Write TOON output.")
	fs.BoolVar(&prettyFlag, "pretty", false, "Write titled blocks (default).")
	fs.BoolVar(&jsonFlag, "json", false, "Write JSON output.")
	fs.StringVarP(&p.Copy, "copy", "c", "", "Copy the named block (plain, quoted, escaped-or) to the clipboard.")
	fs.StringVar(&configPath, "config", "", "Read defaults from a YAML config file.")

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			a.printUsage(fs)
		}
		return Params{}, err
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return Params{}, err
		}
		cfg = loaded
	}

	format, err := ResolveFormat(toonFlag, prettyFlag, jsonFlag, OutputFormat(cfg.Format))
	if err != nil {
		return Params{}, err
	}
	p.Format = format
	p.LockTimeout = cfg.LockTimeout

	if p.Copy != "" {
		if _, err := chain.Lookup(p.Copy); err != nil {
			return Params{}, err
		}
	}

	positional = append(positional, fs.Args()...)
	p.Title = cfg.Title
	if len(positional) > 0 {
		p.Filename = positional[0]
	}
	if len(positional) > 1 {
		p.Title = positional[1]
	}

	return p, nil
}

func (a *App) printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(a.stdout, "Usage: chain [flags] <filename> [title]")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Joins the unique lines of <filename> as plain, quoted and escaped-or lists.")
	fmt.Fprintln(a.stdout, "Arguments containing spaces are never read as flags. Put -- before a")
	fmt.Fprintln(a.stdout, "title such as -draft that would otherwise look like one.")
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Flags:")
	fmt.Fprint(a.stdout, fs.FlagUsages())
}

// copyBlock puts the text of the named block on the clipboard.
func (a *App) copyBlock(r *Result, name string) error {
	for _, b := range r.Blocks {
		if b.Name != name {
			continue
		}
		if err := a.copyFn(b.Text); err != nil {
			return fmt.Errorf("copying %s block to clipboard: %w", name, err)
		}
		a.logger.Logf("copied %s block to clipboard", name)
		return nil
	}
	return &chain.UnknownChainerError{Name: name, Available: chain.Names()}
}

// splitArgs separates flag tokens, with the values of flags that take one,
// from positionals. Free-text titles such as "- TODO -" stay positional.
// Everything after "--" is positional.
func splitArgs(fs *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flagArgs, append(positional, args[i+1:]...)
		}
		if !looksLikeFlag(arg) {
			positional = append(positional, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positional
}

// looksLikeFlag reports whether arg is a dash-prefixed token whose name part
// (before any "=") holds no whitespace.
func looksLikeFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	name := arg
	if i := strings.IndexByte(arg, '='); i >= 0 {
		name = arg[:i]
	}
	return !strings.ContainsAny(name, " \t")
}

// takesValue reports whether arg names a flag that consumes the next token.
// For grouped shorthands ("-vc") only the last letter can take a value.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		f = fs.Lookup(arg[2:])
	} else {
		f = fs.ShorthandLookup(arg[len(arg)-1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
