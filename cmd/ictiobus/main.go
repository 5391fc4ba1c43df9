/*
Ictiobus compiles a plain-text grammar file into an LALR(1) parsing table
and either dumps the table, parses a token file against it, or drops into
an interactive token-stream REPL.

Usage:

	ictiobus [flags] GRAMMAR_FILE [TOKEN_FILE]

The flags are:

	-v, --version
		Print the current version and exit.

	-t, --trace
		Enable trace logging of driver transitions.

	-d, --dump-table
		Print the compiled parsing table and exit, without parsing
		anything.

	-i, --interactive
		Start an interactive token-stream REPL instead of reading
		TOKEN_FILE.

	-c, --cache FILE
		Path to a rezi-encoded compiled-table cache; skips recompiling
		the grammar if the cache is present.

	-C, --config FILE
		Path to a TOML sidecar config file (default: GRAMMAR_FILE with
		its extension replaced by .toml, if present).

Token files are one token per line, "CLASS[ lexeme]", ending with a
mandatory "$" line.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/ictiobus/automaton"
	"github.com/dekarrin/ictiobus/gfile"
	"github.com/dekarrin/ictiobus/internal/repl"
	"github.com/dekarrin/ictiobus/internal/version"
	"github.com/dekarrin/ictiobus/lalr"
	"github.com/dekarrin/ictiobus/parser"
	"github.com/dekarrin/ictiobus/ptable"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates bad flags or a missing required argument.
	ExitUsageError

	// ExitCompileError indicates the grammar file failed to compile into
	// a parsing table.
	ExitCompileError

	// ExitParseError indicates the token file or REPL input did not
	// derive from the compiled grammar.
	ExitParseError
)

var (
	returnCode = ExitSuccess

	flagVersion     = pflag.BoolP("version", "v", false, "Print the current version and exit")
	flagTrace       = pflag.BoolP("trace", "t", false, "Enable trace logging of driver transitions")
	flagDumpTable   = pflag.BoolP("dump-table", "d", false, "Print the compiled parsing table and exit")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive token-stream REPL instead of reading TOKEN_FILE")
	flagCache       = pflag.StringP("cache", "c", "", "Path to a rezi-encoded compiled-table cache")
	flagConfig      = pflag.StringP("config", "C", "", "Path to a TOML sidecar config (default: GRAMMAR_FILE with .toml extension)")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing GRAMMAR_FILE")
		pflag.Usage()
		returnCode = ExitUsageError
		return
	}
	grammarFile := args[0]

	var tokenFile string
	if len(args) >= 2 {
		tokenFile = args[1]
	}

	cfg, err := loadConfig(grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	table, err := compile(grammarFile, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}
	log.Printf("DEBUG compiled grammar %q", grammarFile)

	if *flagDumpTable {
		fmt.Println(table.String())
		return
	}

	var stream parser.Stream
	if *flagInteractive {
		rl, err := repl.New("ictiobus> ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitUsageError
			return
		}
		defer rl.Close()
		stream = rl
	} else {
		if tokenFile == "" {
			fmt.Fprintln(os.Stderr, "ERROR: must give TOKEN_FILE or -i/--interactive")
			returnCode = ExitUsageError
			return
		}
		f, err := os.Open(tokenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitUsageError
			return
		}
		defer f.Close()
		stream, err = repl.NewTokenFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitUsageError
			return
		}
	}

	driver := parser.New(table)
	if *flagTrace || cfg.Trace.Enabled {
		runID := uuid.New().String()[:8]
		driver.Trace = func(line string) {
			log.Printf("DEBUG [%s] %s", runID, line)
		}
	}

	log.Printf("INFO  parsing %s", parseSource(tokenFile, *flagInteractive))
	tree, err := driver.Parse(stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}

	fmt.Println(tree.String())
}

func parseSource(tokenFile string, interactive bool) string {
	if interactive {
		return "interactive input"
	}
	return tokenFile
}

func loadConfig(grammarFile string) (gfile.Config, error) {
	path := *flagConfig
	if path == "" {
		path = withExt(grammarFile, ".toml")
	}
	cfg, _, err := gfile.LoadConfigIfExists(path)
	if err == nil && cfg.Cache.Path != "" && !filepath.IsAbs(cfg.Cache.Path) {
		cfg.Cache.Path = filepath.Join(filepath.Dir(path), cfg.Cache.Path)
	}
	return cfg, err
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// compile builds the parsing table for grammarFile, using cfg's cache path
// (or -c/--cache, which takes priority) to skip recompilation when
// possible.
func compile(grammarFile string, cfg gfile.Config) (*ptable.Table, error) {
	cachePath := *flagCache
	if cachePath == "" {
		cachePath = cfg.Cache.Path
	}

	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			var entry ptable.Entry
			if _, err := rezi.DecBinary(data, &entry); err == nil {
				log.Printf("DEBUG loaded cached table from %q", cachePath)
				return ptable.FromCache(entry), nil
			}
			log.Printf("WARN  could not decode cache %q, recompiling", cachePath)
		}
	}

	f, err := os.Open(grammarFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gfile.ParseGrammar(f)
	if err != nil {
		return nil, fmt.Errorf("parsing grammar: %w", err)
	}

	lr0, aug, err := automaton.Build(g)
	if err != nil {
		return nil, fmt.Errorf("building automaton: %w", err)
	}

	lalrAutomaton := lalr.Build(lr0, aug)

	table, err := ptable.Build(lalrAutomaton, aug)
	if err != nil {
		return nil, fmt.Errorf("building parsing table: %w", err)
	}

	if cachePath != "" {
		entry := table.ToCache()
		if err := os.WriteFile(cachePath, rezi.EncBinary(entry), 0644); err != nil {
			log.Printf("WARN  could not write cache %q: %s", cachePath, err.Error())
		}
	}

	return table, nil
}
