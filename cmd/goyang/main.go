// Command goyang parses YANG modules and resolves their imports and
// includes, printing the result as a tree, JSON, or YAML.
//
// With .yang file arguments each file is parsed on its own; with module
// name arguments the modules are resolved through the directories given
// with --path, following imports and includes.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/pborman/getopt"

	"github.com/golangsnmp/goyang"
	"github.com/golangsnmp/goyang/cmd/internal/cliutil"
	"github.com/golangsnmp/goyang/yang"
)

const (
	exitOK    = 0 // success
	exitError = 1 // user error or diagnostics with severity error
)

type cli struct {
	paths    []string
	format   string
	revision string
	output   string
	verbose  bool
	trace    bool
	version  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	c := cli{format: "tree"}
	getopt.CommandLine.ListVarLong(&c.paths, "path", 'p',
		"directory to search for YANG files (repeatable)")
	getopt.CommandLine.StringVarLong(&c.format, "format", 'f',
		"output format: tree, json, yaml")
	getopt.CommandLine.StringVarLong(&c.revision, "revision", 'r',
		"requested revision of the named module")
	getopt.CommandLine.StringVarLong(&c.output, "output", 'o',
		"write output to a file instead of stdout")
	getopt.CommandLine.BoolVarLong(&c.verbose, "verbose", 'v',
		"enable debug logging")
	getopt.CommandLine.BoolVarLong(&c.trace, "trace", 0,
		"enable trace logging (implies --verbose)")
	getopt.CommandLine.BoolVarLong(&c.version, "version", 0,
		"show version and exit")
	getopt.Parse()
	args := getopt.Args()

	if c.version {
		printVersion()
		return exitOK
	}
	switch c.format {
	case "tree", "json", "yaml":
	default:
		cliutil.PrintError("unknown format: %s", c.format)
		return exitError
	}
	if len(args) == 0 {
		getopt.Usage()
		return exitError
	}

	out, closeOut, err := cliutil.GetOutput(c.output)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}
	defer closeOut()

	if strings.HasSuffix(args[0], ".yang") {
		return c.parseFiles(out, args)
	}
	return c.resolveModules(out, args)
}

// parseFiles parses each file on its own, without resolution.
func (c *cli) parseFiles(out io.Writer, files []string) int {
	logger := c.setupLogger()
	code := exitOK
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			cliutil.PrintError("%v", err)
			code = exitError
			continue
		}
		res := goyang.Parse(file, string(data), goyang.WithLogger(logger))
		printDiagnostics(file, res.Errors, res.Warnings)
		if !res.OK() {
			code = exitError
			continue
		}
		if err := c.dump(out, res.Module, res.Submodule); err != nil {
			cliutil.PrintError("%v", err)
			code = exitError
		}
	}
	return code
}

// resolveModules resolves each named module through the --path directories.
func (c *cli) resolveModules(out io.Writer, names []string) int {
	fetcher, err := c.buildFetcher()
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}
	logger := c.setupLogger()
	reg := goyang.NewRegistry()
	code := exitOK
	for _, name := range names {
		res, err := goyang.Resolve(context.Background(), name, c.revision, fetcher,
			goyang.WithLogger(logger), goyang.WithCache(reg.Lookup))
		if err != nil {
			cliutil.PrintError("%v", err)
			code = exitError
			continue
		}
		printDiagnostics(name, res.Errors, res.Warnings)
		if !res.OK() {
			code = exitError
			continue
		}
		reg.AddResolution(res)
		for _, rm := range res.Modules {
			if err := c.dump(out, rm.Module, nil); err != nil {
				cliutil.PrintError("%v", err)
				code = exitError
			}
		}
	}
	return code
}

func (c *cli) buildFetcher() (goyang.Fetcher, error) {
	if len(c.paths) == 0 {
		return goyang.Dir(".")
	}
	var fetchers []goyang.Fetcher
	for _, p := range c.paths {
		f, err := goyang.Dir(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot access path %s: %v\n", p, err)
			continue
		}
		fetchers = append(fetchers, f)
	}
	if len(fetchers) == 0 {
		return nil, fmt.Errorf("no usable search paths")
	}
	return goyang.Multi(fetchers...), nil
}

func (c *cli) setupLogger() *slog.Logger {
	if !c.verbose && !c.trace {
		return nil
	}
	level := slog.LevelDebug
	if c.trace {
		level = goyang.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func printDiagnostics(source string, errs, warns []yang.Diagnostic) {
	for _, d := range errs {
		fmt.Fprintf(os.Stderr, "%s:%s\n", source, d)
	}
	for _, d := range warns {
		fmt.Fprintf(os.Stderr, "%s:%s (warning)\n", source, d)
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("goyang %s\n", version)
}
