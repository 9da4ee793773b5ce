// Command lina is the Lina toolchain entry point: it runs source files
// or compiled bundles, builds bundles, and disassembles programs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/linalang/lina/internal/backend"
	"github.com/linalang/lina/internal/cache"
	"github.com/linalang/lina/internal/config"
	"github.com/linalang/lina/internal/diagnostics"
	"github.com/linalang/lina/internal/lexer"
	"github.com/linalang/lina/internal/parser"
	"github.com/linalang/lina/internal/pipeline"
	"github.com/linalang/lina/internal/vm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Fprintf(os.Stderr, `lina %s — the Lina language toolchain

Usage:
  lina run [arquivo%s|arquivo%s]   run a source file or compiled bundle
  lina build [-o saída] [arquivo]  compile a source file into a bundle
  lina disasm [arquivo]            print the compiled bytecode listing
  lina version                     print the toolchain version
`, config.Version, config.SourceFileExt, config.BundleFileExt)
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	project, err := config.LoadProject(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:], project)
	case "build":
		return cmdBuild(args[1:], project)
	case "disasm":
		return cmdDisasm(args[1:], project)
	case "version":
		fmt.Println("lina " + config.Version)
		return 0
	default:
		usage()
		return 2
	}
}

// resolveEntry picks the file argument, falling back to the project's
// configured entry.
func resolveEntry(args []string, project *config.Project) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if project.Entry != "" {
		return project.Entry, nil
	}
	return "", fmt.Errorf("no input file (pass one or set 'entry' in %s)", config.ProjectFileName)
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// frontend runs lexer and parser over the file's contents.
func frontend(path string) (*pipeline.PipelineContext, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.FilePath = path

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)
	return p.Run(ctx), nil
}

func cmdRun(args []string, project *config.Project) int {
	path, err := resolveEntry(args, project)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if strings.HasSuffix(path, config.BundleFileExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		bundle, err := vm.Deserialize(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := vm.RunBundle(bundle); err != nil {
			reportError(err, project)
			return 1
		}
		return 0
	}

	ctx, err := frontend(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	exec := backend.NewExecutionProcessor(backend.NewVM())
	ctx = exec.Process(ctx)

	if ctx.HasErrors() {
		reportDiagnostics(ctx.Errors, project)
		return 1
	}
	return 0
}

func cmdBuild(args []string, project *config.Project) int {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outPath := fs.String("o", "", "output bundle path")
	noCache := fs.Bool("no-cache", false, "bypass the build cache")
	fs.Parse(args)

	path, err := resolveEntry(fs.Args(), project)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "build needs a source file (%s)\n", strings.Join(config.SourceFileExtensions, ", "))
		return 2
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + config.BundleFileExt
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var buildCache *cache.Cache
	if project.CacheEnabled() && !*noCache {
		if cachePath, err := project.ResolveCachePath(); err == nil {
			// A broken cache never fails the build; it just disables reuse.
			if c, err := cache.Open(cachePath); err == nil {
				buildCache = c
				defer c.Close()
			}
		}
	}

	hash := cache.HashSource(string(source))
	if buildCache != nil {
		if data, found, err := buildCache.Get(hash); err == nil && found {
			if err := os.WriteFile(out, data, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			fmt.Printf("%s (cached)\n", out)
			return 0
		}
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.FilePath = path
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		reportDiagnostics(ctx.Errors, project)
		return 1
	}

	bundle, err := backend.NewVM().Build(ctx)
	if err != nil {
		reportError(err, project)
		return 1
	}

	data, err := bundle.Serialize()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if buildCache != nil {
		if err := buildCache.Put(hash, data); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
	}

	fmt.Println(out)
	return 0
}

func cmdDisasm(args []string, project *config.Project) int {
	path, err := resolveEntry(args, project)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if strings.HasSuffix(path, config.BundleFileExt) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		bundle, err := vm.Deserialize(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(vm.Disassemble(bundle.Chunk, bundle.SourceFile))
		return 0
	}

	ctx, err := frontend(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if ctx.HasErrors() {
		reportDiagnostics(ctx.Errors, project)
		return 1
	}

	listing, err := backend.NewVM().Disassemble(ctx)
	if err != nil {
		reportError(err, project)
		return 1
	}
	fmt.Print(listing)
	return 0
}

// --- diagnostic reporting ---

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func colorEnabled(project *config.Project) bool {
	switch project.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

func reportDiagnostics(errs []*diagnostics.Diagnostic, project *config.Project) {
	color := colorEnabled(project)
	for _, d := range errs {
		if color {
			fmt.Fprintf(os.Stderr, "%serro%s: %s\n", ansiRed, ansiReset, d.Error())
		} else {
			fmt.Fprintf(os.Stderr, "erro: %s\n", d.Error())
		}
	}
}

func reportError(err error, project *config.Project) {
	if d, ok := err.(*diagnostics.Diagnostic); ok {
		reportDiagnostics([]*diagnostics.Diagnostic{d}, project)
		return
	}
	fmt.Fprintln(os.Stderr, "erro:", err)
}
