// Package lintdocweave provides a linter for docweave go:generate directives.
package lintdocweave

import (
	"go/ast"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/docweave/docweave/pkg/innerdoc"
)

// Analyzer is the docweave directive linter. It finds go:generate lines
// that invoke docweave and verifies, at the directive's position, that the
// referenced sources exist, parse, and contribute documentation.
var Analyzer = &analysis.Analyzer{
	Name: "lintdocweave",
	Doc:  "checks docweave go:generate directives for broken source references",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		dir := filepath.Dir(pass.Fset.Position(file.Pos()).Filename)
		for _, group := range file.Comments {
			for _, c := range group.List {
				inspectDirective(pass, c, dir)
			}
		}
	}
	return nil, nil
}

func inspectDirective(pass *analysis.Pass, c *ast.Comment, dir string) {
	argv, ok := directiveArgs(c.Text)
	if !ok {
		return
	}
	if len(argv) == 0 {
		pass.Reportf(c.Pos(), "docweave directive is missing a subcommand")
		return
	}

	switch sub, rest := argv[0], argv[1:]; sub {
	case "extract", "combine":
		checkSourcesDirective(pass, c, dir, sub, rest)
	case "generate":
		checkGenerateDirective(pass, c, dir, rest)
	default:
		pass.Reportf(c.Pos(), "unknown docweave subcommand %q", sub)
	}
}

// directiveArgs returns the argument vector of a docweave go:generate
// directive, or false when the comment is not one. Invocations through
// wrappers like `go run` are left alone.
func directiveArgs(text string) ([]string, bool) {
	rest, ok := strings.CutPrefix(text, "//go:generate")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return nil, false
	}
	args := splitArgs(strings.TrimSuffix(rest, "\r"))
	if len(args) == 0 {
		return nil, false
	}
	cmd := strings.TrimSuffix(filepath.Base(args[0]), ".exe")
	if cmd != "docweave" {
		return nil, false
	}
	return args[1:], true
}

func checkSourcesDirective(pass *analysis.Pass, c *ast.Comment, dir, sub string, args []string) {
	sources, flags := splitFlags(args)
	if sub == "extract" && len(sources) != 1 {
		pass.Reportf(c.Pos(), "docweave extract takes exactly one source file, got %d", len(sources))
		return
	}

	base := dir
	if b, ok := flags["--base"]; ok && b != "" {
		if !filepath.IsAbs(b) {
			b = filepath.Join(dir, b)
		}
		base = b
	}
	_, strict := flags["--strict"]

	var extractor innerdoc.Extractor = innerdoc.LineScanner{}
	if strict {
		extractor = innerdoc.AnnotationParser{}
	}

	for _, src := range sources {
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}
		data, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			if os.IsNotExist(err) {
				pass.Reportf(c.Pos(), "docweave source %s does not exist", src)
			} else {
				pass.Reportf(c.Pos(), "docweave source %s is not readable", src)
			}
			continue
		}
		docs, err := extractor.Extract(string(data))
		if err != nil {
			pass.Reportf(c.Pos(), "docweave source %s: %v", src, err)
			continue
		}
		if docs == "" {
			pass.Reportf(c.Pos(), "docweave source %s contributes no documentation", src)
		}
	}
}

func checkGenerateDirective(pass *analysis.Pass, c *ast.Comment, dir string, args []string) {
	_, flags := splitFlags(args)
	config := ".docweave.yml"
	if v, ok := flags["--config"]; ok && v != "" {
		config = v
	}
	path := config
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		pass.Reportf(c.Pos(), "docweave manifest %s does not exist", config)
	}
}

// valueFlags are the docweave flags that consume the following token.
var valueFlags = map[string]bool{
	"--base":    true,
	"--out":     true,
	"--format":  true,
	"--package": true,
	"--const":   true,
	"--config":  true,
}

// splitFlags separates positional arguments from flags, capturing flag
// values in both the `--flag value` and `--flag=value` spellings.
func splitFlags(args []string) (positionals []string, flags map[string]string) {
	flags = map[string]string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			positionals = append(positionals, arg)
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			flags[name] = value
			continue
		}
		if valueFlags[arg] && i+1 < len(args) {
			flags[arg] = args[i+1]
			i++
			continue
		}
		flags[arg] = ""
	}
	return positionals, flags
}

// splitArgs splits a directive argument list the way go generate does:
// whitespace-separated tokens, with double-quoted tokens unquoted as Go
// strings.
func splitArgs(s string) []string {
	var args []string
	for i := 0; i < len(s); {
		switch s[i] {
		case ' ', '\t':
			i++
		case '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(s) {
				args = append(args, s[i:])
				return args
			}
			token := s[i : j+1]
			if unquoted, err := strconv.Unquote(token); err == nil {
				token = unquoted
			}
			args = append(args, token)
			i = j + 1
		default:
			start := i
			for i < len(s) && s[i] != ' ' && s[i] != '\t' {
				i++
			}
			args = append(args, s[start:i])
		}
	}
	return args
}
