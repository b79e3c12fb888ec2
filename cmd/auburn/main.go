package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"auburn/interpreter-go/pkg/driver"
	"auburn/interpreter-go/pkg/interpreter"
	"auburn/interpreter-go/pkg/runtime"
)

const cliToolVersion = "auburn-cli 0.1.0-dev"

var errManifestNotFound = errors.New("package.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	if len(args) == 0 {
		manifestPath, err := findManifest(".")
		if err != nil {
			if errors.Is(err, errManifestNotFound) {
				fmt.Fprintln(os.Stderr, "auburn run requires a module file or a package.yml nearby")
				return 1
			}
			fmt.Fprintf(os.Stderr, "failed to locate manifest: %v\n", err)
			return 1
		}
		program, err := driver.LoadProgram(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
			return 1
		}
		return executeProgram(program)
	}

	candidate := args[0]

	// A bare name with no path shape is tried as a manifest target
	// first.
	if !looksLikePathCandidate(candidate) {
		if manifestPath, err := findManifest("."); err == nil {
			program, err := driver.LoadProgramTarget(manifestPath, candidate)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load target %q: %v\n", candidate, err)
				return 1
			}
			return executeProgram(program)
		}
	}

	program, err := driver.LoadProgram(candidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
		return 1
	}
	return executeProgram(program)
}

func executeProgram(program *driver.Program) int {
	interp := interpreter.New()
	if err := interp.LoadModule(program.Module); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load program: %v\n", err)
		return 1
	}
	if _, err := interp.Run(); err != nil {
		if fault, ok := runtime.AsFault(err); ok {
			fmt.Fprintf(os.Stderr, "runtime error (%s): %s\n", fault.FaultKind, fault.Message)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return 1
	}
	return 0
}

// findManifest walks from start upward to the filesystem root looking
// for package.yml.
func findManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, driver.ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no package.yml found from %s upwards: %w", origin, errManifestNotFound)
		}
		dir = parent
	}
}

func looksLikePathCandidate(arg string) bool {
	if arg == "" {
		return false
	}
	if strings.Contains(arg, "/") || strings.Contains(arg, "\\") {
		return true
	}
	if filepath.Ext(arg) == driver.ModuleFileExtension {
		return true
	}
	if strings.HasPrefix(arg, ".") {
		return true
	}
	return false
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  auburn run [target]")
	fmt.Fprintln(os.Stderr, "  auburn run <module.json>")
	fmt.Fprintln(os.Stderr, "  auburn run <package dir>")
	fmt.Fprintln(os.Stderr, "  auburn <module.json>")
}
