// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bitfield/script"

	"unit-drills/internal/calculator"
	"unit-drills/internal/config"
	"unit-drills/internal/person"
	"unit-drills/internal/selfcheck"
)

const version = "0.1.0"

var errUsage = errors.New("usage")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg, os.Stderr)

	os.Exit(run(cfg, os.Args[1:], script.Stdin, os.Stdout))
}

// setupLogging installs the default slog handler for the configured format
// and level.
func setupLogging(cfg *config.Config, w io.Writer) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// run dispatches a command and returns the process exit code.
func run(cfg *config.Config, args []string, stdin func() *script.Pipe, out io.Writer) int {
	if len(args) < 1 {
		printUsage(out)
		return 2
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "add":
		err = handleAdd(rest, out)
	case "sum":
		err = handleSum(rest, stdin, out)
	case "pairsum":
		err = handlePairSum(rest, out)
	case "person":
		err = handlePerson(rest, out)
	case "check":
		return handleCheck(cfg, rest, out)
	case "version":
		fmt.Fprintf(out, "drills version %s\n", version)
	case "help":
		printUsage(out)
	default:
		fmt.Fprintf(out, "Unknown command: %s\n\n", command)
		printUsage(out)
		return 2
	}

	if err != nil {
		slog.Error("Command failed", "command", command, "error", err)
		if errors.Is(err, errUsage) {
			printUsage(out)
			return 2
		}
		return 1
	}
	return 0
}

func handleAdd(args []string, out io.Writer) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(nums) != 2 {
		return fmt.Errorf("%w: add takes 2 numbers, got %d", errUsage, len(nums))
	}
	fmt.Fprintln(out, calculator.Add(nums[0], nums[1]))
	return nil
}

func handleSum(args []string, stdin func() *script.Pipe, out io.Writer) error {
	var (
		nums []int
		err  error
	)
	if len(args) == 1 && args[0] == "-" {
		nums, err = readInts(stdin())
	} else {
		nums, err = parseInts(args)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, calculator.Sum(nums))
	return nil
}

func handlePairSum(args []string, out io.Writer) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if len(nums) != 3 {
		return fmt.Errorf("%w: pairsum takes 3 numbers, got %d", errUsage, len(nums))
	}
	fmt.Fprintln(out, calculator.CheckTheSum(nums[0], nums[1], nums[2]))
	return nil
}

func handlePerson(args []string, out io.Writer) error {
	var name *string
	switch len(args) {
	case 1:
	case 2:
		name = &args[0]
	default:
		return fmt.Errorf("%w: person takes [NAME] AGE", errUsage)
	}

	age, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("failed to parse age: %w", err)
	}

	p := person.NewFromPtr(name, age)
	fmt.Fprintf(out, "name=%q age=%d\n", p.Name(), p.Age())
	return nil
}

func handleCheck(cfg *config.Config, args []string, out io.Writer) int {
	path := cfg.Check.CasesFile
	if len(args) > 0 {
		path = args[0]
	}

	cases := selfcheck.Builtin()
	if path != "" {
		loaded, err := selfcheck.LoadSheet(path)
		if err != nil {
			slog.Error("Failed to load case sheet", "path", path, "error", err)
			return 1
		}
		cases = loaded
	}

	report := selfcheck.Run(cases)
	if err := selfcheck.Render(out, report, cfg.Check.Color); err != nil {
		slog.Error("Failed to write report", "error", err)
		return 1
	}

	if !report.OK() {
		return 1
	}
	return 0
}

// parseInts converts every argument to an int.
func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q as an integer: %w", a, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// readInts drains p and parses its whitespace-separated fields.
func readInts(p *script.Pipe) ([]int, error) {
	text, err := p.String()
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return parseInts(strings.Fields(text))
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `Usage: drills <command> [arguments]

Commands:
  add X Y           Add two integers
  sum [N...]        Sum integers; "sum -" reads them from stdin
  pairsum A B C     Report whether any two of A, B, C add up to 20
  person [NAME] AGE Build a person with a defaulted name and clamped age
  check [FILE]      Run the built-in or given case sheet
  version           Show version information
  help              Show this help message`)
}
