// angletool is a CLI utility for wrapping, clamping and deriving
// first-person view angles.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/vecpack/internal/config"
	"github.com/Faultbox/vecpack/internal/logger"
	"github.com/Faultbox/vecpack/pkg/vector"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "wrap":
		run(cfg, rest, func(p *vector.Pack3[float64]) {
			vector.NormalizeAngle(p)
		})
	case "clamp":
		run(cfg, rest, func(p *vector.Pack3[float64]) {
			if cfg.Output.WrapBeforeClamp {
				vector.NormalizeAngle(p)
			}
			vector.ClampAngle(p)
		})
	case "derive":
		run(cfg, rest, func(p *vector.Pack3[float64]) {
			*p = vector.DeriveAngle(*p)
		})
	case "unit":
		run(cfg, rest, func(p *vector.Pack3[float64]) {
			vector.Normalize(p)
		})
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`angletool - view-angle utility

Usage:
  angletool [options] <command> [x y z ...]

Commands:
  wrap   <p y r ...>   Wrap pitch/yaw into [-180, 180], zero roll
  clamp  <p y r ...>   Clamp pitch/yaw to valid view ranges, zero roll
  derive <x y z ...>   Derive view angles from a direction vector
  unit   <x y z ...>   Scale a vector to unit length

Triples are read from the arguments, or from stdin (one per line) when
no arguments are given.

Options:
  -config <path>   Config file (default ./angletool.yaml)
  -debug           Enable debug logging
  -precision <n>   Output decimal places
  -log-file <path> Write logs to this file

Examples:
  angletool wrap 370 -190 45
  angletool derive 1 1 0
  echo "0 0 -5" | angletool derive`)
}

// run applies op to every input triple and prints the result.
func run(cfg *config.Config, args []string, op func(*vector.Pack3[float64])) {
	n := 0
	err := eachTriple(args, func(p vector.Pack3[float64]) {
		op(&p)
		prec := cfg.Output.Precision
		fmt.Printf("%.*f %.*f %.*f\n", prec, p[0], prec, p[1], prec, p[2])
		n++
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Log.Debug("processed input", zap.Int("triples", n))
}

// eachTriple parses x y z triples from args, or from stdin when args is
// empty, and calls fn for each.
func eachTriple(args []string, fn func(vector.Pack3[float64])) error {
	if len(args) > 0 {
		if len(args)%3 != 0 {
			return fmt.Errorf("expected triples of x y z, got %d values", len(args))
		}
		for i := 0; i < len(args); i += 3 {
			p, err := parseTriple(args[i : i+3])
			if err != nil {
				return err
			}
			fn(p)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		p, err := parseTriple(fields)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		fn(p)
	}
	return scanner.Err()
}

func parseTriple(fields []string) (vector.Pack3[float64], error) {
	var p vector.Pack3[float64]
	if len(fields) != 3 {
		return p, fmt.Errorf("expected 3 values, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return p, fmt.Errorf("parsing %q: %w", f, err)
		}
		p[i] = v
	}
	return p, nil
}
