// Command vexbench benchmarks and cross-checks the vexmem allocators and
// hash table.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/pavanmanishd/vexmem/internal/check"
	"github.com/pavanmanishd/vexmem/internal/pflagx"
	"github.com/spf13/pflag"
)

var (
	EnvPrefix = "VEXBENCH_"
	Mode      = pflag.StringP("mode", "m", "bench", "bench or verify")
	Suites    = pflag.StringSliceP("suite", "s", []string{"rng", "alloc", "dict"}, "benchmark suites to run")
	Resource  = pflag.StringP("resource", "r", "heap", "resource backing the tables (heap, arena, inline, chain, pages)")
	ArenaSize = pflag.Int("arena-size", 64<<20, "buffer size for the arena and inline resources")
	BlockSize = pflag.Int("block-size", 1<<16, "first block size for the chain resource")
	Ops       = pflag.IntP("ops", "n", 100000, "operations per verify run or table size per benchmark")
	Keys      = pflag.IntP("keys", "k", 4096, "key space for verify runs")
	Seed      = pflag.Uint64("seed", 1, "random seed")
	LogLevel  = pflagx.LevelP("log-level", "L", slog.LevelInfo, "log level")
	LogJSON   = pflag.Bool("log-json", false, "use json logs")
	Help      = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	if err := pflagx.ParseEnv(EnvPrefix); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: LogLevel,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: LogLevel,
		})))
	}
	slog.SetLogLoggerLevel(LogLevel.Level())

	if err := run(); err != nil {
		slog.Error("vexbench failed", "error", err)
		os.Exit(1)
	}
}

func run() (err error) {
	defer func() {
		if p := recover(); p != nil {
			var v *check.Violation
			if e, ok := p.(error); ok && errors.As(e, &v) {
				err = fmt.Errorf("invariant violated: %w", v)
				return
			}
			panic(p)
		}
	}()

	switch *Mode {
	case "bench":
		for _, name := range *Suites {
			s, ok := suites[name]
			if !ok {
				return fmt.Errorf("unknown suite %q", name)
			}
			slog.Info("running suite", "suite", name, "resource", *Resource)
			if err := s(*Ops); err != nil {
				return fmt.Errorf("suite %s: %w", name, err)
			}
		}
		return nil
	case "verify":
		res, err := newResource(*Resource)
		if err != nil {
			return err
		}
		defer res.Close()
		slog.Info("verifying", "resource", *Resource, "ops", *Ops, "keys", *Keys, "seed", *Seed)
		if err := verify(res.Handle(), *Ops, *Keys, *Seed); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		slog.Info("verify passed", "ops", *Ops, "keys", *Keys)
		return nil
	default:
		return fmt.Errorf("unknown mode %q", *Mode)
	}
}
