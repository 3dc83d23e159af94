// Package pflagx implements extensions to pflag.
package pflagx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

type FlagSet pflag.FlagSet

func FlagSetExt(fs *pflag.FlagSet) *FlagSet {
	return (*FlagSet)(fs)
}

func (fs *FlagSet) FlagSet() *pflag.FlagSet {
	return (*pflag.FlagSet)(fs)
}

// LevelP defines a slog level flag on the command line.
func LevelP(name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	return FlagSetExt(pflag.CommandLine).LevelP(name, shorthand, value, usage)
}

func (fs *FlagSet) LevelP(name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	fs.FlagSet().TextVarP(level, name, shorthand, def, usage)
	return level
}

// ParseEnv sets command line flags from environment variables named
// prefix + the flag name in upper case with dashes as underscores.
func ParseEnv(prefix string) error {
	return FlagSetExt(pflag.CommandLine).ParseEnv(prefix, os.Environ())
}

// ParseEnv sets flags from env, a list of key=value pairs. Unknown flags are
// reported to the flag set's output and skipped.
func (fs *FlagSet) ParseEnv(prefix string, env []string) error {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			if s, ok := strings.CutPrefix(k, prefix); ok {
				n := strings.Map(func(r rune) rune {
					switch r {
					case '_':
						return '-'
					}
					return unicode.ToLower(r)
				}, s)
				f := fs.FlagSet().Lookup(n)
				if f == nil {
					fmt.Fprintf(fs.FlagSet().Output(), "env %s: unknown flag --%s\n", k, n)
					continue
				}
				if err := fs.FlagSet().Set(n, v); err != nil {
					return fmt.Errorf("env %s: flag --%s: invalid argument: %w", k, n, err)
				}
			}
		}
	}
	return nil
}
