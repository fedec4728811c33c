package cli

import (
	"errors"
	"fmt"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

// EnvPrefix selects the environment variables read in place of flags,
// e.g. HANCOMB_LAYOUT.
const EnvPrefix = "HANCOMB"

// Options holds the command line. Empty strings mean "not given", so
// the config file value stays in effect.
type Options struct {
	ShowHelp    bool
	ListLayouts bool
	Interactive bool
	ConfigPath  string
	LayoutName  string
	KeypairPath string
	LogLevel    string
	LogFormat   string
}

func newFlagSet(opts *Options) *ff.FlagSet {
	fs := ff.NewFlagSet("hancomb")
	fs.StringVar(&opts.ConfigPath, 'c', "config", "hancomb.ini", "path to the INI configuration file")
	fs.StringVar(&opts.LayoutName, 'l', "layout", "", "keyboard layout (overrides [layout] name)")
	fs.StringVar(&opts.KeypairPath, 0, "keypairs", "", "JSON file with custom keypairs merged into the layout")
	fs.StringVar(&opts.LogLevel, 0, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&opts.LogFormat, 0, "log-format", "", "text or json")
	fs.BoolVar(&opts.Interactive, 'i', "interactive", "read raw keys from the terminal")
	fs.BoolVar(&opts.ListLayouts, 0, "list-layouts", "list available layouts")
	return fs
}

// Parse reads args, including the program name at index 0, and the
// HANCOMB_* environment.
func Parse(args []string) (Options, error) {
	var opts Options
	fs := newFlagSet(&opts)
	if len(args) > 0 {
		args = args[1:]
	}
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(EnvPrefix)); err != nil {
		if errors.Is(err, ff.ErrHelp) {
			opts.ShowHelp = true
			return opts, nil
		}
		return Options{}, fmt.Errorf("parse flags: %w", err)
	}
	if extra := fs.GetArgs(); len(extra) > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", extra[0])
	}
	return opts, nil
}

func Usage() string {
	var opts Options
	return fmt.Sprintf("hancomb - Hangul syllable composer\n\n%s", ffhelp.Flags(newFlagSet(&opts)))
}
