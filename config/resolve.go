package config

import (
	"os"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// EnvDefaultOptions is the environment variable holding a prefix of
// command-line options, honored only when not shadowed by the real
// command line (§6).
const EnvDefaultOptions = "SKIM_DEFAULT_OPTIONS"

// EnvDefaultCommand is the environment variable holding the default
// producer command, used in any mode when --cmd is not given.
const EnvDefaultCommand = "SKIM_DEFAULT_COMMAND"

// Resolve parses argv (normally os.Args[1:]) against the default option
// values, then overlays whatever SKIM_DEFAULT_OPTIONS and argv themselves
// set, in that order, so a real command-line flag always beats the
// environment default and the environment default always beats the
// built-in default.
func Resolve(argv []string) (*Options, error) {
	resolved := DefaultOptions()

	if raw := os.Getenv(EnvDefaultOptions); raw != "" {
		envArgv, err := shlex.Split(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "config: split %s", EnvDefaultOptions)
		}
		envOpts := Options{}
		fs := newFlagSet("env", &envOpts)
		if err := fs.Parse(envArgv); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", EnvDefaultOptions)
		}
		resolved.ApplyOverlay(envOpts)
	}

	cliOpts := Options{}
	fs := newFlagSet("skimmer", &cliOpts)
	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	resolved.ApplyOverlay(cliOpts)

	if resolved.Cmd == "" {
		resolved.Cmd = os.Getenv(EnvDefaultCommand)
	}

	resolved.Multi = ResolveMultiSelect(resolved)

	return &resolved, nil
}
