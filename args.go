package argload

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// ApplyArgumentVector applies command-line style tokens to the
// settings, overwriting anything set by defaults or a configuration
// file.  Tokens are processed left to right and a later occurrence of
// a flag overwrites an earlier one.
//
// Options declared with TakesArgument consume the following token as
// their value; a flag at the end of the vector with no token left is
// a missing-argument error.  Options without an argument consume
// nothing and are set to "true" when their flag is present.
//
// The built-in help flag (long flag "help") short-circuits:
// ApplyArgumentVector returns an error matching IsHelpRequest without
// touching the settings and ignores any remaining tokens.  The caller
// is expected to print Usage() and exit successfully.
func (l *Loader) ApplyArgumentVector(args []string) error {
	for i := 0; i < len(args); {
		flag := args[i]
		opt, ok := l.lookup(flag)
		if !ok {
			return UnknownFlagError(commonerrors.ConfigurationError(
				errors.Errorf("argument %s is not a valid flag, see --help for options", flag)))
		}
		if opt.Long == helpFlag {
			return HelpRequested()
		}
		if !opt.TakesArgument {
			l.settings[opt] = "true"
			i++
			continue
		}
		if i+1 >= len(args) {
			return MissingArgumentError(commonerrors.ConfigurationError(
				errors.Errorf("flag %s requires an argument", flag)))
		}
		l.settings[opt] = args[i+1]
		i += 2
	}
	return nil
}
