package argload

import (
	"github.com/mohae/deepcopy"
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired
type Validate interface {
	Struct(s interface{}) error
}

// Loader owns the mapping from declared options to their current
// values.  It is created with every option at its default and mutated
// only by ReadConfig, ReadConfigSource, and ApplyArgumentVector, which
// are expected to run sequentially during program startup before
// Settings is consulted.
type Loader struct {
	options   []Option
	settings  map[Option]string
	validator Validate
}

// LoaderOptArg is a functional argument for New()
type LoaderOptArg func(*Loader)

// WithValidate supplies a validator for the declared option
// descriptors.  Each Option is checked against its validate tags at
// construction time.
func WithValidate(v Validate) LoaderOptArg {
	return func(l *Loader) {
		l.validator = v
	}
}

// New builds a loader for a closed set of options and seeds every
// option with its declared default.  The set must be non-empty and
// free of duplicate short or long flags; violations are programmer
// errors, not runtime conditions.
func New(options []Option, opts ...LoaderOptArg) (*Loader, error) {
	l := &Loader{
		options:  options,
		settings: make(map[Option]string, len(options)),
	}
	for _, f := range opts {
		f(l)
	}
	if len(options) == 0 {
		return nil, commonerrors.ProgrammerError(errors.New("at least one option must be declared"))
	}
	shorts := make(map[string]struct{}, len(options))
	longs := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if l.validator != nil {
			if err := l.validator.Struct(opt); err != nil {
				return nil, commonerrors.ProgrammerError(errors.Wrapf(err, "option --%s", opt.Long))
			}
		}
		if opt.Short != "" {
			if _, ok := shorts[opt.Short]; ok {
				return nil, commonerrors.ProgrammerError(errors.Errorf("duplicate short flag -%s", opt.Short))
			}
			shorts[opt.Short] = struct{}{}
		}
		if _, ok := longs[opt.Long]; ok {
			return nil, commonerrors.ProgrammerError(errors.Errorf("duplicate long flag --%s", opt.Long))
		}
		longs[opt.Long] = struct{}{}
		l.settings[opt] = opt.Default
	}
	return l, nil
}

// lookup finds the option whose short-flag or long-flag form equals
// token exactly.  The declared set is small so a linear scan is fine.
func (l *Loader) lookup(token string) (Option, bool) {
	for _, opt := range l.options {
		if opt.Matches(token) {
			return opt, true
		}
	}
	return Option{}, false
}

// Settings returns a snapshot of the current values, one entry per
// declared option.  The snapshot is a copy: mutating it does not
// affect the loader and later loads do not affect the snapshot.
func (l *Loader) Settings() map[Option]string {
	return deepcopy.Copy(l.settings).(map[Option]string)
}
