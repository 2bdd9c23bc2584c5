package argload

import (
	"bufio"
	"io/fs"
	"os"
	"strings"

	"github.com/muir/commonerrors"
	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// ReadConfig reads a key=value configuration file and overwrites the
// matching settings.  A missing file is a normal condition: found is
// false and err is nil, and the loader keeps whatever values it
// already has.
//
// Keys are lowercased and trimmed, then matched against long flag
// names.  Values are trimmed and otherwise taken verbatim, including
// any further "=" characters.  Whitespace-only lines are skipped; any
// other line without "=" is a malformed-line error.  Lines are applied
// in order with no rollback, so a file that fails partway through
// leaves the lines before the failure applied.
func (l *Loader) ReadConfig(path string) (found bool, err error) {
	return l.ReadConfigFS(unrestrictedFS{}, path)
}

// ReadConfigFS is ReadConfig reading from an fs.FS instead of the
// host filesystem.
func (l *Loader) ReadConfigFS(fsys fs.FS, path string) (bool, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "open config %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := l.applyLine(line); err != nil {
			return true, errors.Wrapf(err, "%s:%d", path, lineNumber)
		}
	}
	if err := scanner.Err(); err != nil {
		return true, errors.Wrapf(err, "read config %s", path)
	}
	return true, nil
}

// applyLine parses one key=value line and overwrites the matching
// setting.  The split is on the first "=" only.
func (l *Loader) applyLine(line string) error {
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return MalformedLineError(commonerrors.ConfigurationError(
			errors.Errorf("line %q has no key=value separator", line)))
	}
	key := strings.TrimSpace(strings.ToLower(line[:i]))
	value := strings.TrimSpace(line[i+1:])
	opt, ok := l.lookup("--" + key)
	if !ok {
		return UnknownFlagError(commonerrors.ConfigurationError(
			errors.Errorf("%s is not a valid setting, see --help for options", key)))
	}
	l.settings[opt] = value
	return nil
}

// ReadConfigSource reads a structured YAML or JSON settings file and
// applies it with the same merge semantics as ReadConfig: a missing
// file is a normal condition and matching entries overwrite current
// values.  Each declared option is looked up by its long flag name at
// the top level of the document; scalar values are taken as strings.
//
// Unlike the line format, entries that match no declared option are
// ignored rather than rejected: a structured file may carry sections
// for more than one component.
func (l *Loader) ReadConfigSource(path string, unmarshalOpts ...nflex.UnmarshalFileArg) (bool, error) {
	source, err := nflex.UnmarshalFile(path, unmarshalOpts...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, commonerrors.ConfigurationError(err)
	}
	for _, opt := range l.options {
		if !source.Exists(opt.Long) {
			continue
		}
		value, err := source.GetString(opt.Long)
		if err != nil {
			return true, MalformedLineError(commonerrors.ConfigurationError(
				errors.Wrapf(err, "%s: value for %s is not a scalar", path, opt.Long)))
		}
		l.settings[opt] = value
	}
	return true, nil
}

// unrestrictedFS mirrors fs.FS onto the host filesystem so that
// absolute and relative paths both work.
type unrestrictedFS struct{}

func (u unrestrictedFS) Open(name string) (fs.File, error)     { return os.Open(name) }
func (u unrestrictedFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
