package argload

import (
	"reflect"
	"strings"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

type settingsTag struct {
	Name  string `pt:"0"`
	Split string `pt:"split"`
}

// Fill copies the resolved settings into a struct, converting the
// string values to the field types.  The model must be a non-nil
// pointer to a struct.  Fields are matched to long flag names by the
// "settings" struct tag, or by the lowercased field name when the tag
// is absent.  A tag of "-" skips the field, and fields that match no
// declared option are left alone.
//
//	type myConfig struct {
//		Verbose bool     `settings:"verbose"`
//		Hosts   []string `settings:"hosts,split=:"`
//		Port    int      // matches long flag "port"
//	}
func (l *Loader) Fill(model interface{}) error {
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		return commonerrors.ProgrammerError(errors.Errorf(
			"model must be a non-nil pointer to a struct, not %T", model))
	}
	e := v.Elem()
	var walkErr error
	reflectutils.WalkStructElements(e.Type(), func(f reflect.StructField) bool {
		var tagData settingsTag
		tag := reflectutils.SplitTag(f.Tag).Set().Get("settings")
		if err := tag.Fill(&tagData); err != nil {
			walkErr = errors.Wrapf(err, "settings tag on %s", f.Name)
			return false
		}
		if tagData.Name == "-" {
			return true
		}
		name := tagData.Name
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		opt, ok := l.lookup("--" + name)
		if !ok {
			return true
		}
		var ssa []reflectutils.StringSetterArg
		if tagData.Split != "" {
			ssa = append(ssa, reflectutils.WithSplitOn(tagData.Split))
		}
		setter, err := reflectutils.MakeStringSetter(f.Type, ssa...)
		if err != nil {
			walkErr = errors.Wrap(err, f.Name)
			return false
		}
		if err := setter(e.FieldByIndex(f.Index), l.settings[opt]); err != nil {
			walkErr = commonerrors.ConfigurationError(errors.Wrapf(err, "--%s", opt.Long))
			return false
		}
		return true
	})
	return walkErr
}
