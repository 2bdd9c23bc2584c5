package argload

import "strings"

// Option describes one member of a program's closed set of settings.
// The full set is declared up front as a slice and never changes after
// the loader is constructed.
//
// Within one set no two options may share a Short or a Long value.
// New enforces that; the zero-cost alternative is to get it right in
// the declaration.
type Option struct {
	// Short is the single-character flag, matched with one leading
	// dash ("-v").  It may be left empty for long-only options.
	Short string `validate:"omitempty,len=1"`

	// Long is the flag name matched with two leading dashes
	// ("--verbose") and, lowercased, the key used in configuration
	// files.  Every option must have one.
	Long string `validate:"required"`

	// Description is shown in the help text.
	Description string

	// Default seeds the option's value before any file or argument
	// is applied.
	Default string

	// TakesArgument marks options that consume the following token
	// of the argument vector as their value.  Options without an
	// argument are set to "true" when their flag is present.
	TakesArgument bool
}

// helpFlag is the long flag that short-circuits argument processing.
const helpFlag = "help"

// HelpOption is a ready-made descriptor for the built-in help flag.
// Include it in the declared set to let users ask for the help text;
// the loader recognizes it by its long flag.
var HelpOption = Option{
	Short:       "h",
	Long:        helpFlag,
	Description: "print this help text and exit",
	Default:     "false",
}

// Matches reports whether token is exactly this option's short-flag
// form ("-" + Short) or long-flag form ("--" + Long).  Matching is
// case-sensitive with no prefix or partial matching.
func (o Option) Matches(token string) bool {
	if o.Short != "" && token == "-"+o.Short {
		return true
	}
	return token == "--"+o.Long
}

// HelpDescription renders the help text for one option: the flag
// forms on the first line and the indented description on the second.
func (o Option) HelpDescription() string {
	var b strings.Builder
	if o.Short != "" {
		b.WriteString("-")
		b.WriteString(o.Short)
		b.WriteString(", ")
	}
	b.WriteString("--")
	b.WriteString(o.Long)
	b.WriteString("\n\t")
	b.WriteString(o.Description)
	b.WriteString("\n")
	return b.String()
}
