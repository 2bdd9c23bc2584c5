package argload

import "strings"

// Usage returns the help text for every declared option in
// declaration order.  It is what a command-line wrapper should print
// when ApplyArgumentVector reports a help request, and a reasonable
// thing to print after any usage error.
func (l *Loader) Usage() string {
	var b strings.Builder
	for _, opt := range l.options {
		b.WriteString(opt.HelpDescription())
	}
	return b.String()
}
