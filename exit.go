package argload

// Exit statuses for command-line wrappers that keep the traditional
// behavior of terminating the process on invalid input.  The library
// itself never exits; it returns classified errors and leaves the
// decision to the caller.
//
// Unknown configuration keys share ExitUnknownFlag with unknown
// flags.  Malformed configuration lines, which previously had no
// defined status, get ExitMalformedLine.
const (
	ExitSuccess         = 0 // help requested and printed
	ExitUnknownFlag     = 1 // unknown flag or unknown configuration key
	ExitMalformedLine   = 2 // configuration line without a key=value separator
	ExitMissingArgument = 3 // flag present with no following value
)

// ExitCode maps an error returned by ReadConfig, ReadConfigSource, or
// ApplyArgumentVector to the status a command-line wrapper should
// exit with.  A nil error and a help request both map to ExitSuccess;
// in the help case the wrapper should print Usage() first.  Errors
// that carry no classification, such as I/O failures, map to
// ExitUnknownFlag as the generic failure status.
func ExitCode(err error) int {
	switch {
	case err == nil, IsHelpRequest(err):
		return ExitSuccess
	case IsMissingArgument(err):
		return ExitMissingArgument
	case IsMalformedLine(err):
		return ExitMalformedLine
	default:
		return ExitUnknownFlag
	}
}
