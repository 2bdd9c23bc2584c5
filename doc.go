// Obligatory // comment

/*
Package argload merges program settings for a closed set of options
from three sources, in ascending priority: the default declared on
each option, an optional key=value configuration file, and a
command-line style argument vector.

Declare the option set once, as data:

	options := []argload.Option{
		{Short: "v", Long: "verbose", Description: "enable verbose output", Default: "false"},
		{Short: "p", Long: "port", Description: "port to listen on", Default: "8080", TakesArgument: true},
		argload.HelpOption,
	}

Construct a loader, read the file, apply the arguments, and take a
snapshot:

	loader, err := argload.New(options)
	found, err := loader.ReadConfig("app.conf")
	err = loader.ApplyArgumentVector(os.Args[1:])
	settings := loader.Settings()

Later sources overwrite earlier ones for the same option, so a value
from the argument vector beats the configuration file, which beats the
default.  The snapshot always covers every declared option.

The configuration file holds one option per line as key=value.  Keys
are matched against long flag names after lowercasing and trimming;
values are trimmed and otherwise taken verbatim.  There are no
comments, no quoting, and no escaping.  A structured YAML or JSON file
can be used instead via ReadConfigSource.

The loader never terminates the process.  Every validation failure
comes back as a classified error, recognizable with IsUnknownFlag,
IsMissingArgument, IsMalformedLine, and IsHelpRequest, and ExitCode
maps those onto the stable status codes a thin command-line wrapper
should exit with:

	if err := loader.ApplyArgumentVector(os.Args[1:]); err != nil {
		if argload.IsHelpRequest(err) {
			fmt.Print(loader.Usage())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(argload.ExitCode(err))
	}

For typed access to the resolved settings, Fill copies the snapshot
into a struct using "settings" tags.

The loader is meant to be driven sequentially by a single goroutine
during program startup; it does no locking of its own.
*/
package argload
