package argload

import (
	"fmt"
	"testing/fstest"
)

func Example() {
	options := []Option{
		{Short: "v", Long: "verbose", Description: "enable verbose output", Default: "false", TakesArgument: true},
		{Short: "p", Long: "port", Description: "port to listen on", Default: "8080", TakesArgument: true},
		HelpOption,
	}
	loader, _ := New(options)

	fsys := fstest.MapFS{
		"app.conf": &fstest.MapFile{Data: []byte("Verbose = true\n")},
	}
	found, _ := loader.ReadConfigFS(fsys, "app.conf")
	fmt.Println("config found:", found)

	_ = loader.ApplyArgumentVector([]string{"-p", "9000"})

	var conf struct {
		Verbose bool
		Port    int
	}
	_ = loader.Fill(&conf)
	fmt.Println(conf.Verbose, conf.Port)

	err := loader.ApplyArgumentVector([]string{"--help"})
	fmt.Println("help requested:", IsHelpRequest(err), "exit:", ExitCode(err))
	// Output:
	// config found: true
	// true 9000
	// help requested: true exit: 0
}
