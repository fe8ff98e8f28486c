package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"dht-sheets-logger/commands"
)

type command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

var cli = []command{
	&commands.RunCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if options.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		if len(args) > 1 {
			if cmd := find(args[1]); cmd != nil {
				cmd.Help()
				return
			}

			fmt.Printf("\nInvalid command '%s'\n", args[1])
		}

		usage()
		return
	}

	cmd := find(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command '%s'\n", args[0])
		usage()
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func find(name string) command {
	for _, c := range cli {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println("    help      Displays this message, or the help information for a command")

	for _, c := range cli {
		fmt.Printf("    %-9s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
}
