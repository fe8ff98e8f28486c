package commands

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
)

const APP = "dht-sheets-logger"
const VERSION = "v0.1.0"

type Options struct {
	Debug bool
}

type command struct {
	credentials string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account credential file")

	return flagset
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

func infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

func warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}
