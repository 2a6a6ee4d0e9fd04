package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"golox/internal"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if os.Getenv("GOLOX_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: golox /path/to/source.lox")
		os.Exit(64)
	}

	b, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		log.WithError(err).Fatal("cannot read source file")
	}

	if !internal.RunSourceWithPrinter(string(b), stdPrinter{}) {
		os.Exit(70)
	}
}
