package main

import (
	"flag"
	"fmt"
	"github.com/denismitr/emojidata"
	"io"
	"log"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var (
		flagSource string
		flagOutput string
		flagCheck  bool
		flagQuiet  bool
	)

	fs := flag.NewFlagSet("emojidata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flagSource, "src", emojidata.DefaultSourcePath, "Source emoji dataset")
	fs.StringVar(&flagOutput, "out", emojidata.DefaultOutputPath, "Generated emoji file")
	fs.BoolVar(&flagCheck, "check", false, "Verify the generated file is up to date instead of writing it")
	fs.BoolVar(&flagQuiet, "quiet", false, "Do not log progress")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: emojidata [args]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	logger := log.New(stderr, "emojidata: ", log.LstdFlags)

	b, err := emojidata.New(&emojidata.Config{
		SourcePath: flagSource,
		OutputPath: flagOutput,
		Log:        !flagQuiet,
		Logger:     logger,
	})
	if err != nil {
		logger.Printf("Failed to configure: %v", err)
		return exitError
	}

	if flagCheck {
		if _, err := b.Check(); err != nil {
			logger.Printf("Check failed: %v", err)
			return exitError
		}
		return exitOK
	}

	if _, err := b.Build(); err != nil {
		logger.Printf("Build failed: %v", err)
		return exitError
	}

	return exitOK
}
