package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Scrin/wordbag/config"
	"github.com/Scrin/wordbag/corpus"
	"github.com/Scrin/wordbag/logging"
	"github.com/Scrin/wordbag/server"
	"github.com/Scrin/wordbag/source"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(2)
	}
	logging.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := corpus.New()
	if err := ingestInputs(ctx, c, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}

	if err := writeReport(os.Stdout, c, config.TopWords); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}

	if config.HTTPAddr == "" {
		return
	}
	if err := server.Run(ctx, config.HTTPAddr, c); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}

// ingestInputs adds every named file to the corpus, or stdin when no file is
// named and no HTTP server will take input instead. "-" names stdin.
func ingestInputs(ctx context.Context, c *corpus.Corpus, paths []string) error {
	if len(paths) == 0 {
		if config.HTTPAddr != "" {
			return nil
		}
		paths = []string{"-"}
	}

	stdinFormat, err := source.ParseFormat(config.InputFormat)
	if err != nil {
		return fmt.Errorf("WORDBAG_INPUT_FORMAT: %w", err)
	}

	for _, path := range paths {
		var (
			data   []byte
			format = stdinFormat
		)
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			format = source.FormatForPath(path)
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		fctx := logging.ContextWithStr(ctx, "source", path)
		stats, err := c.Ingest(fctx, format, string(data))
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		log.Info().Ctx(fctx).Str("format", string(format)).Int("unique", stats.Unique).Int("total", stats.Total).Msg("Input ingested")
	}
	return nil
}

// writeReport prints one "word count" line per word, alphabetically, or
// the top most frequent words when top > 0, followed by the totals.
func writeReport(w io.Writer, c *corpus.Corpus, top int) error {
	var words []corpus.WordCount
	if top > 0 {
		words = c.Top(top)
	} else {
		words = c.Words()
	}

	bw := bufio.NewWriter(w)
	for _, wc := range words {
		fmt.Fprintf(bw, "%s\t%d\n", wc.Word, wc.Count)
	}
	stats := c.Stats()
	fmt.Fprintf(bw, "# %d unique, %d total\n", stats.Unique, stats.Total)
	return bw.Flush()
}
