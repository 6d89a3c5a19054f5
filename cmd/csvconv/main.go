// csvconv reads a CSV stream, inferring its delimiters and header when they
// are not given, and re-emits it in a chosen target text encoding.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	apiCodec "csvcodec/pkg/api/codec"
	"csvcodec/pkg/encode"
	"csvcodec/pkg/reader"
	"csvcodec/pkg/scan"
	"csvcodec/pkg/write"
)

const rowQueueSize = 1024

var (
	logPath      string
	inputPath    string
	outputPath   string
	encodingName string
	fieldDelim   string
	rowDelim     string
	quote        string
	header       string
	trim         string
	verbose      bool
	logCfg       slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stdout")
	pflag.StringVarP(&inputPath, "input", "i", "-", "path to input CSV file, or - for stdin")
	pflag.StringVarP(&outputPath, "output", "o", "-", "path to output file, or - for stdout")
	pflag.StringVarP(&encodingName, "encoding", "e", "utf-8", "target encoding: ascii, utf-8, utf-16, utf-16be, utf-16le, utf-32be, utf-32le, shift-jis, windows-1252")
	pflag.StringVarP(&fieldDelim, "field-delimiter", "f", "", "field delimiter. Inferred when empty")
	pflag.StringVarP(&rowDelim, "row-delimiter", "r", "", "row delimiter. Inferred when empty")
	pflag.StringVarP(&quote, "quote", "q", `"`, "quote character")
	pflag.StringVar(&header, "header", "auto", "whether the first row is a header: auto, yes, no")
	pflag.StringVarP(&trim, "trim", "t", "", "characters trimmed from both ends of unquoted fields")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV file %q: %v", path, err)
	}
	return file, nil
}

func create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %v", path, err)
	}
	return file, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func readerOptions() ([]reader.Option, error) {
	var opts []reader.Option
	if fieldDelim != "" {
		opts = append(opts, reader.WithFieldDelimiter(fieldDelim))
	}
	if rowDelim != "" {
		opts = append(opts, reader.WithRowDelimiter(rowDelim))
	}
	if trim != "" {
		opts = append(opts, reader.WithTrim(trim))
	}
	quotes := []rune(quote)
	if len(quotes) != 1 {
		return nil, fmt.Errorf("quote must be a single character, got %q", quote)
	}
	opts = append(opts, reader.WithQuote(quotes[0]))

	switch header {
	case "auto":
	case "yes":
		opts = append(opts, reader.WithHeader(true))
	case "no":
		opts = append(opts, reader.WithHeader(false))
	default:
		return nil, fmt.Errorf("header must be auto, yes, or no, got %q", header)
	}
	return opts, nil
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var logOutput = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		logOutput = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &logCfg)))

	targetEncoding, err := encode.ParseEncoding(encodingName)
	if err != nil {
		log.Fatalf("unsupported encoding %q: %v", encodingName, err)
	}

	opts, err := readerOptions()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	source, err := open(inputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer source.Close()

	csvReader, err := reader.NewReader(scan.NewPushback(bufio.NewReader(source)), opts...)
	if err != nil {
		log.Fatalf("failed to create CSV reader: %v", err)
	}
	slog.Debug("reader configured",
		"field", csvReader.FieldDelimiter(),
		"row", csvReader.RowDelimiter(),
		"header", csvReader.HasHeader(),
	)

	sink, err := create(outputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer sink.Close()

	encoder, err := encode.NewScalarEncoder(targetEncoding, sink, nil)
	if err != nil {
		log.Fatalf("failed to create scalar encoder: %v", err)
	}
	csvWriter, err := write.NewWriter(encoder,
		write.WithFieldDelimiter(csvReader.FieldDelimiter()),
		write.WithRowDelimiter(csvReader.RowDelimiter()),
		write.WithQuote(csvReader.Quote()),
	)
	if err != nil {
		log.Fatalf("failed to create CSV writer: %v", err)
	}

	rows := make(chan apiCodec.Row, rowQueueSize)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(rows)
		for {
			row, err := csvReader.ReadRow(ctx)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rows <- row:
			}
		}
	})

	eg.Go(func() error {
		if fields := csvReader.Header(); fields != nil {
			if err := csvWriter.WriteRow(ctx, fields); err != nil {
				return err
			}
		}
		count := 0
		for row := range rows {
			if err := csvWriter.WriteRow(ctx, row.Fields); err != nil {
				return err
			}
			count++
		}
		slog.InfoContext(ctx, "conversion finished", "rows", count, "encoding", targetEncoding.String())
		return nil
	})

	if err := eg.Wait(); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
