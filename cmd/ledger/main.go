// Command ledger replays a CSV action log and prints the final account
// balances as CSV on stdout.
//
//	ledger [flags] transactions.csv > accounts.csv
//
// Policies and precision default to the LEDGER_* environment settings.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/ledger-engine/internal/codec"
	"github.com/grachmannico95/ledger-engine/internal/config"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fs.SetOutput(stderr)
	decodeFlag := fs.String("decode", cfg.Ledger.DecodePolicy.String(), "malformed record policy: ignore, log or fail")
	errorsFlag := fs.String("errors", cfg.Ledger.ErrorPolicy.String(), "structural error policy: skip or strict")
	places := fs.Int("places", int(cfg.Ledger.RoundPlaces), "decimal places in the report, -1 for raw values")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ledger [flags] <transactions.csv>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	decodePolicy, err := codec.ParseDecodePolicy(*decodeFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	errorPolicy, err := ledger.ParseErrorPolicy(*errorsFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logger.New(cfg.Logging.Level).Named("ledger")
	defer log.Sync()

	path := fs.Arg(0)
	file, err := os.Open(path)
	if err != nil {
		log.Error(ctx, "Failed to open input",
			"path", path,
			"error", err,
		)
		return 1
	}
	defer file.Close()

	reader := codec.NewActionReader(bufio.NewReader(file), decodePolicy,
		codec.WithReaderLogger(log),
	)
	engine := ledger.NewSequentialEngine(
		ledger.WithErrorPolicy(errorPolicy),
		ledger.WithRoundPlaces(int32(*places)),
		ledger.WithLogger(log),
	)

	err = engine.ProcessAll(ctx, reader.Actions(ctx))
	if err == nil {
		err = reader.Err()
	}
	if err != nil {
		log.Error(ctx, "Processing stopped",
			"path", path,
			"error", err,
		)
		return 1
	}

	out := bufio.NewWriter(stdout)
	err = codec.WriteAccounts(out, engine.State().Accounts(int32(*places)))
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		log.Error(ctx, "Failed to write report",
			"error", err,
		)
		return 1
	}

	log.Debug(ctx, "Report written",
		"decoded", reader.Decoded(),
		"rejected", reader.Skipped(),
	)

	return 0
}
