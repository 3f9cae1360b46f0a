package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pow-ledger/config"
	"github.com/luca-patrignani/pow-ledger/ledger"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	logger := newLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	panels := strings.EqualFold(cfg.Output, "panels")
	if panels {
		printTitle()
	}

	bc := ledger.NewBlockchain(ledger.WithLogger(logger))
	logger.Info("genesis block created", "hash", bc.GetLatest().Hash())

	for _, entry := range cfg.Chain.Entries {
		if !panels {
			if _, err := appendEntry(ctx, bc, entry, cfg.PowTimeoutDuration()); err != nil {
				return err
			}
			continue
		}

		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Mining block %d ...", bc.GetLatest().Index()+1))
		b, err := appendEntry(ctx, bc, entry, cfg.PowTimeoutDuration())
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success(fmt.Sprintf("Block %d mined with proof %d", b.Index(), b.Proof()))
	}

	verr := bc.Verify()
	if verr != nil {
		logger.Warn("chain failed verification", "error", verr)
	}

	if !panels {
		return writeJSON(out, bc.Blocks(), verr)
	}
	printChain(bc.Blocks())
	printVerdict(verr)
	return nil
}

// appendEntry appends entry to bc, giving up after timeout when it is
// positive.
func appendEntry(ctx context.Context, bc *ledger.Blockchain, entry string, timeout time.Duration) (ledger.Block, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return bc.AppendContext(ctx, entry)
}
