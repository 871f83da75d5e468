// SPDX-License-Identifier: MIT
// Command bookembed reads a book-embedding challenge instance, searches for
// a low-crossing embedding, and writes the best one found.
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookembed/anneal"
	"github.com/katalvlaran/bookembed/bestfound"
	"github.com/katalvlaran/bookembed/bookfmt"
	"github.com/katalvlaran/bookembed/crossing"
	"github.com/katalvlaran/bookembed/internal/cliutil"
)

// errUsage marks a missing or surplus positional argument: usage has
// already been printed by Args, and the process must still exit 0, not 1,
// matching the original engine's invocation contract.
var errUsage = errors.New("bookembed: usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(0)
		}
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		input   string
		seed    int64
	)

	root := &cobra.Command{
		Use:          "bookembed OUTPUT",
		Short:        "Search for a low-crossing book embedding of a graph",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				cmd.Println(cmd.UsageString())
				return errUsage
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(cliutil.WithLogger(cmd.Context(), cliutil.NewLogger(os.Stderr, level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), input, args[0], seed)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&input, "input", "i", "-", "challenge-format input file, or - for stdin")
	root.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 draws a fresh seed from the OS CSPRNG")

	return root
}

func runSearch(ctx context.Context, input, output string, seed int64) error {
	log := cliutil.FromContext(ctx)

	in := os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("bookembed: open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := bookfmt.Read(in)
	if err != nil {
		return fmt.Errorf("bookembed: read graph: %w", err)
	}
	log.Infof("loaded graph: %d vertices, %d edges, %d pages, %d initial crossings",
		g.N(), g.M(), g.Pages, crossing.Total(g))

	if seed == 0 {
		seed, err = freshSeed()
		if err != nil {
			return fmt.Errorf("bookembed: draw seed: %w", err)
		}
	}
	log.Debugf("using rng seed %d", seed)
	rng := mrand.New(mrand.NewSource(seed))

	best := bestfound.NewTracker(output, g)
	progress := cliutil.NewProgress(log)
	final := anneal.Search(g, best, rng)
	progress.Done(fmt.Sprintf("search finished with %d crossings", final))

	return nil
}

// freshSeed draws a 63-bit seed from the OS CSPRNG, since the engine must
// not reuse a fixed default seed across runs the way a deterministic test
// harness would.
func freshSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:]) >> 1), nil
}
