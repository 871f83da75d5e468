// SPDX-License-Identifier: MIT
// Command bookgen generates book-embedding challenge instances: complete
// graphs, complete multipartite graphs, hypercubes, circulants, and random
// graphs, written to stdout in the challenge format.
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookembed/bookfmt"
	"github.com/katalvlaran/bookembed/bookgraph"
	"github.com/katalvlaran/bookembed/gengraph"
	"github.com/katalvlaran/bookembed/internal/cliutil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "bookgen",
		Short:        "Generate book-embedding challenge instances",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(cliutil.WithLogger(context.Background(), cliutil.NewLogger(os.Stderr, level)))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompleteCmd(), newTpartiteCmd(), newHypercubeCmd(), newCirculantCmd(), newRandomCmd())
	return root
}

func newCompleteCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "complete n",
		Short: "Generate the complete graph K_n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			g, err := gengraph.Complete(n, pages)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages")
	return cmd
}

func newTpartiteCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "tpartite partSize parts",
		Short: "Generate the complete multipartite graph with equal part sizes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			partSize, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			parts, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			g, err := gengraph.CompleteMultipartite(partSize, parts, pages)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages")
	return cmd
}

func newHypercubeCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "hypercube d",
		Short: "Generate the d-dimensional hypercube graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			g, err := gengraph.Hypercube(d, pages)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages")
	return cmd
}

func newCirculantCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "circulant n lengths",
		Short: "Generate a circulant graph; lengths is a comma-separated list, e.g. 1,2,3",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			lengths, err := parseLengths(args[1])
			if err != nil {
				return err
			}
			g, err := gengraph.Circulant(n, pages, lengths, nil)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var pages int
	var seed int64
	cmd := &cobra.Command{
		Use:   "random n percent",
		Short: "Generate an Erdos-Renyi random graph with the given edge percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			percent, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed, err = freshSeed()
				if err != nil {
					return err
				}
			}
			rng := mrand.New(mrand.NewSource(seed))
			g, err := gengraph.Random(n, pages, percent, rng)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 draws a fresh seed from the OS CSPRNG")
	return cmd
}

func parseLengths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	lengths := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bookgen: bad edge length %q: %w", p, err)
		}
		lengths = append(lengths, v)
	}
	return lengths, nil
}

func emit(cmd *cobra.Command, g *bookgraph.Graph) error {
	return bookfmt.Write(os.Stdout, g)
}

func freshSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:]) >> 1), nil
}
