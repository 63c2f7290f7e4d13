package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/flattree"
	"github.com/hupe1980/flattree/blobstore"
	"github.com/hupe1980/flattree/blobstore/leveldb"
	"github.com/hupe1980/flattree/codec"
	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/element"
	"github.com/hupe1980/flattree/persistence"
	"github.com/hupe1980/flattree/tree"
)

var kind = element.Scalar[int64]{}

type globalFlags struct {
	store    string
	dir      string
	logLevel string
}

// open returns the configured blob store and a function releasing it.
func (g *globalFlags) open() (blobstore.BlobStore, func() error, error) {
	switch g.store {
	case "local":
		return blobstore.NewLocalStore(g.dir), func() error { return nil }, nil
	case "leveldb":
		s, err := leveldb.Open(g.dir)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want local or leveldb)", g.store)
	}
}

func (g *globalFlags) logger() (*flattree.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
	}
	return flattree.NewTextLogger(level), nil
}

// withStore runs fn against the configured store and logger.
func (g *globalFlags) withStore(ctx context.Context, fn func(ctx context.Context, store blobstore.BlobStore, logger *flattree.Logger) error) (err error) {
	logger, err := g.logger()
	if err != nil {
		return err
	}
	store, closeFn, err := g.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()
	return fn(ctx, store, logger)
}

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "flattree",
		Short:         "Flat array encodings for ordered trees",
		Version:       Version + " (" + Commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&g.store, "store", "local", "Blob store backend (local or leveldb)")
	rootCmd.PersistentFlags().StringVar(&g.dir, "dir", "./data", "Blob store directory")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newEncodeCmd(g),
		newQueryCmd(g),
		newPrintCmd(g),
		newInspectCmd(g),
		newListCmd(g),
	)
	return rootCmd
}

func newEncodeCmd(g *globalFlags) *cobra.Command {
	var (
		in          string
		name        string
		variant     string
		sentinel    int64
		compression string
		threshold   uint64
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON tree document and store it",
		Long: `Reads a tree of int64 values in the form
{"value": 0, "children": [{"value": 1}, {"value": 2}]}
and stores its flat encoding under --name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := core.ParseVariant(variant)
			if err != nil {
				return err
			}
			c, err := persistence.ParseCompression(compression)
			if err != nil {
				return err
			}

			var data []byte
			if in == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(in)
			}
			if err != nil {
				return err
			}
			root, err := codec.UnmarshalTree[int64](codec.Default, data)
			if err != nil {
				return err
			}

			return g.withStore(cmd.Context(), func(ctx context.Context, store blobstore.BlobStore, logger *flattree.Logger) error {
				enc, err := flattree.EncodeNode(root, sentinel, kind,
					flattree.WithVariant(v),
					flattree.WithBitmapThreshold(threshold),
					flattree.WithLogger(logger),
				)
				if err != nil {
					return err
				}
				if err := flattree.Save(ctx, store, name, enc, flattree.WithCompression(c), flattree.WithLogger(logger)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s: variant=%s nodes=%d max_children=%d\n",
					name, enc.Variant(), enc.NodeCount(), enc.MaxChildren())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Input JSON file (- for stdin)")
	cmd.Flags().StringVar(&name, "name", "", "Blob name")
	cmd.Flags().StringVar(&variant, "variant", "auto", "Encoding (auto, fixed-slot, bitmap, compact)")
	cmd.Flags().Int64Var(&sentinel, "sentinel", -1, "Marker for empty fixed-slot children")
	cmd.Flags().StringVar(&compression, "compression", "none", "Body compression (none, lz4, zstd)")
	cmd.Flags().Uint64Var(&threshold, "bitmap-threshold", flattree.DefaultBitmapThreshold, "Fan-out from which auto picks bitmap")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newQueryCmd(g *globalFlags) *cobra.Command {
	var (
		name string
		path []int64
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the children of the node reached by a value path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withStore(cmd.Context(), func(ctx context.Context, store blobstore.BlobStore, logger *flattree.Logger) error {
				enc, err := flattree.Load(ctx, store, name, kind, flattree.WithLogger(logger))
				if err != nil {
					return err
				}
				children, ok := flattree.Query(ctx, enc, path, flattree.WithLogger(logger))
				if !ok {
					return fmt.Errorf("path %v not found", path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), children)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Blob name")
	cmd.Flags().Int64SliceVar(&path, "path", nil, "Comma separated value path starting at the root")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newPrintCmd(g *globalFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Decode a stored encoding and render the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withStore(cmd.Context(), func(ctx context.Context, store blobstore.BlobStore, logger *flattree.Logger) error {
				enc, err := flattree.Load(ctx, store, name, kind, flattree.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tree.Print(flattree.Decode(enc)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Blob name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newInspectCmd(g *globalFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the header of a stored encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withStore(cmd.Context(), func(ctx context.Context, store blobstore.BlobStore, _ *flattree.Logger) error {
				info, err := flattree.Stat(ctx, store, name)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "name:         %s\n", info.Name)
				fmt.Fprintf(w, "size:         %d\n", info.Size)
				fmt.Fprintf(w, "version:      %d\n", info.Version)
				fmt.Fprintf(w, "variant:      %s\n", info.Variant)
				fmt.Fprintf(w, "compression:  %s\n", info.Compression)
				fmt.Fprintf(w, "elements:     %s\n", info.Encoding)
				if info.CodecName != "" {
					fmt.Fprintf(w, "codec:        %s\n", info.CodecName)
				}
				fmt.Fprintf(w, "element size: %d\n", info.ElementSize)
				fmt.Fprintf(w, "body:         %d (raw %d)\n", info.BodyLen, info.RawLen)
				fmt.Fprintf(w, "checksum:     %08x\n", info.Checksum)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Blob name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newListCmd(g *globalFlags) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored encodings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withStore(cmd.Context(), func(ctx context.Context, store blobstore.BlobStore, _ *flattree.Logger) error {
				names, err := store.List(ctx, prefix)
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list names with this prefix")

	return cmd
}
