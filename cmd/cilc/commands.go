package main

import (
	"bytes"
	"encoding/hex"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/cil-codec/errors"
	"github.com/wippyai/cil-codec/internal/config"
	"github.com/wippyai/cil-codec/internal/listing"
)

func (a *app) printListing(in *input) error {
	l, err := listing.Build(in.body, a.table)
	if err != nil {
		return err
	}
	if a.cfg.Output.Format == config.FormatYAML {
		return listing.WriteYAML(a.out, l)
	}
	return listing.Render(a.out, l, a.color())
}

// printEncoded writes the re-encoded bytes after a text listing.
func (a *app) printEncoded(in *input) error {
	out, err := a.encode(in)
	if err != nil {
		return err
	}
	if a.cfg.Output.Format == config.FormatText {
		a.printf("\n%d -> %d bytes\n%s\n", len(in.original), len(out), hex.EncodeToString(out))
	}
	return nil
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Decode the input and print a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			return a.printListing(in)
		},
	}
}

func newRoundtripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip",
		Short: "Decode and re-encode the input, then compare the bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			out, err := a.encode(in)
			if err != nil {
				return err
			}

			if bytes.Equal(out, in.original) {
				a.printf("identical, %d bytes\n", len(out))
				return nil
			}
			at := mismatch(out, in.original)
			a.log.Info("round trip differs", zap.Int("at", at), zap.Int("got", len(out)), zap.Int("want", len(in.original)))
			a.printf("got  %s\nwant %s\n", hex.EncodeToString(out), hex.EncodeToString(in.original))
			return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
				Value(at).
				Detail("re-encoded body differs from the input at byte %d", at).
				Build()
		},
	}
}

func mismatch(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expand",
		Short: "Rewrite short and macro forms to their long forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			in.body.Instructions.ExpandMacros()
			if err := a.printListing(in); err != nil {
				return err
			}
			return a.printEncoded(in)
		},
	}
}

func newOptimizeCmd(a *app) *cobra.Command {
	var fixedPoint bool
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Rewrite instructions to their shortest forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fixed-point") {
				fixedPoint = a.cfg.Optimize.FixedPoint
			}

			if fixedPoint {
				passes := in.body.Instructions.OptimizeMacrosFixedPoint()
				a.log.Debug("optimizer converged", zap.Int("passes", passes))
			} else {
				in.body.Instructions.OptimizeMacros()
			}
			if err := a.printListing(in); err != nil {
				return err
			}
			return a.printEncoded(in)
		},
	}
	cmd.Flags().BoolVar(&fixedPoint, "fixed-point", false, "repeat passes until the size stops shrinking (default from config)")
	return cmd
}

func newMaxStackCmd(a *app) *cobra.Command {
	var update bool
	cmd := &cobra.Command{
		Use:   "maxstack",
		Short: "Compute the maximum evaluation stack depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			declared := in.body.MaxStack
			n, err := in.body.ComputeMaxStack()
			if err != nil {
				return err
			}
			a.printf("max stack %d, header declares %d\n", n, declared)

			if !update {
				return nil
			}
			if err := in.body.UpdateMaxStack(); err != nil {
				return err
			}
			return a.printEncoded(in)
		},
	}
	cmd.Flags().BoolVar(&update, "update", false, "store the computed value and print the re-encoded body")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every branch target and handler boundary is in the body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			verr := in.body.VerifyLabels()
			if verr == nil {
				a.printf("labels ok, %d instructions, %d handlers\n", in.body.Instructions.Len(), len(in.body.ExceptionHandlers))
				return nil
			}
			for _, e := range multierr.Errors(verr) {
				a.printf("%v\n", e)
			}
			return verr
		},
	}
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the decoded body interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBody()
			if err != nil {
				return err
			}
			return runBrowser(a, in)
		},
	}
}
