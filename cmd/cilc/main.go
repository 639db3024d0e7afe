// Command cilc inspects and rewrites CIL method bodies.
//
//	cilc dump --hex "0a 17 2a"
//	cilc optimize --file body.bin --fixed-point
//	cilc browse --file body.bin
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/cil-codec/cil"
	"github.com/wippyai/cil-codec/internal/config"
	"github.com/wippyai/cil-codec/metadata"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	hex        string
	file       string
	format     string
	logLevel   string
	rawCode    bool
}

// app carries the state shared by every sub-command.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	table *metadata.Table
	out   io.Writer
	errw  io.Writer
	opts  options
}

func newRootCmd(out, errw io.Writer) *cobra.Command {
	a := &app{out: out, errw: errw}

	root := &cobra.Command{
		Use:           "cilc",
		Short:         "Decode, inspect and re-encode CIL method bodies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(errw)

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "path to cilc.toml (default: search upwards from the working directory)")
	flags.StringVar(&a.opts.hex, "hex", "", "input bytes as hex, whitespace allowed")
	flags.StringVar(&a.opts.file, "file", "", "input file holding a method body")
	flags.BoolVar(&a.opts.rawCode, "raw-code", false, "input is bare code without a method header")
	flags.StringVar(&a.opts.format, "format", "", "listing format: text or yaml")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.MarkFlagsMutuallyExclusive("hex", "file")

	root.AddCommand(
		newDumpCmd(a),
		newRoundtripCmd(a),
		newExpandCmd(a),
		newOptimizeCmd(a),
		newMaxStackCmd(a),
		newVerifyCmd(a),
		newBrowseCmd(a),
	)
	return root
}

func (a *app) setup() error {
	var err error
	if a.opts.configPath != "" {
		a.cfg, err = config.Load(a.opts.configPath)
	} else {
		a.cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}
	if a.opts.format != "" {
		a.cfg.Output.Format = a.opts.format
	}
	if a.opts.logLevel != "" {
		a.cfg.Log.Level = a.opts.logLevel
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := a.cfg.LogLevel()
	if err != nil {
		return err
	}
	a.log = newLogger(a.errw, level)
	cil.SetLogger(a.log.Named("cil"))

	a.table = metadata.NewTable(metadata.Options{Placeholders: true})
	strs, err := a.cfg.StringTokens()
	if err != nil {
		return err
	}
	for token, s := range strs {
		if err := a.table.SetString(token, s); err != nil {
			return err
		}
	}
	tableLog := a.log.Named("metadata")
	a.table.Subscribe(metadata.ObserverFunc(func(e metadata.Event) {
		tableLog.Debug("table event",
			zap.Stringer("type", e.Type),
			zap.Stringer("token", e.Token),
			zap.Any("value", e.Value))
	}))

	a.log.Debug("configuration loaded",
		zap.String("path", a.cfg.Path),
		zap.String("format", a.cfg.Output.Format),
		zap.Int("strings", len(strs)))
	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

// color reports whether listings written to out should be coloured.
func (a *app) color() bool {
	switch a.cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := a.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
