package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/opd-ai/creographics/internal/profiling"
	"github.com/opd-ai/creographics/pkg/editor"
)

// app carries the global flags and streams shared by every command.
type app struct {
	verbose    bool
	configPath string
	prof       profiling.Config
	profiler   *profiling.Profiler
	logger     editor.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: editor.NopLogger()}

	root := &cobra.Command{
		Use:           "creographics",
		Short:         "A layered 2D scene editor",
		Long:          `creographics edits layered vector-and-bitmap scenes with pointer-driven tools, and renders saved projects to PNG.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = editor.NewTextLogger(a.stderr, slog.LevelInfo)
			if a.verbose {
				a.logger = editor.DebugLogger()
			}
			if !a.prof.Enabled() {
				return nil
			}
			a.profiler = profiling.New(a.prof)
			return a.profiler.Start()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.profiler == nil {
				return nil
			}
			return a.profiler.Stop()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("creographics {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&a.configPath, "config", "c", "", "editor configuration file (Lua or TOML)")
	flags.StringVar(&a.prof.CPUProfilePath, "cpuprofile", "", "write a CPU profile to file")
	flags.StringVar(&a.prof.MemProfilePath, "memprofile", "", "write a heap profile to file on exit")

	root.AddCommand(newEditCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newVersionCmd(a))

	return root
}
