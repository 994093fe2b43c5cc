//go:build !noebiten

package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/opd-ai/creographics/internal/host"
	"github.com/opd-ai/creographics/pkg/editor"
)

type editOpts struct {
	image     string
	watch     bool
	debugAddr string
}

func newEditCmd(a *app) *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [project.json]",
		Short: "Open the editor window",
		Long: `Edit opens the editor window. When a project file is given it is loaded if it
exists, and Ctrl+S / Ctrl+O save to and reload from it. Text for the text tool
is read from the terminal. Images are placed from --image or from a file
dropped onto the window.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := ""
			if len(args) == 1 {
				project = args[0]
			}
			return a.runEdit(cmd.Context(), project, opts)
		},
	}

	cmd.Flags().StringVar(&opts.image, "image", "", "image file placed by the image tool")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload --config when it changes")
	cmd.Flags().StringVar(&opts.debugAddr, "debug-addr", "", "serve metrics at http://<addr>/debug/vars")
	return cmd
}

func (a *app) runEdit(ctx context.Context, project string, opts editOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}
	assets := editor.NewFileAssetLoader(nil)
	assets.SetPath(opts.image)

	sessOpts := editor.DefaultOptions()
	sessOpts.Prompter = editor.NewLinePrompter(a.stdin, a.stdout)
	sessOpts.Assets = assets
	sessOpts.WatchConfig = opts.watch
	sessOpts.ErrorHandler = func(err error) {
		fmt.Fprintf(a.stderr, "Warning: %v\n", err)
	}

	s, err := a.newSession(sessOpts)
	if err != nil {
		return err
	}
	defer s.Close()

	if project != "" {
		err := s.LoadFile(project)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			a.logger.Info("new project", "file", project)
		default:
			return fmt.Errorf("load project: %w", err)
		}
	}

	if opts.debugAddr != "" {
		stop, err := serveMetrics(s.Metrics(), opts.debugAddr)
		if err != nil {
			return err
		}
		defer stop()
		a.logger.Info("serving metrics", "url", "http://"+opts.debugAddr+"/debug/vars")
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	a.reloadOnHangup(ctx, s)

	game := host.NewGame(s, host.Options{
		Title:       "creographics",
		ProjectPath: project,
		Drops:       assets,
		Logger:      a.logger,
	})
	game.SetContext(ctx)
	return game.Run()
}

// reloadOnHangup re-reads the configuration on SIGHUP. The reload is queued
// so it runs on the window's goroutine.
func (a *app) reloadOnHangup(ctx context.Context, s *editor.Session) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				a.logger.Info("received SIGHUP, reloading configuration")
				s.Post(func() {
					if err := s.ReloadConfig(); err != nil {
						a.logger.Warn("reload failed", "error", err)
					}
				})
			}
		}
	}()
}

// serveMetrics publishes m through expvar and serves it on addr.
func serveMetrics(m *editor.Metrics, addr string) (stop func(), err error) {
	m.RegisterExpvar()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/debug/vars", expvar.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go srv.Serve(ln)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}, nil
}
