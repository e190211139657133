package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/elsgoossens/song-grid/config"
	"github.com/elsgoossens/song-grid/grid"
	canvasrenderer "github.com/elsgoossens/song-grid/renderer/canvas"
	"github.com/elsgoossens/song-grid/rhythm"
	"github.com/elsgoossens/song-grid/server"
	"github.com/elsgoossens/song-grid/sheet"
)

const defaultConfigFile = "song-grid.yaml"

func main() {
	cmd := &cli.Command{
		Name:  "song-grid",
		Usage: "word-grid song sheets with per-word annotations, exported to PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				Sources: cli.EnvVars("SONG_GRID_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			renderCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// app bundles the loaded configuration with the renderer and page geometry
// derived from it.
type app struct {
	cfg      *config.Config
	renderer *canvasrenderer.Renderer
	geom     sheet.PageGeometry
}

func newApp(cmd *cli.Command) (*app, error) {
	cfg := config.NewDefault()
	if path := cmd.String("config"); path != "" {
		if err := config.Load(path, cfg); err != nil {
			return nil, err
		}
	} else if err := config.LoadOptional(defaultConfigFile, cfg); err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	})))

	r, err := canvasrenderer.New(canvasrenderer.Options{
		FontPath:     cfg.Font.Path,
		Family:       cfg.Font.Family,
		WordSizePt:   cfg.Font.WordSize,
		ChordSizePt:  cfg.Font.ChordSize,
		RhythmSizePt: cfg.Font.RhythmSize,
		NoteSizePt:   cfg.Font.NoteSize,
	})
	if err != nil {
		return nil, err
	}

	w, h, err := sheet.PageSize(cfg.Page.Size, cfg.Page.Orientation)
	if err != nil {
		return nil, err
	}
	geom := sheet.PageGeometry{
		WidthMM:  w,
		HeightMM: h,
		Margin: sheet.Margin{
			Top:    cfg.Page.Margin.Top,
			Right:  cfg.Page.Margin.Right,
			Bottom: cfg.Page.Margin.Bottom,
			Left:   cfg.Page.Margin.Left,
		},
		Scale: cfg.Page.Scale,
	}

	return &app{cfg: cfg, renderer: r, geom: geom}, nil
}

// displayValue substitutes glyph forms for kinds that render transformed.
func displayValue(kind grid.FieldKind, raw string) string {
	if kind == grid.FieldRhythm {
		return rhythm.Format(raw)
	}
	return raw
}

// newSession creates a session measured by the renderer, with the active
// kinds and container width taken from the configuration and geometry.
func (a *app) newSession() *grid.Session {
	s := grid.NewSession(a.renderer, displayValue)
	s.SetActive(grid.FieldChord, a.cfg.Fields.Chord)
	s.SetActive(grid.FieldRhythm, a.cfg.Fields.Rhythm)
	s.SetActive(grid.FieldNote, a.cfg.Fields.Note)
	s.SetContainerWidth(a.geom.ContentWidthPx() + grid.ContainerInsetPx)
	return s
}

func (a *app) meta(title string) sheet.Meta {
	if a.cfg.Page.Title != "" {
		title = a.cfg.Page.Title
	}
	return sheet.Meta{
		Title:   title,
		Creator: "song-grid",
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render a text file to a paginated PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "input text file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output PDF path",
				Value: "output/song.pdf",
			},
			&cli.StringFlag{
				Name:  "debug",
				Usage: "write the assembled document as JSON to this path",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "re-render whenever the input file changes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			in := cmd.String("in")
			out := cmd.String("out")
			debug := cmd.String("debug")

			if err := renderOnce(ctx, a, in, out, debug); err != nil {
				return err
			}
			if !cmd.Bool("watch") {
				return nil
			}
			return watchAndRender(ctx, a, in, out, debug)
		},
	}
}

// renderOnce runs the full pipeline: text to grid snapshot to paginated
// document to PDF file.
func renderOnce(ctx context.Context, a *app, in, out, debug string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input %s: %w", in, err)
	}

	session := a.newSession()
	session.SetText(string(data))

	title := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	doc := sheet.Compose(session.Snapshot(), a.renderer.Style(), a.geom,
		a.meta(title), a.cfg.Page.Header, a.cfg.Page.Footer)

	if debug != "" {
		if err := os.MkdirAll(filepath.Dir(debug), 0o755); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		if err := sheet.WriteDebugJSON(doc, debug); err != nil {
			return err
		}
	}

	pdfBytes, err := a.renderer.Export(ctx, doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write pdf %s: %w", out, err)
	}

	slog.Info("rendered", "in", in, "out", out, "pages", len(doc.Pages))
	return nil
}

// watchAndRender re-renders on changes to the input file, debounced so a
// burst of editor writes triggers a single render.
func watchAndRender(ctx context.Context, a *app, in, out, debug string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(in)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(in), err)
	}
	slog.Info("watching for changes", "file", in)

	target := filepath.Clean(in)
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending {
				debounce.Stop()
			}
			debounce.Reset(200 * time.Millisecond)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		case <-debounce.C:
			pending = false
			if err := renderOnce(ctx, a, in, out, debug); err != nil {
				slog.Error("render failed", "error", err)
			}
		}
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the interactive editing API",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			session := a.newSession()
			svc := server.NewService(session, a.renderer, a.renderer.Style(),
				a.geom, a.meta("song"), a.cfg.Page.Header, a.cfg.Page.Footer)

			httpServer := &http.Server{
				Addr:              a.cfg.App.HTTP.Address(),
				Handler:           server.NewRouter(svc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				slog.Info("http server listening", "addr", httpServer.Addr)
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				slog.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
}
