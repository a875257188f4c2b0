// Command culldemo records a rotated grid of shapes, replays it through the
// scissor backend and reports how many draws culling removed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cull"
	"github.com/gogpu/cull/recording"
	"github.com/gogpu/cull/recording/backends/scissor"
)

// config holds the command line settings.
type config struct {
	width, height int
	grid          int
	rotate        float64
	recordCull    bool
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "viewport width")
	flag.IntVar(&cfg.height, "height", 600, "viewport height")
	flag.IntVar(&cfg.grid, "grid", 32, "number of tiles per grid side")
	flag.Float64Var(&cfg.rotate, "rotate", 30, "grid rotation in degrees")
	flag.BoolVar(&cfg.recordCull, "record-cull", false, "drop invisible draws while recording")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cull.SetLogger(logger)

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Error("culldemo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, out io.Writer) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", cfg.width, cfg.height)
	}
	if cfg.grid <= 0 {
		return fmt.Errorf("invalid grid size %d", cfg.grid)
	}

	viewport := cull.NewRect(0, 0, float64(cfg.width), float64(cfg.height))
	rec := recording.NewRecorder(viewport,
		recording.WithRecordCulling(cfg.recordCull),
		recording.WithRecorderLogger(logger))
	drawScene(rec, cfg)
	r := rec.FinishRecording()

	backend, err := recording.NewBackend("scissor")
	if err != nil {
		return err
	}
	stats, err := r.Playback(ctx, backend)
	if err != nil {
		return err
	}
	logger.Debug("playback finished", "commands", stats.Commands, "draws", stats.Draws)

	report(out, cfg, r, stats, backend.(*scissor.Backend))
	return nil
}

// tileSize is the distance between grid tiles in local units.
const tileSize = 40.0

// drawScene records a banner strip removed from the top of the viewport
// and a rotated grid of rects, rounded rects and circles centered on it.
func drawScene(rec *recording.Recorder, cfg config) {
	w, h := float64(cfg.width), float64(cfg.height)

	// The banner spans the full width, so the difference shrinks the cull
	// rect exactly.
	rec.ClipRect(cull.NewRectLTRB(0, 0, w, tileSize), cull.ClipDifference, false)

	rec.Save()
	rec.Translate(w/2, h/2)
	rec.Rotate(cfg.rotate)

	half := float64(cfg.grid) * tileSize / 2
	circle := cull.NewPath()
	circle.AddCircle(tileSize/2, tileSize/2, tileSize/3)

	for row := 0; row < cfg.grid; row++ {
		for col := 0; col < cfg.grid; col++ {
			rec.Save()
			rec.Translate(float64(col)*tileSize-half, float64(row)*tileSize-half)
			tile := cull.NewRect(4, 4, tileSize-8, tileSize-8)
			switch (row + col) % 3 {
			case 0:
				rec.DrawRect(tile)
			case 1:
				rec.DrawRRect(cull.NewRRect(tile, 6, 6))
			default:
				rec.DrawPath(circle)
			}
			rec.Restore()
		}
	}
	rec.Restore()
}

func report(out io.Writer, cfg config, r *recording.Recording, stats recording.PlaybackStats, sb *scissor.Backend) {
	p := message.NewPrinter(language.English)

	var area int64
	for _, s := range sb.Scissors() {
		area += int64(s.Extent.Width) * int64(s.Extent.Height)
	}
	issued := cfg.grid * cfg.grid

	p.Fprintf(out, "viewport:          %dx%d\n", cfg.width, cfg.height)
	p.Fprintf(out, "draws issued:      %d\n", issued)
	p.Fprintf(out, "culled recording:  %d\n", r.Culled())
	p.Fprintf(out, "culled playback:   %d\n", stats.Culled)
	p.Fprintf(out, "draws submitted:   %d (%.1f%%)\n", stats.Draws, 100*float64(stats.Draws)/float64(issued))
	p.Fprintf(out, "commands replayed: %d\n", stats.Commands)
	p.Fprintf(out, "scissor pixels:    %d\n", area)
}
