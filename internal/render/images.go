package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/solitaire-go/internal/solver"
)

// Images writes one PNG per solution step into the output folder, named
// solution_001.png onward. Steps are independent, so they are rendered
// and written concurrently.
func (r *Renderer) Images(sol *solver.Solution) error {
	steps := sol.Replay()

	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)

	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			name := filepath.Join(r.cfg.OutputDir, fmt.Sprintf("solution_%03d.png", i+1))
			if err := writePNG(name, step, r.cfg.TileSize); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			r.log.WithField("file", name).Debug("wrote image")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"steps":  len(steps),
		"folder": r.cfg.OutputDir,
	}).Info("solution images written")
	return nil
}

// writePNG composes a single step frame and saves it.
func writePNG(name string, step solver.Step, tile int) error {
	img := composeFrame(step, tile, false)

	f, err := os.Create(name) //nolint:gosec // G304: writes into the user-chosen output folder
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close() //nolint:errcheck,gosec // G104: encode error takes precedence
		return err
	}
	return f.Close()
}
