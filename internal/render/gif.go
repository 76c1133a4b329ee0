package render

import (
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/solitaire-go/internal/errors"
	"github.com/lgbarn/solitaire-go/internal/solver"
	"github.com/lgbarn/solitaire-go/internal/worker"
)

// GIF writes the whole solution as a single looping animation named
// solution.gif in the output folder. Every move contributes two frames:
// the board as it stands, then the same board with the jump's source and
// destination highlighted; the winning position is the last frame.
//
// Frame composition is pixel work and parallelizes well, so it runs on the
// worker pool; the encoder then assembles the frames in sequence order.
func (r *Renderer) GIF(sol *solver.Solution) error {
	items := gifWorkItems(sol)

	pool := worker.NewPool(
		func(item worker.WorkItem) worker.FrameResult {
			img := composeFrame(item.Step, r.cfg.TileSize, item.Highlight)
			return worker.FrameResult{Index: item.Index, Image: img}
		},
		worker.WithWorkers(r.cfg.Workers),
		worker.WithBufferSize(len(items)),
	)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	frames := make([]worker.FrameResult, 0, len(items))
	for res := range pool.Results() {
		if res.Err != nil {
			pool.Stop()
			return errors.Wrap(res.Err, "composing frame")
		}
		frames = append(frames, res)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Index < frames[j].Index })

	anim := &gif.GIF{LoopCount: 0}
	for _, fr := range frames {
		anim.Image = append(anim.Image, toPaletted(fr.Image.(*image.RGBA)))
		anim.Delay = append(anim.Delay, r.cfg.FrameDelay)
	}

	name := filepath.Join(r.cfg.OutputDir, "solution.gif")
	f, err := os.Create(name) //nolint:gosec // G304: writes into the user-chosen output folder
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close() //nolint:errcheck,gosec // G104: encode error takes precedence
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"frames": len(frames),
		"file":   name,
	}).Info("solution animation written")
	return nil
}

// gifWorkItems expands the solution steps into the frame sequence: a plain
// and a highlighted frame per move, and a single final frame.
func gifWorkItems(sol *solver.Solution) []worker.WorkItem {
	var items []worker.WorkItem
	for _, step := range sol.Replay() {
		items = append(items, worker.WorkItem{Step: step, Index: len(items)})
		if !step.Final {
			items = append(items, worker.WorkItem{Step: step, Index: len(items), Highlight: true})
		}
	}
	return items
}
