// Package frames writes rendered boards to numbered PNG files.
package frames

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifecanvas/internal/core"
)

// Recorder encodes captured frames concurrently. Capture is meant to be
// called from the simulation goroutine; encoding happens elsewhere.
type Recorder struct {
	dir     string
	eg      *errgroup.Group
	ctx     context.Context
	written atomic.Int64
}

// NewRecorder creates dir if needed and encodes with at most workers
// goroutines. The recorder stops accepting frames once ctx is done or an
// encode fails.
func NewRecorder(ctx context.Context, dir string, workers int) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create frame directory %s", dir)
	}
	if workers <= 0 {
		workers = 1
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	return &Recorder{dir: dir, eg: eg, ctx: ctx}, nil
}

// Path returns the file a frame number is written to.
func (r *Recorder) Path(frame int) string {
	return filepath.Join(r.dir, fmt.Sprintf("frame-%05d.png", frame))
}

// Capture queues img for encoding as frame. img must not be modified
// afterwards. It blocks while all workers are busy and reports false once
// the recorder has stopped.
func (r *Recorder) Capture(frame int, img image.Image) bool {
	if r.ctx.Err() != nil {
		return false
	}
	path := r.Path(frame)
	r.eg.Go(func() error {
		if err := writePNG(path, img); err != nil {
			return err
		}
		r.written.Add(1)
		core.Logger().Debug("frames: wrote frame", "path", path)
		return nil
	})
	return true
}

// Written returns the number of frames encoded so far.
func (r *Recorder) Written() int { return int(r.written.Load()) }

// Close waits for queued frames and returns the first encode error.
func (r *Recorder) Close() error {
	return r.eg.Wait()
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}
