// Package export turns a rendered page layout into a downloadable
// document.
//
// The pipeline is a small stage machine: Idle -> Capturing (rasterize the
// page at a fixed oversampling factor) -> Encoding (JPEG at maximum
// quality, embedded into one fixed-size PDF page) -> Done. Any stage
// error lands in Failed with the stage recorded; nothing is retried
// automatically and a later export starts over from Idle. Overlapping
// export requests serialize on the pipeline: one instance is shared by
// every request. A separate Printer composes the same layout as vector
// PDF without rasterizing.
package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/resumekit/resumekit/internal/template"
)

type Stage string

const (
	StageIdle      Stage = "idle"
	StageCapturing Stage = "capturing"
	StageEncoding  Stage = "encoding"
	StageDone      Stage = "done"
	StageFailed    Stage = "failed"
)

// StageError reports a pipeline failure together with the stage it
// happened in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("export failed while %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Artifact is the finished output document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Pipeline struct {
	raster *Rasterizer

	// mu serializes whole export runs; stageMu guards the stage field so
	// Stage stays observable while an export is in flight.
	mu      sync.Mutex
	stageMu sync.Mutex
	stage   Stage
}

func NewPipeline(oversample int) (*Pipeline, error) {
	raster, err := NewRasterizer(oversample)
	if err != nil {
		return nil, err
	}
	return &Pipeline{raster: raster, stage: StageIdle}, nil
}

// Stage reports the current stage: the one in flight during an export,
// otherwise the stage the last export ended in (or Idle).
func (p *Pipeline) Stage() Stage {
	p.stageMu.Lock()
	defer p.stageMu.Unlock()
	return p.stage
}

// transition validates a stage change; an invalid one indicates a caller
// bug, not an export failure.
func (p *Pipeline) transition(to Stage) error {
	p.stageMu.Lock()
	defer p.stageMu.Unlock()

	allowed := false
	switch p.stage {
	case StageIdle:
		allowed = to == StageCapturing
	case StageCapturing:
		allowed = to == StageEncoding || to == StageFailed
	case StageEncoding:
		allowed = to == StageDone || to == StageFailed
	case StageDone, StageFailed:
		allowed = to == StageIdle
	}
	if !allowed {
		return fmt.Errorf("invalid export transition: %s -> %s", p.stage, to)
	}
	p.stage = to
	return nil
}

func (p *Pipeline) fail(stage Stage, err error) error {
	p.stageMu.Lock()
	p.stage = StageFailed
	p.stageMu.Unlock()
	return &StageError{Stage: stage, Err: err}
}

// Export runs one full pass over the given rendered page. The page is a
// snapshot: if the document mutates while capture is in flight, the
// artifact shows the page as it was handed in. That race is accepted for
// a single-user session and deliberately not locked away.
func (p *Pipeline) Export(ctx context.Context, pg *template.Page, fullName string) (*Artifact, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stage := p.Stage(); stage == StageDone || stage == StageFailed {
		if err := p.transition(StageIdle); err != nil {
			return nil, err
		}
	}

	if err := p.transition(StageCapturing); err != nil {
		return nil, err
	}
	if pg == nil {
		return nil, p.fail(StageCapturing, fmt.Errorf("no rendered page region available"))
	}
	img, err := p.raster.Rasterize(ctx, pg)
	if err != nil {
		return nil, p.fail(StageCapturing, err)
	}

	if err := p.transition(StageEncoding); err != nil {
		return nil, err
	}
	jpegData, err := encodeJPEG(img)
	if err != nil {
		return nil, p.fail(StageEncoding, err)
	}
	pdfData, err := composePDF(jpegData)
	if err != nil {
		return nil, p.fail(StageEncoding, err)
	}

	if err := p.transition(StageDone); err != nil {
		return nil, err
	}
	return &Artifact{
		Filename:    Filename(fullName),
		ContentType: "application/pdf",
		Data:        pdfData,
	}, nil
}
