package jobs

import (
	"context"
	"time"
)

type Rotatable interface {
	MaybeRotate()
}

// SeedRotation periodically asks the entropy source to roll its server
// seed. The source itself decides whether the rotation window has passed.
type SeedRotation struct {
	Source   Rotatable
	Interval time.Duration
}

func (j *SeedRotation) Start(ctx context.Context) {
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Source.MaybeRotate()
		}
	}
}
