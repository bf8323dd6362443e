package confetti

import (
	"context"
	"fmt"
	"time"
)

// RunLoop calls tick once per frame interval until it returns Done or ctx
// is cancelled. The first tick runs immediately. Ticks never overlap: the
// next one is only waited for after the previous returned.
func RunLoop(ctx context.Context, frame time.Duration, tick func() StepResult) error {
	if frame <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", frame)
	}

	if tick() == Done {
		return nil
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if tick() == Done {
				return nil
			}
		}
	}
}
