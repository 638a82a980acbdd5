package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/quadric/pkg/scene"
)

// EvalTimeout is the hard limit for a single scene evaluation.
const EvalTimeout = 5 * time.Second

// evalOutcome passes an evaluation result through a channel.
type evalOutcome struct {
	scene  *scene.Scene
	errors []EvalError
	err    error
}

// waitWithTimeout waits for an outcome from ch, returning a timeout
// error if evaluation exceeds EvalTimeout. The generation counter
// discards stale results: on timeout the goroutine may still be
// running, and a newer Evaluate call must not receive its output.
func waitWithTimeout(
	ch <-chan evalOutcome,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*scene.Scene, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.scene, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
