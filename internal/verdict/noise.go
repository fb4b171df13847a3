package verdict

import (
	"math/rand"
	"sync"
)

// Noise perturbs analyzer confidences by a small injected amount. The
// default pipeline uses NopNoise so identical input always scores
// identically; SeededNoise is opt-in for demos that want varied output.
type Noise interface {
	// Jitter returns a signed confidence offset
	Jitter() float64
}

// NopNoise is the deterministic default
type NopNoise struct{}

func (NopNoise) Jitter() float64 { return 0 }

// SeededNoise draws uniform offsets in [-span, span] from a seeded source.
// Safe for concurrent use.
type SeededNoise struct {
	mu   sync.Mutex
	rng  *rand.Rand
	span float64
}

func NewSeededNoise(seed int64, span float64) *SeededNoise {
	return &SeededNoise{rng: rand.New(rand.NewSource(seed)), span: span}
}

func (n *SeededNoise) Jitter() float64 {
	if n.span <= 0 {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return (n.rng.Float64()*2 - 1) * n.span
}
