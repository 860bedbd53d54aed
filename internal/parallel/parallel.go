// Package parallel splits index ranges across goroutines.
//
// It is used only to evaluate pure getters into disjoint slots. Writes
// through an OVec stay sequential so their canonical order is kept.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel evaluation.
type Config struct {
	Enabled      bool // Whether to use more than one goroutine.
	NumWorkers   int  // Upper bound on goroutines.
	MinChunkSize int  // Minimum indices per goroutine.
}

// DefaultConfig returns a config using every CPU.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunks returns the chunk size For would use for n indices, or n when it
// runs sequentially.
func (c Config) chunks(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < 2*c.MinChunkSize {
		return n
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// For calls f(lo, hi) over disjoint half-open chunks covering [0, n) and
// returns when every call has returned. f must be safe for concurrent use
// when cfg is enabled.
func For(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	size := cfg.chunks(n)
	if size >= n {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(lo, hi)
		}()
	}
	wg.Wait()
}
