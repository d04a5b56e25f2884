package generated

import (
	"runtime"
	"sync"

	"github.com/san-kum/slidescale/internal/calc"
	"github.com/san-kum/slidescale/internal/scale"
)

// BuildAll generates every definition concurrently. The result is in the
// same order as defs.
func BuildAll(defs []*scale.Definition, alg calc.Algorithm) []*Scale {
	out := make([]*Scale, len(defs))
	parallelFor(len(defs), 1, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = New(defs[i], alg)
		}
	})
	return out
}

// parallelFor splits [0, n) into contiguous chunks of at least minChunk and
// runs fn on each chunk in its own goroutine.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
