package queue

import (
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name     string
	capacity int
}

// benchConfigs defines the queue sizes for benchmarking.
var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

// queueImplementations holds all registered queue implementations.
var queueImplementations = map[string]queueFactory{
	"Bounded": func(capacity int) Queue[int] { return NewBounded[int](capacity) },
	"Chan":    func(capacity int) Queue[int] { return NewChan[int](capacity) },
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

// BenchmarkTryPut measures non-blocking insert performance.
func BenchmarkTryPut(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.TryPut(i)
					// Drain to avoid a full queue
					if i%cfg.capacity == cfg.capacity-1 {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.TryGet()
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkTryGet measures non-blocking remove performance.
func BenchmarkTryGet(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				for j := 0; j < cfg.capacity; j++ {
					q.TryPut(j)
				}
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, ok := q.TryGet(); !ok {
						// Refill when drained
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.TryPut(j)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// ===========================================================================
// Concurrent Benchmarks
// ===========================================================================

// BenchmarkPingPong measures blocking hand-off through a tight bound
// between one producer and one consumer.
func BenchmarkPingPong(b *testing.B) {
	q := NewBounded[int](1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < b.N; i++ {
			q.Get()
		}
	}()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Put(i)
	}
	wg.Wait()
}

// BenchmarkContended measures TryPut/TryGet under parallel mixed load.
func BenchmarkContended(b *testing.B) {
	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory(1024)
			b.ResetTimer()
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					if i&1 == 0 {
						q.TryPut(i)
					} else {
						q.TryGet()
					}
					i++
				}
			})
		})
	}
}
