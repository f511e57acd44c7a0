package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"sole-exchange/internal/matching"
	model "sole-exchange/internal/models"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name          string
	NumMarkets    int
	ReadRatio     int
	MaxPriceDrift int
	Burst         bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_Exchange runs multiple scenarios
func Benchmark_Load_Exchange(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 5000, false},
		{"High-Contention-WriteHeavy", 10, 0, 2000, false},
		{"Mixed-Workload", 50, 7, 3000, false},
		{"ReadHeavy", 50, 9, 2000, false},
		{"Edge-Case-SingleMarket", 1, 5, 1000, false},
		{"Peak-Burst", 50, 0, 2000, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupExchange(s.NumMarkets)

	var totalOps, settledOffers, restingOffers, failedOffers, totalReads int64
	marketSettled := make([]int64, s.NumMarkets)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			marketIndex := rnd.Intn(s.NumMarkets)
			productID := fmt.Sprintf("product_%d", marketIndex)
			variantID := fmt.Sprintf("variant_%d", marketIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.GetBookSummary(productID, variantID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				price := int64(9000 + rnd.Intn(s.MaxPriceDrift))
				userID := fmt.Sprintf("user_%d", rnd.Int())

				var outcome matching.Outcome
				var err error
				if rnd.Intn(2) == 0 {
					var result matching.PlaceResult
					_, result, err = svc.PlaceBid(productID, variantID, userID, price, 0)
					outcome = result.Outcome
				} else {
					var result matching.PlaceResult
					_, result, err = svc.PlaceAsk(productID, variantID, userID, price, 0,
						model.ConditionNew, model.PackagingOriginalBox)
					outcome = result.Outcome
				}

				switch {
				case err != nil:
					b.Logf("ignored offer error: %v", err)
					atomic.AddInt64(&failedOffers, 1)
				case outcome == matching.OutcomeSettled:
					atomic.AddInt64(&settledOffers, 1)
					atomic.AddInt64(&marketSettled[marketIndex], 1)
				default:
					atomic.AddInt64(&restingOffers, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Markets: %d | Total Ops: %d | Settled: %d | Resting: %d | Failed: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumMarkets, totalOps, settledOffers, restingOffers, failedOffers, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range marketSettled {
		if v > 0 {
			b.Logf("Market %d settled orders: %d", i, v)
		}
	}
}
