package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// BatchRequest is one entry in a concurrent batch: a target URL plus
// optional transport-option overrides applied on top of the client's
// option map. Per-entry keys win on collision; the client's map is
// never mutated.
type BatchRequest struct {
	URL     string
	Options map[Option]interface{}
}

// BatchResult captures the terminal state of one batch entry. Body is
// empty and Err non-nil when the transport failed.
type BatchResult struct {
	Index      int
	StatusCode int
	Body       string
	Duration   time.Duration
	Err        error
}

// Results is a position-indexed collection of batch outcomes, ordered
// to match the input regardless of completion order.
type Results []BatchResult

// Batch dispatches all entries concurrently and blocks until every one
// has reached a terminal state. One entry's failure does not cancel or
// affect its siblings. Entries sharing the client's cookie-jar path
// write to it with no ordering guarantee.
func (c *Client) Batch(entries []BatchRequest) Results {
	start := time.Now()
	results := make(Results, len(entries))

	run := func(i int) {
		entry := entries[i]
		opts := c.options
		if len(entry.Options) > 0 {
			opts = mergeOptions(c.options, entry.Options)
		}

		req := NewRequest(http.MethodGet, entry.URL)
		resp, err := c.send(req, opts)

		result := BatchResult{Index: i, Err: err}
		if resp != nil {
			result.StatusCode = resp.StatusCode
			result.Body = resp.Body
			result.Duration = resp.Duration
		}
		results[i] = result
	}

	var wg sync.WaitGroup
	if c.concurrency <= 0 {
		// Unbounded: every entry starts immediately.
		wg.Add(len(entries))
		for i := range entries {
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
	} else {
		workers := c.concurrency
		if workers > len(entries) {
			workers = len(entries)
		}
		jobs := make(chan int)
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range jobs {
					run(i)
				}
			}()
		}
		for i := range entries {
			jobs <- i
		}
		close(jobs)
	}
	wg.Wait()

	for _, result := range results {
		if result.StatusCode >= 400 {
			c.logger.Error(fmt.Sprintf("batch request %d returned status %d", result.Index, result.StatusCode))
		}
		if result.Err != nil {
			c.logger.Error(fmt.Sprintf("batch request %d failed: %v", result.Index, result.Err))
		}
	}

	c.logger.Debug(fmt.Sprintf("batch of %d completed in %s", len(entries), time.Since(start)))

	return results
}

// Bodies returns the raw bodies in input order, empty strings where the
// transport failed.
func (rs Results) Bodies() []string {
	bodies := make([]string, len(rs))
	for i, r := range rs {
		bodies[i] = r.Body
	}
	return bodies
}

// Summary aggregates a batch's outcomes. Latency percentiles cover
// entries that completed without a transport error.
type Summary struct {
	Total  int
	Failed int

	Min time.Duration
	Avg time.Duration
	P50 time.Duration
	P90 time.Duration
	P99 time.Duration
	Max time.Duration
}

// Summary computes aggregate counts and latency percentiles over the
// results using an HDR histogram with microsecond resolution.
func (rs Results) Summary() Summary {
	s := Summary{Total: len(rs)}

	hist := hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3)
	for _, r := range rs {
		if r.Err != nil || r.StatusCode >= 400 {
			s.Failed++
		}
		if r.Err == nil {
			_ = hist.RecordValue(r.Duration.Microseconds())
		}
	}

	if hist.TotalCount() > 0 {
		s.Min = time.Duration(hist.Min()) * time.Microsecond
		s.Max = time.Duration(hist.Max()) * time.Microsecond
		s.Avg = time.Duration(hist.Mean()) * time.Microsecond
		s.P50 = time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond
		s.P90 = time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond
		s.P99 = time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond
	}

	return s
}
