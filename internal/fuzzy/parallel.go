package fuzzy

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// serialThreshold is the candidate count below which chunked matching costs
// more than it saves.
const serialThreshold = 256

// matchAll scores every candidate, splitting large sets across workers.
// Results are unordered; Match sorts them afterwards.
func (m *Matcher) matchAll(ctx context.Context, queryRunes []rune, caseSensitive bool, candidates []Candidate) []Match {
	workers := m.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if len(candidates) < serialThreshold || workers == 1 {
		return m.matchChunk(ctx, queryRunes, caseSensitive, candidates)
	}

	chunkSize := (len(candidates) + workers - 1) / workers

	var (
		mu        sync.Mutex
		collected []Match
	)
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(candidates); start += chunkSize {
		end := start + chunkSize
		if end > len(candidates) {
			end = len(candidates)
		}
		chunk := candidates[start:end]
		g.Go(func() error {
			local := m.matchChunk(ctx, queryRunes, caseSensitive, chunk)
			mu.Lock()
			collected = append(collected, local...)
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; the group is used for ctx propagation.
	_ = g.Wait()
	return collected
}

// matchChunk scores one chunk of candidates, checking for cancellation
// between items.
func (m *Matcher) matchChunk(ctx context.Context, queryRunes []rune, caseSensitive bool, chunk []Candidate) []Match {
	results := make([]Match, 0, len(chunk)/4+1)
	for _, c := range chunk {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		score, positions := m.matchCandidate(queryRunes, caseSensitive, c.Text)
		if score > m.opts.MinScore && positions != nil {
			results = append(results, Match{
				CandidateID: c.ID,
				Text:        c.Text,
				Positions:   positions,
				Score:       score,
			})
		}
	}
	return results
}
