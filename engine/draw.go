// Package engine implements the weighted token-draw mechanics. The engine
// is side-effect free over the bag: it returns the drawn sequence and the
// updated counters, persistence and broadcast belong to the caller.
package engine

import (
	"math/rand"
	"sync"

	"tokenbag/domain"
	"tokenbag/errors"
)

// Engine samples tokens without replacement from a bag. The probability of
// drawing a success at each step is successes/(successes+complications)
// over the *current* remaining counts, so the odds shift after every pull.
//
// A single Engine may serve many rooms concurrently; the internal rng is
// guarded by a mutex.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an engine seeded with the provided value. Given the same
// seed and the same sequence of requests, the engine is deterministic.
func New(seed int64) *Engine {
	return NewWithRng(rand.New(rand.NewSource(seed)))
}

// NewWithRng returns an engine using a caller-provided random source.
func NewWithRng(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Draw pulls request.EffectiveCount() tokens from the bag.
//
// Plain mode removes whatever token was physically drawn. Confusion mode
// leaves complication draws untouched, but re-rolls the *recorded* outcome
// of every success draw 50/50 — while the bag still loses the success
// token that was physically pulled. That asymmetry is game-design intent:
// confusion corrupts perception, not the contents of the bag.
//
// If the bag holds fewer tokens than the effective count, Draw fails with
// ErrInsufficientTokens and the bag is unchanged. If the bag empties
// mid-draw the partial sequence is returned with consistent counts.
func (e *Engine) Draw(bag domain.Bag, request domain.DrawRequest) (domain.DrawResult, error) {
	count := request.EffectiveCount()
	if count <= 0 {
		return domain.DrawResult{}, errors.ErrInvalidRequest
	}
	if bag.Total() < count {
		return domain.DrawResult{}, errors.ErrInsufficientTokens
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	drawn := make([]domain.Token, 0, count)
	for i := 0; i < count; i++ {
		if bag.Successes <= 0 && bag.Complications <= 0 {
			break
		}

		token := e.pick(bag)
		if token == domain.TokenSuccess {
			// The physical bag loses the success token no matter what
			// gets recorded below.
			bag.Successes--
			if request.Confusion && e.rng.Float64() < 0.5 {
				token = domain.TokenComplication
			}
		} else {
			bag.Complications--
		}
		drawn = append(drawn, token)
	}

	successes, complications := tally(drawn)
	return domain.DrawResult{
		Drawn:         drawn,
		Successes:     successes,
		Complications: complications,
		Bag:           bag,
	}, nil
}

// RiskAll runs a plain draw (adrenaline and confusion never apply) and
// adds the caller-supplied running totals to the per-call delta. The
// totals are trusted as-is; only the delta ends up in history.
func (e *Engine) RiskAll(bag domain.Bag, request domain.RiskAllRequest) (domain.RiskAllResult, error) {
	result, err := e.Draw(bag, domain.DrawRequest{
		Room:       request.Room,
		PlayerName: request.PlayerName,
		Count:      request.Count,
	})
	if err != nil {
		return domain.RiskAllResult{}, err
	}

	return domain.RiskAllResult{
		DrawResult:         result,
		TotalSuccesses:     request.PreviousSuccesses + result.Successes,
		TotalComplications: request.PreviousComplications + result.Complications,
	}, nil
}

// pick draws one token weighted by the current counters. Weights are
// clamped at zero; the caller guarantees at least one is positive.
func (e *Engine) pick(bag domain.Bag) domain.Token {
	successes := max(0, bag.Successes)
	complications := max(0, bag.Complications)
	total := successes + complications

	if e.rng.Float64() < float64(complications)/float64(total) {
		return domain.TokenComplication
	}
	return domain.TokenSuccess
}

func tally(drawn []domain.Token) (successes, complications int) {
	for _, token := range drawn {
		if token == domain.TokenSuccess {
			successes++
		} else {
			complications++
		}
	}
	return successes, complications
}
