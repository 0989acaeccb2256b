// Package estimate is the paint estimation engine: room areas, coverage
// rates, material quantities and pack combinations, labour days, quotation
// totals and the canonical display order of area configs.
//
// Everything here is pure. The only state is the optional Memo handed to New,
// which is advisory: a miss or eviction never changes a result.
package estimate

import (
	"errors"
	"math"
)

var ErrPackCombinationNotFound = errors.New("pack combination not found")

// Memo is a concurrency-safe key/value store with its own expiry policy.
type Memo interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Engine carries the memo used by the memoised lookups. The zero value and a
// nil memo are both valid and simply recompute every time.
type Engine struct {
	memo Memo
}

func New(memo Memo) *Engine {
	return &Engine{memo: memo}
}

func (e *Engine) lookup(key string) (any, bool) {
	if e == nil || e.memo == nil {
		return nil, false
	}
	return e.memo.Get(key)
}

func (e *Engine) store(key string, v any) {
	if e == nil || e.memo == nil {
		return
	}
	e.memo.Set(key, v)
}

// finite coerces NaN, Inf and negatives to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
