// Package journal keeps the history of calculations made during one
// session. Records live in process memory only and vanish with the process.
package journal

import (
	"errors"
	"time"
)

// Calculation kinds.
const (
	KindSizing    = "size"
	KindReverse   = "reverse"
	KindPortfolio = "portfolio"
	KindStopLoss  = "stoploss"
)

var ErrNotFound = errors.New("record not found")

// Record is one calculation as the trader ran it.
type Record struct {
	ID     string
	Time   time.Time
	Kind   string
	Input  string // command line as entered
	Result string // JSON encoded result, empty on failure
	Error  string
}

// Failed reports whether the calculation was rejected by the engine.
func (r Record) Failed() bool {
	return r.Error != ""
}

type Journal interface {
	Record(Record) (Record, error)
	Get(id string) (Record, error)
	List() ([]Record, error)
	Close() error
}
