package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NumberGenerator produces sales-order numbers. The workflow takes it as a
// dependency so tests can supply fixed values.
type NumberGenerator interface {
	Next() string
}

// SapNumberGenerator emits 10-character numeric order numbers following the
// SAP SD number-range convention for standard orders: the "40" prefix
// followed by eight digits. The digits come from a counter seeded from the
// clock at startup, so concurrent creations within one process never
// collide.
type SapNumberGenerator struct {
	counter atomic.Uint64
}

func NewSapNumberGenerator() *SapNumberGenerator {
	g := &SapNumberGenerator{}
	g.counter.Store(uint64(time.Now().UTC().Unix()) % 100000000)
	return g
}

func (g *SapNumberGenerator) Next() string {
	return fmt.Sprintf("40%08d", g.counter.Add(1)%100000000)
}
