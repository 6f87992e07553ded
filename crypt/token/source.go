package token

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Source picks a uniform index in [0, n); n is always > 0
// *rand.Rand from math/rand/v2 satisfies it
type Source interface {
	IntN(n int) int
}

// lockedSource serializes access to a non-concurrent Source
type lockedSource struct {
	mx  sync.Mutex
	src Source
}

func (l *lockedSource) IntN(n int) int {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.src.IntN(n)
}

// Locked wraps src so it can be shared between goroutines
func Locked(src Source) Source {
	if l, ok := src.(*lockedSource); ok {
		return l
	}
	return &lockedSource{src: src}
}

// NewSource returns a concurrency-safe ChaCha8 source seeded from crypto/rand
func NewSource() Source {
	var seed [32]byte
	// crypto/rand.Read never returns an error since go1.24
	_, _ = crand.Read(seed[:])
	return Locked(rand.New(rand.NewChaCha8(seed)))
}

// NewSeededSource returns a deterministic, concurrency-safe PCG source
// Two sources with the same seed yield the same sequence
func NewSeededSource(seed uint64) Source {
	return Locked(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}
