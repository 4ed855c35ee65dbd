package encoder

import (
	"context"
	"crypto/sha256"
	"sync"
)

// Caching wraps an Encoder with a process-wide vector cache keyed by a hash
// of the input text. Intended for catalog job texts, which never change for
// the lifetime of the process; résumé text is encoded without this wrapper.
type Caching struct {
	inner Encoder

	mu      sync.RWMutex
	vectors map[[sha256.Size]byte][]float32
}

// NewCaching wraps inner with an embedding cache.
func NewCaching(inner Encoder) *Caching {
	return &Caching{
		inner:   inner,
		vectors: make(map[[sha256.Size]byte][]float32),
	}
}

// Encode returns the cached vector for text, encoding it on first use.
func (c *Caching) Encode(ctx context.Context, text string) ([]float32, error) {
	key := sha256.Sum256([]byte(text))

	c.mu.RLock()
	vec, ok := c.vectors[key]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := c.inner.Encode(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = vec
	c.mu.Unlock()

	return vec, nil
}
