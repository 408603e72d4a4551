package integration

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/launchkit/launchkit-mcp/internal/embedder"
)

// MockEmbedder generates deterministic vectors from a text hash so tests
// never need a real API key. Calls are counted to assert cache behavior.
type MockEmbedder struct {
	dimension int
	calls     int64
}

var _ embedder.Embedder = (*MockEmbedder)(nil)

// NewMockEmbedder creates a mock embedder with the given dimension
func NewMockEmbedder(dimension int) *MockEmbedder {
	return &MockEmbedder{dimension: dimension}
}

// Embed returns a unit-length vector derived from the sha256 of the text
func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, embedder.ErrEmptyText
	}
	atomic.AddInt64(&m.calls, 1)

	hash := sha256.Sum256([]byte(text))
	vec := make([]float32, m.dimension)
	var norm float64
	for i := 0; i < m.dimension; i++ {
		bits := binary.BigEndian.Uint32(hash[(i*4)%28 : (i*4)%28+4])
		v := float32(bits%1000)/500.0 - 1.0
		vec[i] = v
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1.0 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

// Calls returns how many times Embed was invoked
func (m *MockEmbedder) Calls() int64 { return atomic.LoadInt64(&m.calls) }

func (m *MockEmbedder) Provider() string { return "mock" }
func (m *MockEmbedder) Model() string    { return "mock-v1" }
func (m *MockEmbedder) Dimension() int   { return m.dimension }
func (m *MockEmbedder) Close() error     { return nil }
