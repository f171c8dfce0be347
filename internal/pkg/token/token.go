// Package token generates opaque random tokens (email verification links and
// the like). Randomness is injected so tests can make generation
// deterministic; there is no package-level generator state.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var ErrInvalidLength = errors.New("token length must be positive")

const DefaultLength = 32

type Generator struct {
	length int
	source io.Reader
}

func NewGenerator(length int, source io.Reader) (*Generator, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	if source == nil {
		source = rand.Reader
	}
	return &Generator{length: length, source: source}, nil
}

func NewDefaultGenerator() *Generator {
	g, _ := NewGenerator(DefaultLength, rand.Reader)
	return g
}

// Generate returns a URL-safe token encoding length random bytes.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, g.length)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
