package booking

import (
	"crypto/rand"
	"io"
)

// LocatorGenerator produces candidate locators. Candidates are not guaranteed
// unique; the caller checks them against persisted bookings.
type LocatorGenerator interface {
	Generate() (Locator, error)
}

type RandomLocatorGenerator struct {
	src io.Reader
}

func NewRandomLocatorGenerator() *RandomLocatorGenerator {
	return &RandomLocatorGenerator{src: rand.Reader}
}

// NewLocatorGeneratorFromReader is for deterministic tests.
func NewLocatorGeneratorFromReader(src io.Reader) *RandomLocatorGenerator {
	return &RandomLocatorGenerator{src: src}
}

// Generate draws each symbol independently. The alphabet has 32 symbols, so
// masking a random byte to its low 5 bits is unbiased.
func (g *RandomLocatorGenerator) Generate() (Locator, error) {
	var buf [LocatorLength]byte
	if _, err := io.ReadFull(g.src, buf[:]); err != nil {
		return "", err
	}
	out := make([]byte, LocatorLength)
	for i, b := range buf {
		out[i] = LocatorAlphabet[b&0x1f]
	}
	return Locator(out), nil
}
