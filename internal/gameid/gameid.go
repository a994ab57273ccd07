// Package gameid generates sortable identifiers for play sessions and
// simulation runs: a UUIDv7 rendered as 26 characters of Crockford base32.
package gameid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32 alphabet
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies random bytes. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Generator creates IDs from a clock and a random source.
type Generator struct {
	clock quartz.Clock
	rand  RandSource
}

// NewGenerator returns a generator. A nil clock uses the real clock and a nil
// source uses crypto/rand.
func NewGenerator(clock quartz.Clock, rand RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rand: rand}
}

// Generate returns a new ID using the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a new ID.
func (g *Generator) Generate() string {
	return encode(g.uuidV7())
}

func (g *Generator) uuidV7() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp
	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint16(id[0:2], uint16(ms>>32))
	binary.BigEndian.PutUint32(id[2:6], uint32(ms))

	if g.rand != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rand.Uint64()))
		binary.BigEndian.PutUint64(id[8:16], g.rand.Uint64())
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("gameid: crypto/rand failed: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

// encode renders the 128-bit value as 26 base32 digits, most significant
// first. The leading digit carries only 3 bits.
func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[0:8])
	lo := binary.BigEndian.Uint64(id[8:16])

	out := make([]byte, 26)
	for i := 25; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Validate checks that id is 26 base32 digits with a leading digit of 0-7.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
