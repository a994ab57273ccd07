package gameid

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dicegame/internal/randutil"
)

func TestGenerate(t *testing.T) {
	id := Generate()
	assert.Len(t, id, 26)
	assert.NoError(t, Validate(id))
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		require.False(t, ids[id], "duplicate id %s", id)
		ids[id] = true
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))

	a := NewGenerator(clock, randutil.New(3)).Generate()
	b := NewGenerator(clock, randutil.New(3)).Generate()
	assert.Equal(t, a, b)
	assert.NoError(t, Validate(a))
}

func TestGeneratorSortsByTime(t *testing.T) {
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	gen := NewGenerator(clock, randutil.New(1))

	first := gen.Generate()
	clock.Set(time.Date(2030, 6, 1, 12, 0, 1, 0, time.UTC))
	second := gen.Generate()

	assert.Less(t, first, second)
}

func TestEncodeKnownValues(t *testing.T) {
	assert.Equal(t, "00000000000000000000000000", encode([16]byte{}))

	var full [16]byte
	for i := range full {
		full[i] = 0xff
	}
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", encode(full))

	var one [16]byte
	one[15] = 1
	assert.Equal(t, "00000000000000000000000001", encode(one))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"01h5s0c1zq2m7n8p9r0s1t2v3w", true},
		{"short", false},
		{"81h5s0c1zq2m7n8p9r0s1t2v3w", false},
		{"01h5s0c1zq2m7n8p9r0s1t2v3u", false}, // u is not in the alphabet
	}

	for _, tt := range tests {
		err := Validate(tt.id)
		if tt.valid {
			assert.NoError(t, err, tt.id)
		} else {
			assert.Error(t, err, tt.id)
		}
	}
}
