package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeBlendsSharedTraits(t *testing.T) {
	got := Merge(Vector{"Biology": 2}, Vector{"Biology": 0.5})

	assert.InDelta(t, 0.4*0.5+1.5*2, got["Biology"], 1e-9)
}

func TestMergeCoversUnion(t *testing.T) {
	got := Merge(Vector{"Leadership": 1}, Vector{"Biology": 0.9})

	assert.Len(t, got, 2)
	assert.InDelta(t, 1.5, got["Leadership"], 1e-9)
	assert.InDelta(t, 0.36, got["Biology"], 1e-9)
}

func TestMergeClampsNegativeInputs(t *testing.T) {
	got := Merge(Vector{"Biology": -1}, Vector{"Biology": 0.5})

	assert.InDelta(t, 0.2, got["Biology"], 1e-9)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
}
