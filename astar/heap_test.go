package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scores a hair apart used to form a cycle: a≈b, b≈c, a<c with b and c
// ordered after a only through their tags.
func TestOpenPQ_LessIsTransitive(t *testing.T) {
	pq := openPQ{
		{tag: "c", f: 0},
		{tag: "b", f: 0.6e-15},
		{tag: "a", f: 1.2e-15},
		{tag: "d", f: 0.4e-15, h: 1e-3},
		{tag: "e", f: 0.4e-15},
	}
	for i := range pq {
		assert.False(t, pq.Less(i, i), "irreflexive at %s", pq[i].tag)
		for j := range pq {
			for k := range pq {
				if pq.Less(i, j) && pq.Less(j, k) {
					assert.True(t, pq.Less(i, k), "%s < %s < %s", pq[i].tag, pq[j].tag, pq[k].tag)
				}
			}
		}
	}
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, quantize(0.0018), quantize(0.0018+1e-17))
	assert.NotEqual(t, quantize(0.0018), quantize(0.0018+1e-14))
}
