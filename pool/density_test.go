package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amrkit/particles"
)

func TestMeanDensityMatchesAccumulator(t *testing.T) {
	p := newTestPool(t, 0)
	passive := []float64{0, 0}
	invVol := 1.0 / (50 * 50 * 50)

	aveDens := 0.0
	ids := []int{}
	for i := 0; i < 100; i++ {
		m := 0.5 + float64(i%7)
		ids = append(ids, p.AddOneParticle(primVec(m), passive, 0, &aveDens, invVol))
	}
	for i := 0; i < 100; i += 3 {
		p.RemoveOneParticle(ids[i], particles.OutsideDomain, 0, &aveDens, invVol)
	}

	assert.InDelta(t, aveDens, p.MeanDensity(invVol), 1e-12)
}

func TestMeanDensityEmpty(t *testing.T) {
	p := newTestPool(t, 0)
	assert.Equal(t, 0.0, p.MeanDensity(1))
}

func TestRecount(t *testing.T) {
	// A checkpoint reload writes straight into the buffers and then asks
	// the pool to rebuild its counters.
	p := newTestPool(t, 6)
	mass := p.Attr(particles.Mass)
	copy(mass, []float64{
		1.0,
		float64(particles.OutsideDomain),
		2.0,
		float64(particles.Transferred),
		3.0,
		4.0,
	})
	lvs := []int{0, 0, 1, 0, 1, 2}

	if err := p.Recount(lvs); err != nil {
		t.Fatalf("Recount failed: %v", err)
	}

	assert.Equal(t, 4, p.Active())
	assert.Equal(t, 2, p.Inactive())
	assert.Equal(t, 1, p.ActiveAt(0))
	assert.Equal(t, 2, p.ActiveAt(1))
	assert.Equal(t, 1, p.ActiveAt(2))
	checkCounters(t, p)

	assert.Equal(t, StatusOutside, p.Status(1))
	assert.Equal(t, StatusTransferred, p.Status(3))

	// The rebuilt free list hands out the lowest inactive id first.
	passive := []float64{0, 0}
	assert.Equal(t, 1, p.AddOneParticle(primVec(5), passive, 0, nil, 1))
	assert.Equal(t, 3, p.AddOneParticle(primVec(6), passive, 0, nil, 1))
	assert.Equal(t, 6, p.TotalSlots())
}

func TestRecountErrors(t *testing.T) {
	p := newTestPool(t, 4)
	if err := p.Recount([]int{0, 0}); err == nil {
		t.Error("Recount accepted a level slice of the wrong length")
	}

	mass := p.Attr(particles.Mass)
	for id := range mass {
		mass[id] = 1
	}
	if err := p.Recount([]int{0, 0, 99, 0}); err == nil {
		t.Error("Recount accepted an out-of-range level")
	}
}
