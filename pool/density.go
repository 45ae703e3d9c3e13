package pool

import (
	"gonum.org/v1/gonum/floats"

	"github.com/amrkit/particles"
)

// MeanDensity recomputes the mean mass density over a domain with the
// given inverse volume by summing every active mass. The aveDens arguments
// of AddOneParticle and RemoveOneParticle maintain the same value
// incrementally; this O(totalSlots) pass exists for callers that bypass
// the per-call bookkeeping, such as checkpoint reloads.
func (p *Pool) MeanDensity(invVol float64) float64 {
	if p.totalSlots <= 0 {
		return 0
	}
	mass := p.Attr(particles.Mass)
	active := make([]float64, 0, p.active)
	for id, m := range mass {
		if p.status[id] == StatusActive {
			active = append(active, m)
		}
	}
	return floats.Sum(active) * invVol
}

// Recount rebuilds the liveness bookkeeping from the mass buffer after a
// bulk reload has written attribute data directly into the buffers.
// A slot with non-negative mass is active; a negative mass is read as its
// removal marker. lvs[id] gives the refinement level of each slot, and
// entries for inactive slots are ignored.
//
// The free list is rebuilt from scratch, ordered so the lowest inactive id
// is reused first.
func (p *Pool) Recount(lvs []int) error {
	if p.totalSlots < 0 {
		return errf(ErrInvalidState, "Recount before InitVar")
	}
	if len(lvs) != p.totalSlots {
		return errf(ErrInvalidState,
			"%d levels given for %d slots", len(lvs), p.totalSlots)
	}

	p.active = 0
	p.inactive = 0
	for lv := range p.activeLv {
		p.activeLv[lv] = 0
	}
	p.free = p.free[:0]

	mass := p.primary[particles.Mass]
	for id := p.totalSlots - 1; id >= 0; id-- {
		switch {
		case mass[id] >= 0:
			p.status[id] = StatusActive
			p.active++
			lv := lvs[id]
			if lv < 0 || lv >= len(p.activeLv) {
				return errf(ErrOutOfRange, "slot %d at level %d of %d",
					id, lv, len(p.activeLv))
			}
			p.activeLv[lv]++
		case particles.Marker(mass[id]) == particles.Transferred:
			p.status[id] = StatusTransferred
			p.inactive++
			p.free = append(p.free, id)
		default:
			// Any other negative mass is read as an outside-domain
			// tombstone.
			p.status[id] = StatusOutside
			p.inactive++
			p.free = append(p.free, id)
		}
	}
	if cap(p.free) > p.freeCap {
		p.freeCap = cap(p.free)
	}
	return nil
}
