/*package pool stores the particle population of a mesh-based simulation as
a structure of arrays: one growable buffer per attribute, indexed by slot
id. Slots of removed particles are recycled through a LIFO free list, and
buffers grow geometrically so that repeated single-particle insertion
costs O(1) amortized.

No method of Pool synchronizes internally. Every mutating call against the
same Pool must be serialized by the caller, and any call that grows the
pool relocates every buffer, invalidating slices returned by earlier
accessor calls. Generation can be used to detect relocation.
*/
package pool

import (
	"math"

	"github.com/amrkit/particles"
)

const (
	// GrowthFactor is the default multiplicative buffer resize factor.
	GrowthFactor = 1.1
	// ReduceFactor is reserved for a future compaction pass. No code path
	// shrinks buffers yet.
	ReduceFactor = 0.8
)

// Status is the liveness of one slot. It shadows the mass tombstone the
// removal markers write, so liveness never has to be inferred from a
// physical quantity.
type Status int8

const (
	StatusActive Status = iota
	StatusOutside
	StatusTransferred
)

func statusFor(m particles.Marker) Status {
	switch m {
	case particles.OutsideDomain:
		return StatusOutside
	case particles.Transferred:
		return StatusTransferred
	}
	panic(errf(ErrUnsupportedMarker, "%g", float64(m)))
}

// Options holds the configuration the pool consumes but does not
// interpret. It is fixed at construction.
type Options struct {
	Levels   int  // number of refinement levels
	NPassive int  // passive scalars stored per particle
	StoreAcc bool // keep acceleration buffers alongside positions

	// Growth is the buffer growth factor. It must be >= 1; the zero value
	// means GrowthFactor.
	Growth float64

	Interp particles.InterpScheme
	Integ  particles.IntegScheme
	Init   particles.InitScheme
}

// Pool is a structure-of-arrays particle container. The zero value is not
// usable; construct with New, then set the initial particle count with
// SetParticleCount and allocate with InitVar.
type Pool struct {
	opt      Options
	nPrimary int

	totalSlots int // slots ever assigned, active + inactive; -1 until set
	capacity   int // allocated length of every attribute buffer
	active     int
	inactive   int
	activeLv   []int

	// Total active count over all ranks. Set externally, never derived
	// here.
	activeAllRanks int64

	ghost int
	gen   int

	primary [][]float64
	passive [][]float64
	status  []Status

	free    []int
	freeCap int
}

// New returns a pool with every counter at its sentinel state. InitVar
// must be called before any particle is added.
func New(opt Options) *Pool {
	if opt.Growth == 0 {
		opt.Growth = GrowthFactor
	}
	return &Pool{
		opt:        opt,
		nPrimary:   particles.PrimaryCount(opt.StoreAcc),
		totalSlots: -1,
		ghost:      -1,
		activeLv:   make([]int, opt.Levels),
	}
}

// SetParticleCount sets the initial number of slots InitVar will allocate.
// All of them are assumed active until a Recount says otherwise.
func (p *Pool) SetParticleCount(n int) { p.totalSlots = n }

// InitVar allocates the attribute buffers and the free list and derives
// the ghost zone width from the interpolation scheme. The particle count
// and the interpolation scheme must have been set first; buffers are sized
// exactly to the particle count, with no slack.
func (p *Pool) InitVar() error {
	if p.totalSlots < 0 {
		return errf(ErrInvalidState, "particle count %d < 0", p.totalSlots)
	}
	if p.opt.Interp == particles.InterpNone {
		return errf(ErrInvalidState, "interpolation scheme not set")
	}
	if p.opt.Growth < 1 {
		return errf(ErrInvalidState, "growth factor %g < 1", p.opt.Growth)
	}
	ghost, ok := p.opt.Interp.GhostSize()
	if !ok {
		return errf(ErrUnsupportedScheme, "%s", p.opt.Interp)
	}
	p.ghost = ghost

	p.active = p.totalSlots
	p.inactive = 0
	p.capacity = p.totalSlots

	p.primary = make([][]float64, p.nPrimary)
	for v := range p.primary {
		p.primary[v] = make([]float64, p.capacity)
	}
	p.passive = make([][]float64, p.opt.NPassive)
	for v := range p.passive {
		p.passive[v] = make([]float64, p.capacity)
	}
	p.status = make([]Status, p.capacity)

	p.freeCap = p.totalSlots / 100
	if p.freeCap < 1 {
		p.freeCap = 1
	}
	p.free = make([]int, 0, p.freeCap)

	return nil
}

// EnsureCapacity grows every attribute buffer until at least n slots fit,
// multiplying the capacity by the growth factor per step and copying the
// existing contents. Slices returned by earlier accessor calls keep
// pointing at the old buffers; Generation increases once per call that
// actually grows.
func (p *Pool) EnsureCapacity(n int) {
	if n <= p.capacity {
		return
	}
	newCap := p.capacity
	for newCap < n {
		newCap = int(math.Ceil(p.opt.Growth * float64(newCap+1)))
	}

	for v, buf := range p.primary {
		grown := make([]float64, newCap)
		copy(grown, buf)
		p.primary[v] = grown
	}
	for v, buf := range p.passive {
		grown := make([]float64, newCap)
		copy(grown, buf)
		p.passive[v] = grown
	}
	grown := make([]Status, newCap)
	copy(grown, p.status)
	p.status = grown

	p.capacity = newCap
	p.gen++
}

// AddOneParticle adds one particle and returns the slot id it was assigned
// to. Ids of previously removed particles are reused, most recently
// removed first; otherwise the buffers grow and a fresh id is assigned.
//
// primary must hold one value per primary attribute and passive one value
// per passive attribute. If aveDens is non-nil, mass*invVol is added to it.
func (p *Pool) AddOneParticle(
	primary, passive []float64, lv int, aveDens *float64, invVol float64,
) int {
	if debugChecks {
		if p.totalSlots < 0 {
			panic(errf(ErrInvalidState, "AddOneParticle before InitVar"))
		}
		if len(primary) != p.nPrimary {
			panic(errf(ErrInvalidState,
				"primary vector has %d attributes, pool stores %d",
				len(primary), p.nPrimary))
		}
		if len(passive) != p.opt.NPassive {
			panic(errf(ErrInvalidState,
				"passive vector has %d attributes, pool stores %d",
				len(passive), p.opt.NPassive))
		}
		if lv < 0 || lv >= len(p.activeLv) {
			panic(errf(ErrOutOfRange, "level %d of %d", lv, len(p.activeLv)))
		}
	}

	var id int
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
		p.inactive--
		if debugChecks && (id < 0 || id >= p.totalSlots) {
			panic(errf(ErrOutOfRange,
				"free list held id %d with %d slots", id, p.totalSlots))
		}
	} else {
		if p.totalSlots == p.capacity {
			p.EnsureCapacity(p.totalSlots + 1)
		}
		id = p.totalSlots
		p.totalSlots++
	}

	for v := range p.primary {
		p.primary[v][id] = primary[v]
	}
	for v := range p.passive {
		p.passive[v][id] = passive[v]
	}
	p.status[id] = StatusActive

	if aveDens != nil {
		*aveDens += primary[particles.Mass] * invVol
	}

	p.active++
	p.activeLv[lv]++

	if debugChecks && p.active+p.inactive != p.totalSlots {
		panic(errf(ErrPostcondition, "%d + %d != %d",
			p.active, p.inactive, p.totalSlots))
	}
	return id
}

// RemoveOneParticle removes the particle in the given slot. The slot is
// not freed: its mass is overwritten with the marker, its id is pushed
// onto the free list for reuse, and every other attribute becomes stale.
//
// lv must be the particle's refinement level, or particles.NoLevel to skip
// the per-level bookkeeping. If aveDens is non-nil, mass*invVol is
// subtracted from it before the mass is overwritten.
func (p *Pool) RemoveOneParticle(
	id int, marker particles.Marker, lv int, aveDens *float64, invVol float64,
) {
	if debugChecks {
		if id < 0 || id >= p.totalSlots {
			panic(errf(ErrOutOfRange, "id %d with %d slots", id, p.totalSlots))
		}
		if !marker.Valid() {
			panic(errf(ErrUnsupportedMarker, "%g", float64(marker)))
		}
		if lv != particles.NoLevel && (lv < 0 || lv >= len(p.activeLv)) {
			panic(errf(ErrOutOfRange, "level %d of %d", lv, len(p.activeLv)))
		}
	}
	// Removing a slot twice would silently corrupt the active/inactive
	// counters, so this check stays on in every build mode.
	if p.status[id] != StatusActive {
		panic(errf(ErrAlreadyInactive, "slot %d", id))
	}

	if len(p.free) == p.freeCap {
		p.freeCap = int(math.Ceil(p.opt.Growth * float64(p.freeCap+1)))
		grown := make([]int, len(p.free), p.freeCap)
		copy(grown, p.free)
		p.free = grown
	}
	p.free = append(p.free, id)

	if aveDens != nil {
		*aveDens -= p.primary[particles.Mass][id] * invVol
	}
	p.primary[particles.Mass][id] = float64(marker)
	p.status[id] = statusFor(marker)

	p.active--
	if lv != particles.NoLevel {
		p.activeLv[lv]--
	}
	p.inactive++

	if debugChecks && p.active+p.inactive != p.totalSlots {
		panic(errf(ErrPostcondition, "%d + %d != %d",
			p.active, p.inactive, p.totalSlots))
	}
}

// Destroy releases every buffer and the free list and returns the pool to
// its constructed sentinel state. The pool may be initialized again with
// SetParticleCount and InitVar.
func (p *Pool) Destroy() {
	p.primary = nil
	p.passive = nil
	p.status = nil
	p.free = nil

	p.totalSlots = -1
	p.capacity = 0
	p.active = 0
	p.inactive = 0
	p.freeCap = 0
	p.ghost = -1
	for lv := range p.activeLv {
		p.activeLv[lv] = 0
	}
}

// Capacity returns the allocated length of every attribute buffer.
func (p *Pool) Capacity() int { return p.capacity }

// TotalSlots returns the number of slots ever assigned, active plus
// inactive, or -1 before the particle count is set.
func (p *Pool) TotalSlots() int { return p.totalSlots }

// Active returns the number of active particles on this rank.
func (p *Pool) Active() int { return p.active }

// Inactive returns the number of tombstoned slots awaiting reuse.
func (p *Pool) Inactive() int { return p.inactive }

// ActiveAt returns the number of active particles at one refinement level.
func (p *Pool) ActiveAt(lv int) int { return p.activeLv[lv] }

// Levels returns the number of refinement levels tracked by the pool.
func (p *Pool) Levels() int { return len(p.activeLv) }

// NPrimary returns the number of primary attributes stored per particle.
func (p *Pool) NPrimary() int { return p.nPrimary }

// NPassive returns the number of passive attributes stored per particle.
func (p *Pool) NPassive() int { return p.opt.NPassive }

// GhostSize returns the interpolation ghost zone width derived by InitVar,
// or -1 before initialization.
func (p *Pool) GhostSize() int { return p.ghost }

// Generation counts buffer relocations. A caller holding slices from Attr
// or PassiveAttr can compare generations to learn whether they are stale.
func (p *Pool) Generation() int { return p.gen }

// GlobalActive returns the total active count over all ranks, as last set
// by SetGlobalActive.
func (p *Pool) GlobalActive() int64 { return p.activeAllRanks }

// SetGlobalActive records the total active count over all ranks. The pool
// itself never modifies this value.
func (p *Pool) SetGlobalActive(n int64) { p.activeAllRanks = n }

// Options returns the configuration the pool was constructed with.
func (p *Pool) Options() Options { return p.opt }

// Attr returns the live buffer of primary attribute v, truncated to the
// assigned slots. Entries for inactive slots are stale, except for Mass,
// which holds the removal marker. The slice is invalidated by any call
// that grows the pool.
func (p *Pool) Attr(v int) []float64 { return p.primary[v][:p.totalSlots] }

// PassiveAttr returns the live buffer of passive attribute v, with the
// same staleness and relocation caveats as Attr.
func (p *Pool) PassiveAttr(v int) []float64 { return p.passive[v][:p.totalSlots] }

// Status returns the liveness of one slot.
func (p *Pool) Status(id int) Status { return p.status[id] }

// IsActive returns whether the given slot holds an active particle.
func (p *Pool) IsActive(id int) bool { return p.status[id] == StatusActive }

// ReadSlot copies the attributes of one slot into the given vectors, which
// must be sized like the arguments of AddOneParticle. Either may be nil to
// skip that attribute set.
func (p *Pool) ReadSlot(id int, primary, passive []float64) {
	for v := range primary {
		primary[v] = p.primary[v][id]
	}
	for v := range passive {
		passive[v] = p.passive[v][id]
	}
}
