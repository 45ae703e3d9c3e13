/*package particles holds the shared vocabulary for the particle subsystem
of a mesh-based simulation: primary attribute indices, removal markers,
interpolation/integration schemes, and the record type used by loaders.

The storage itself lives in the pool subpackage.
*/
package particles

// Indices into a primary attribute vector. The layout matches the order of
// the per-attribute buffers in pool.Pool.
const (
	Mass = iota
	PosX
	PosY
	PosZ
	VelX
	VelY
	VelZ
	Time
	AccX
	AccY
	AccZ
)

const (
	// NAttr is the number of primary attributes per particle.
	NAttr = 8
	// NAttrAcc is the number of primary attributes when accelerations are
	// stored alongside positions and velocities.
	NAttrAcc = 11
)

// PrimaryCount returns the number of primary attributes for a pool which
// does or does not store accelerations.
func PrimaryCount(storeAcc bool) int {
	if storeAcc {
		return NAttrAcc
	}
	return NAttr
}

// NoLevel is passed as the level argument of a removal when no per-level
// bookkeeping is wanted.
const NoLevel = -1

// Marker is the value written over a removed particle's mass. Markers are
// negative so removed particles can never be confused with active ones,
// whose masses are non-negative.
type Marker float64

const (
	// OutsideDomain marks a particle that flew outside the simulation box.
	OutsideDomain Marker = -1.0
	// Transferred marks a particle that was handed to another rank.
	Transferred Marker = -2.0
)

// Valid returns whether m is one of the reserved removal markers.
func (m Marker) Valid() bool {
	return m == OutsideDomain || m == Transferred
}

// Particle is the array-of-structs view of a single particle, used by
// initial-condition loaders and rank-exchange code. The pool stores the
// same attributes column-wise.
type Particle struct {
	Mass     float64
	Pos, Vel [3]float64
	Time     float64
	Acc      [3]float64
}

// Primary writes the particle's primary attributes into buf, which must
// have length NAttr or NAttrAcc. Accelerations are written only in the
// latter case.
func (p *Particle) Primary(buf []float64) {
	buf[Mass] = p.Mass
	buf[PosX], buf[PosY], buf[PosZ] = p.Pos[0], p.Pos[1], p.Pos[2]
	buf[VelX], buf[VelY], buf[VelZ] = p.Vel[0], p.Vel[1], p.Vel[2]
	buf[Time] = p.Time
	if len(buf) == NAttrAcc {
		buf[AccX], buf[AccY], buf[AccZ] = p.Acc[0], p.Acc[1], p.Acc[2]
	}
}

// FromPrimary returns the particle stored in a primary attribute vector of
// length NAttr or NAttrAcc.
func FromPrimary(buf []float64) Particle {
	p := Particle{
		Mass: buf[Mass],
		Pos:  [3]float64{buf[PosX], buf[PosY], buf[PosZ]},
		Vel:  [3]float64{buf[VelX], buf[VelY], buf[VelZ]},
		Time: buf[Time],
	}
	if len(buf) == NAttrAcc {
		p.Acc = [3]float64{buf[AccX], buf[AccY], buf[AccZ]}
	}
	return p
}
