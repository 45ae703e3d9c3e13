/*package exchange moves particles between pools the way a
domain-decomposition layer does when particles cross rank boundaries: the
source slot is tombstoned with the Transferred marker and the particle is
re-added on the destination, which assigns its own slot id.

Both pools must store the same attribute sets. Calls mutate both pools, so
the caller must hold whatever serializes mutations on each of them.
*/
package exchange

import (
	"github.com/amrkit/particles"
	"github.com/amrkit/particles/pool"
)

// Transfer moves one active particle from src to dst and returns the slot
// id it was assigned on dst. lv is the particle's refinement level on both
// sides. The density accumulators are optional, as in the pool mutators;
// when the two pools span domains of different volume, pass each side its
// own inverse volume.
func Transfer(
	src, dst *pool.Pool, id, lv int,
	srcDens, dstDens *float64, srcInvVol, dstInvVol float64,
) int {
	primary := make([]float64, src.NPrimary())
	passive := make([]float64, src.NPassive())
	src.ReadSlot(id, primary, passive)

	src.RemoveOneParticle(id, particles.Transferred, lv, srcDens, srcInvVol)
	return dst.AddOneParticle(primary, passive, lv, dstDens, dstInvVol)
}

// TransferBatch moves the particles with the given ids, all at the given
// level, from src to dst. It returns the slot ids assigned on dst, in
// order.
func TransferBatch(
	src, dst *pool.Pool, ids []int, lv int,
	srcDens, dstDens *float64, srcInvVol, dstInvVol float64,
) []int {
	primary := make([]float64, src.NPrimary())
	passive := make([]float64, src.NPassive())

	dstIds := make([]int, len(ids))
	for i, id := range ids {
		src.ReadSlot(id, primary, passive)
		src.RemoveOneParticle(id, particles.Transferred, lv, srcDens, srcInvVol)
		dstIds[i] = dst.AddOneParticle(primary, passive, lv, dstDens, dstInvVol)
	}
	return dstIds
}
