package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/amrkit/particles"
)

// Column layout of initial-condition tables: mass, position, velocity.
const (
	massCol             = 0
	xCol, yCol, zCol    = 1, 2, 3
	vxCol, vyCol, vzCol = 4, 5, 6
)

// ReadICTable reads a whitespace-separated initial-condition table. Each
// row describes one particle as "mass x y z vx vy vz"; particle times are
// left for the caller to synchronize.
func ReadICTable(file string) ([]particles.Particle, error) {
	colIdxs := []int{massCol, xCol, yCol, zCol, vxCol, vyCol, vzCol}
	cols := table.TextFile(file).ReadFloat64s(colIdxs)

	ms := cols[0]
	parts := make([]particles.Particle, len(ms))
	for i := range parts {
		if ms[i] < 0 {
			return nil, fmt.Errorf(
				"Particle %d in '%s' has negative mass %g.", i, file, ms[i],
			)
		}
		parts[i] = particles.Particle{
			Mass: ms[i],
			Pos:  [3]float64{cols[1][i], cols[2][i], cols[3][i]},
			Vel:  [3]float64{cols[4][i], cols[5][i], cols[6][i]},
		}
	}
	return parts, nil
}
