/*package io reads the configuration and initial-condition files consumed
by the particle subsystem.
*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/amrkit/particles"
	"github.com/amrkit/particles/pool"
)

const ExampleParticleFile = `[Particle]

#######################
# Required Parameters #
#######################

# Number of mesh refinement levels.
Levels = 6

# Mass/acceleration interpolation scheme. One of NGP, CIC, TSC.
Interp = CIC

# Side length of the (cubic) simulation box, in code units. Used for the
# mean-density bookkeeping.
BoxWidth = 100.0

#######################
# Optional Parameters #
#######################

# Orbit integration scheme. One of Euler, KDK. Default is KDK.
# Integ = KDK

# Where the initial particles come from. One of Function, Restart,
# FromFile. Default is Function.
# Init = Function

# Number of passive scalars carried per particle (e.g. metallicity).
# Default is 0.
# Passive = 0

# Store acceleration buffers alongside positions and velocities.
# Default is false.
# StoreAcceleration = false

# Multiplicative factor applied when the particle buffers grow. Must be
# at least 1. Default is 1.1.
# GrowthFactor = 1.1

# Whitespace-separated table of initial particles, read when
# Init = FromFile. Columns: mass x y z vx vy vz.
# ICFile = path/to/particles.txt`

type ParticleConfig struct {
	// Required
	Levels   int
	Interp   string
	BoxWidth float64

	// Optional
	Integ             string
	Init              string
	Passive           int
	StoreAcceleration bool
	GrowthFactor      float64
	ICFile            string
}

type ParticleWrapper struct {
	Particle ParticleConfig
}

// DefaultParticleWrapper returns a wrapper around a [Particle] section
// with every optional parameter at its default.
func DefaultParticleWrapper() *ParticleWrapper {
	return &ParticleWrapper{ParticleConfig{
		Integ:        "KDK",
		Init:         "Function",
		GrowthFactor: pool.GrowthFactor,
	}}
}

// ReadParticleConfig reads and validates the [Particle] section of the
// given configuration file.
func ReadParticleConfig(fname string) (*ParticleConfig, error) {
	wrap := DefaultParticleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Particle
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *ParticleConfig) CheckInit() error {
	if con.Levels <= 0 {
		return fmt.Errorf("Need to specify a positive 'Levels' value.")
	}
	if con.BoxWidth <= 0 {
		return fmt.Errorf("Need to specify a positive 'BoxWidth' value.")
	}
	if con.Passive < 0 {
		return fmt.Errorf(
			"'Passive' must be non-negative, but is %d.", con.Passive,
		)
	}
	if con.GrowthFactor < 1 {
		return fmt.Errorf(
			"'GrowthFactor' must be at least 1, but is %g.", con.GrowthFactor,
		)
	}

	if _, err := particles.ParseInterpScheme(con.Interp); err != nil {
		return err
	}
	if _, err := particles.ParseIntegScheme(con.Integ); err != nil {
		return err
	}
	if _, err := particles.ParseInitScheme(con.Init); err != nil {
		return err
	}
	return nil
}

// PoolOptions converts a validated config into the options the pool is
// constructed with.
func (con *ParticleConfig) PoolOptions() (pool.Options, error) {
	interp, err := particles.ParseInterpScheme(con.Interp)
	if err != nil {
		return pool.Options{}, err
	}
	integ, err := particles.ParseIntegScheme(con.Integ)
	if err != nil {
		return pool.Options{}, err
	}
	init, err := particles.ParseInitScheme(con.Init)
	if err != nil {
		return pool.Options{}, err
	}

	return pool.Options{
		Levels:   con.Levels,
		NPassive: con.Passive,
		StoreAcc: con.StoreAcceleration,
		Growth:   con.GrowthFactor,
		Interp:   interp,
		Integ:    integ,
		Init:     init,
	}, nil
}

// InverseBoxVolume returns the 1/volume factor passed to the pool's
// density bookkeeping.
func (con *ParticleConfig) InverseBoxVolume() float64 {
	w := con.BoxWidth
	return 1 / (w * w * w)
}
