package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/amrkit/particles/census"
	"github.com/amrkit/particles/io"
	"github.com/amrkit/particles/pool"
)

func main() {
	var (
		config, censusPath string
		exampleConfig      bool
	)
	flag.StringVar(
		&config, "Config", "",
		"Configuration file with a [Particle] section.",
	)
	flag.StringVar(
		&censusPath, "Census", "",
		"Optional output CSV recording the per-level particle counts.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleParticleFile)
		return
	}
	if config == "" {
		log.Fatal("No 'Config' file given. " +
			"Run with -ExampleConfig for the expected format.")
	}

	con, err := io.ReadParticleConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}
	opt, err := con.PoolOptions()
	if err != nil {
		log.Fatal(err.Error())
	}
	if con.ICFile == "" {
		log.Fatal("No 'ICFile' given in the [Particle] section.")
	}

	parts, err := io.ReadICTable(con.ICFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	p := pool.New(opt)
	p.SetParticleCount(0)
	if err := p.InitVar(); err != nil {
		log.Fatal(err.Error())
	}

	// Every particle starts on the base level; refinement reassigns them
	// later.
	invVol := con.InverseBoxVolume()
	aveDens := 0.0
	primary := make([]float64, p.NPrimary())
	passive := make([]float64, p.NPassive())
	for i := range parts {
		parts[i].Primary(primary)
		p.AddOneParticle(primary, passive, 0, &aveDens, invVol)
	}

	fmt.Printf(
		"Loaded %d particles: capacity %d, ghost size %d (%s), "+
			"mean density %g\n",
		p.Active(), p.Capacity(), p.GhostSize(), opt.Interp, aveDens,
	)

	if censusPath != "" {
		w, err := census.NewWriter(censusPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := w.Snapshot(0, p, aveDens); err != nil {
			log.Fatal(err.Error())
		}
		if err := w.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}
