package main

// Plots the per-level active particle counts recorded in a census CSV.

import (
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/amrkit/particles/census"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s census_file out_file", os.Args[0])
	}
	censusFile, outFile := os.Args[1], os.Args[2]

	rows, err := census.Read(censusFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(rows) == 0 {
		log.Fatalf("'%s' contains no census rows.", censusFile)
	}

	maxLv := 0
	for _, row := range rows {
		if row.Level > maxLv {
			maxLv = row.Level
		}
	}

	colors := []string{"k", "r", "b", "g", "m", "c", "y"}

	plt.Reset()
	plt.Figure()
	for lv := 0; lv <= maxLv; lv++ {
		steps, counts := []float64{}, []float64{}
		for _, row := range rows {
			if row.Level != lv {
				continue
			}
			steps = append(steps, float64(row.Step))
			counts = append(counts, float64(row.Active))
		}
		plt.Plot(steps, counts, plt.LW(2), plt.C(colors[lv%len(colors)]))
	}

	plt.Title(fmt.Sprintf("Active particles on levels 0 - %d", maxLv))
	plt.XLabel("step", plt.FontSize(16))
	plt.YLabel(`$N_{\rm active}$`, plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}
