package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadICTable(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "parts.txt")
	text := `# mass x y z vx vy vz
1.0 0.5 1.5 2.5 -1.0 0.0 1.0
0.25 10.0 20.0 30.0 0.125 -0.125 0.0
`
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatalf("could not write table: %v", err)
	}

	parts, err := ReadICTable(fname)
	if err != nil {
		t.Fatalf("could not read table: %v", err)
	}

	if len(parts) != 2 {
		t.Fatalf("read %d particles, expected 2", len(parts))
	}
	assert.Equal(t, 1.0, parts[0].Mass)
	assert.Equal(t, [3]float64{0.5, 1.5, 2.5}, parts[0].Pos)
	assert.Equal(t, [3]float64{-1.0, 0.0, 1.0}, parts[0].Vel)
	assert.Equal(t, 0.25, parts[1].Mass)
	assert.Equal(t, [3]float64{10.0, 20.0, 30.0}, parts[1].Pos)
	assert.Equal(t, 0.0, parts[0].Time)
}

func TestReadICTableNegativeMass(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "parts.txt")
	text := "-1.0 0.0 0.0 0.0 0.0 0.0 0.0\n"
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatalf("could not write table: %v", err)
	}

	if _, err := ReadICTable(fname); err == nil {
		t.Error("a negative mass was accepted")
	}
}
