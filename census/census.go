/*package census appends per-level particle counts to a CSV file so the
population of a run can be inspected and plotted without touching the
snapshot machinery.
*/
package census

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/amrkit/particles/pool"
)

// Row is one level of one snapshot. The pool-wide columns repeat on every
// row of a snapshot.
type Row struct {
	Step        int     `csv:"step"`
	Level       int     `csv:"level"`
	Active      int     `csv:"active"`
	TotalActive int     `csv:"total_active"`
	Inactive    int     `csv:"inactive"`
	Capacity    int     `csv:"capacity"`
	MeanDensity float64 `csv:"mean_density"`
}

// Writer appends census snapshots to a single CSV file, writing the
// header once.
type Writer struct {
	f             *os.File
	headerWritten bool
}

// NewWriter creates the census file, truncating any previous one.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating census file: %w", err)
	}
	return &Writer{f: f}, nil
}

// Snapshot appends one row per refinement level of the given pool.
// meanDens is the caller's density accumulator at this step.
func (w *Writer) Snapshot(step int, p *pool.Pool, meanDens float64) error {
	rows := make([]Row, p.Levels())
	for lv := range rows {
		rows[lv] = Row{
			Step:        step,
			Level:       lv,
			Active:      p.ActiveAt(lv),
			TotalActive: p.Active(),
			Inactive:    p.Inactive(),
			Capacity:    p.Capacity(),
			MeanDensity: meanDens,
		}
	}

	if !w.headerWritten {
		if err := gocsv.Marshal(rows, w.f); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, w.f); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *Writer) Close() error { return w.f.Close() }

// Read loads a census file back, e.g. for plotting.
func Read(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading census: %w", err)
	}
	return rows, nil
}
