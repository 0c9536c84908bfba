// Package export renders garden snapshots as CSV
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
)

// Row sections
const (
	SectionGrid     = "grid"
	SectionBackpack = "backpack"
	SectionSprite   = "sprite"
)

// Row is one CSV record. Grid rows fill the position and tree columns,
// backpack rows fill key and count, sprite rows fill x and y.
type Row struct {
	Section          string  `csv:"section"`
	Key              string  `csv:"key"`
	Name             string  `csv:"name"`
	Level            int     `csv:"level"`
	Count            int     `csv:"count"`
	Row              int     `csv:"row"`
	Col              int     `csv:"col"`
	X                float64 `csv:"x"`
	Y                float64 `csv:"y"`
	Fruits           int     `csv:"fruits"`
	MaxFruits        int     `csv:"max_fruits"`
	Growing          bool    `csv:"growing"`
	RemainingSeconds int64   `csv:"remaining_seconds"`
}

// Rows flattens a snapshot: grid cells in row-major order, then backpack
// stacks, then sprites
func Rows(snap *gardenv1alpha1.Snapshot) []*Row {
	if snap == nil {
		return nil
	}

	rows := make([]*Row, 0, len(snap.Cells)+len(snap.Backpack)+len(snap.Sprites))
	for _, c := range snap.Cells {
		r := &Row{
			Section: SectionGrid,
			Key:     cellKey(c),
			Name:    c.Name,
			Level:   c.Level,
			Count:   1,
			Row:     c.Pos.Row,
			Col:     c.Pos.Col,
		}
		if c.Tree != nil {
			r.Fruits = c.Tree.CurrentFruits
			r.MaxFruits = c.Tree.MaxFruits
			r.Growing = c.Tree.Growing
			r.RemainingSeconds = c.Tree.RemainingSeconds
		}
		rows = append(rows, r)
	}
	for _, st := range snap.Backpack {
		rows = append(rows, &Row{
			Section: SectionBackpack,
			Key:     st.Key,
			Name:    st.Name,
			Level:   st.Level,
			Count:   st.Count,
		})
	}
	for _, sp := range snap.Sprites {
		rows = append(rows, &Row{
			Section: SectionSprite,
			Key:     sp.Id,
			Name:    sp.Category,
			Level:   sp.Level,
			Count:   1,
			X:       sp.Point.X,
			Y:       sp.Point.Y,
		})
	}
	return rows
}

func cellKey(c gardenv1alpha1.Cell) string {
	if c.Kind == "seed" {
		return "seed"
	}
	return fmt.Sprintf("%s-%d", c.Kind, c.Level)
}

// WriteCSV writes the snapshot rows with a header line
func WriteCSV(w io.Writer, snap *gardenv1alpha1.Snapshot) error {
	rows := Rows(snap)
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing snapshot csv: %w", err)
	}
	return nil
}
