package store

import (
	"context"

	"projectpad/internal/model"
)

// DoctorReport summarizes what a repair pass found.
type DoctorReport struct {
	Nodes    int
	Repaired bool
}

// Doctor loads the persisted tree, normalizes ids (repairing missing or
// duplicate ones), and writes the cleaned snapshot back when anything changed.
func (s Store) Doctor(ctx context.Context) (DoctorReport, error) {
	t, repaired, err := s.LoadTree(ctx)
	if err != nil {
		return DoctorReport{}, err
	}
	rep := DoctorReport{Nodes: countNodes(t), Repaired: repaired}
	if repaired {
		if err := s.SaveTree(ctx, t); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func countNodes(t []model.Node) int {
	n := 0
	for i := range t {
		n += 1 + countNodes(t[i].Children)
	}
	return n
}
