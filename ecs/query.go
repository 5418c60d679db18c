package ecs

// intersectEntities returns entity IDs present in every set, iterating the
// smallest set.
func intersectEntities(sets []*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]int, 0, smallest.Len())
outer:
	for _, id := range smallest.Entities() {
		for _, s := range sets {
			if s == smallest {
				continue
			}
			if !s.Has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}
