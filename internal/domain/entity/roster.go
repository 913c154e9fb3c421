package entity

// Roster is an ordered collection of NPCs of one kind.
// Dead entries are kept until Compact runs at the end of a tick.
type Roster []*NPC

// Compact drops dead NPCs in place and returns the shortened roster
func (r Roster) Compact() Roster {
	kept := r[:0]
	for _, n := range r {
		if n.Alive {
			kept = append(kept, n)
		}
	}
	clear(r[len(kept):])
	return kept
}

// Live counts NPCs that are still alive
func (r Roster) Live() int {
	count := 0
	for _, n := range r {
		if n.Alive {
			count++
		}
	}
	return count
}
