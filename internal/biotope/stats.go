package biotope

import "slices"

// KindStats counts what happened to one strategy kind during a round.
type KindStats struct {
	Population     int
	Born           int
	DiedOfAge      int
	DiedOfVitality int
}

// RoundStats summarizes the biotope after a seed, a round or a placement.
type RoundStats struct {
	Round        int
	Interactions int
	Kinds        map[string]KindStats
}

func newRoundStats(round int, prev RoundStats) RoundStats {
	s := RoundStats{Round: round, Kinds: make(map[string]KindStats, len(prev.Kinds))}
	for k := range prev.Kinds {
		s.Kinds[k] = KindStats{}
	}
	return s
}

func (s *RoundStats) update(kind string, fn func(k *KindStats)) {
	k := s.Kinds[kind]
	fn(&k)
	s.Kinds[kind] = k
}

// Names returns the kinds present in the stats in sorted order.
func (s RoundStats) Names() []string {
	names := make([]string, 0, len(s.Kinds))
	for k := range s.Kinds {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Population returns the total number of living finches.
func (s RoundStats) Population() int {
	n := 0
	for _, k := range s.Kinds {
		n += k.Population
	}
	return n
}

// Born returns the total number of births.
func (s RoundStats) Born() int {
	n := 0
	for _, k := range s.Kinds {
		n += k.Born
	}
	return n
}

// Deaths returns the total number of finches removed, by any cause.
func (s RoundStats) Deaths() int {
	n := 0
	for _, k := range s.Kinds {
		n += k.DiedOfAge + k.DiedOfVitality
	}
	return n
}

// Clone returns a deep copy safe to hand to observers.
func (s RoundStats) Clone() RoundStats {
	c := s
	c.Kinds = make(map[string]KindStats, len(s.Kinds))
	for k, v := range s.Kinds {
		c.Kinds[k] = v
	}
	return c
}
