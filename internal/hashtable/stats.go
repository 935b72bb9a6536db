package hashtable

// Stats describes the shape of a table for diagnostics. It is computed by
// walking every chain, so collecting it costs O(n).
type Stats struct {
	Entries     int
	Buckets     int
	UsedBuckets int
	// Allocated counts entry slots handed out by the block list,
	// including slots currently on the free list.
	Allocated  int
	MaxChain   int
	AvgChain   float64
	LoadFactor float64
}

// Stats returns current table statistics.
func (t *Table[K, V]) Stats() Stats {
	s := Stats{
		Entries:   t.Size(),
		Buckets:   len(t.buckets),
		Allocated: int(t.blockList.allocated()),
	}
	for _, head := range t.buckets {
		n := 0
		for pos := head; pos != 0; {
			n++
			pos = t.blockList.ref(pos).next
		}
		if n > 0 {
			s.UsedBuckets++
		}
		if n > s.MaxChain {
			s.MaxChain = n
		}
	}
	if s.UsedBuckets > 0 {
		s.AvgChain = float64(s.Entries) / float64(s.UsedBuckets)
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
