package vesseldb

import(
	"sort"
	"sync"
)

// MemSource is a map-backed ReportSource, for tests and for loading
// offline snapshots. The mutex makes each accessor a consistent read,
// which is all the snapshot guarantee reconstruction asks of a source.
type MemSource struct {
	mu       sync.RWMutex
	reports  map[string][]PositionReport
	metadata map[string]VesselMetadata
}

func NewMemSource() *MemSource {
	return &MemSource{
		reports: map[string][]PositionReport{},
		metadata: map[string]VesselMetadata{},
	}
}

func (s *MemSource)Add(reports ...PositionReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _,r := range reports {
		s.reports[r.VesselID] = append(s.reports[r.VesselID], r)
	}
}

func (s *MemSource)SetMetadata(m VesselMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata[m.VesselID] = m
}

func (s *MemSource)Reports(vesselID string) []PositionReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Callers re-sort, so hand them their own copy
	out := make([]PositionReport, len(s.reports[vesselID]))
	copy(out, s.reports[vesselID])
	return out
}

func (s *MemSource)Metadata(vesselID string) (VesselMetadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m,ok := s.metadata[vesselID]
	return m,ok
}

func (s *MemSource)VesselIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := []string{}
	for id := range s.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
