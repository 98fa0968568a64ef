package core

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/svisuals/seq4d/schema"
)

// IndexMapper assigns stable, compact numeric ids to profile names within
// the active group. The mapping is an immutable snapshot rebuilt wholesale
// whenever the group changes; repeated calls without a group change return
// the identical snapshot.
type IndexMapper struct {
	mu      sync.RWMutex
	snap    schema.IndexSnapshot
	version atomic.Uint64
}

// NewIndexMapper returns an empty mapper; the first access builds the
// snapshot.
func NewIndexMapper() *IndexMapper {
	return &IndexMapper{}
}

// SnapshotFor returns the index snapshot for the group, rebuilding it when
// the cached snapshot belongs to a different group.
func (m *IndexMapper) SnapshotFor(group schema.ProfileGroup) schema.IndexSnapshot {
	m.mu.RLock()
	snap := m.snap
	m.mu.RUnlock()
	if snap.Indices != nil && snap.Group == group.Name {
		return snap
	}

	rebuilt := buildIndexSnapshot(group, m.version.Add(1))

	m.mu.Lock()
	m.snap = rebuilt
	m.mu.Unlock()
	return rebuilt
}

// buildIndexSnapshot assigns increasing integers from 0 over the group's
// profile names in lexicographic order. NOTDEFINED always has an index; when
// the group omits it, it maps to 0 as the safe fallback.
func buildIndexSnapshot(group schema.ProfileGroup, version uint64) schema.IndexSnapshot {
	names := group.Names()
	sort.Strings(names)

	indices := make(map[string]int, len(names)+1)
	for i, name := range names {
		indices[name] = i
	}
	if _, ok := indices[schema.NotDefinedProfile]; !ok {
		indices[schema.NotDefinedProfile] = 0
	}

	return schema.IndexSnapshot{
		Group:   group.Name,
		Version: version,
		Indices: indices,
	}
}

// IndexOf returns the id for a profile name in the snapshot, falling back to
// the NOTDEFINED id for unknown names.
func IndexOf(snap schema.IndexSnapshot, profileName string) int {
	if idx, ok := snap.Indices[profileName]; ok {
		return idx
	}
	return snap.Indices[schema.NotDefinedProfile]
}
