package core

import (
	"sync"
	"sync/atomic"

	"github.com/svisuals/seq4d/internal/contract"
	"github.com/svisuals/seq4d/schema"
)

// ProfileResolver resolves the single applicable appearance profile for a
// task under the active group. Resolution never fails: the chain terminates
// at DEFAULT.NOTDEFINED, which the profile store guarantees to exist.
//
// Resolved profiles are cached per (task, active group). The cache is a
// whole snapshot replaced atomically when the active group changes; it is
// never patched in place, so readers observe either the old or the new
// snapshot, never a mix.
type ProfileResolver struct {
	profiles contract.ProfileStore

	mu      sync.Mutex
	snap    *resolverSnapshot
	version atomic.Uint64
}

type resolverSnapshot struct {
	group string
	cache map[string]schema.AppearanceProfile
}

// NewProfileResolver returns a resolver backed by the given profile store.
func NewProfileResolver(profiles contract.ProfileStore) *ProfileResolver {
	return &ProfileResolver{profiles: profiles}
}

// ActivateStack resolves the stack's winner, swaps the cache snapshot if the
// winner changed, and reports the active group plus whether a change
// happened. The boolean is the group-change notification dependent caches
// consume.
func (r *ProfileResolver) ActivateStack(stack schema.GroupStack) (string, bool) {
	active := stack.Active()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap != nil && r.snap.group == active {
		return active, false
	}
	r.snap = &resolverSnapshot{group: active, cache: make(map[string]schema.AppearanceProfile)}
	r.version.Add(1)
	return active, true
}

// Version returns the monotonically increasing group-change counter.
func (r *ProfileResolver) Version() uint64 {
	return r.version.Load()
}

// Resolve returns the applicable profile for the task under activeGroup.
func (r *ProfileResolver) Resolve(task schema.Task, activeGroup string) schema.AppearanceProfile {
	r.mu.Lock()
	if r.snap == nil || r.snap.group != activeGroup {
		r.snap = &resolverSnapshot{group: activeGroup, cache: make(map[string]schema.AppearanceProfile)}
		r.version.Add(1)
	}
	if p, ok := r.snap.cache[task.ID]; ok {
		r.mu.Unlock()
		return p
	}
	snap := r.snap
	r.mu.Unlock()

	p := r.lookup(task, activeGroup)

	r.mu.Lock()
	// Only populate the snapshot the lookup was computed against.
	if r.snap == snap {
		r.snap.cache[task.ID] = p
	}
	r.mu.Unlock()
	return p
}

// lookup walks the precedence chain: explicit enabled override in the active
// group, categorical type in the active group, categorical type in DEFAULT,
// then DEFAULT.NOTDEFINED.
func (r *ProfileResolver) lookup(task schema.Task, activeGroup string) schema.AppearanceProfile {
	group, groupOK := r.profiles.Group(activeGroup)

	if groupOK {
		if ov, ok := task.Overrides[activeGroup]; ok && ov.Enabled && ov.Profile != "" {
			if p, found := group.Find(ov.Profile); found {
				return p
			}
		}
	}

	categorical := task.CategoricalType
	if categorical == "" {
		categorical = schema.NotDefinedProfile
	}

	if groupOK {
		if p, found := group.Find(categorical); found {
			return p
		}
	}

	defaultGroup, ok := r.profiles.Group(schema.DefaultGroupName)
	if !ok {
		// The store contract guarantees DEFAULT; tolerate a broken store
		// rather than fail resolution.
		defaultGroup = schema.DefaultProfileGroup()
	}
	if p, found := defaultGroup.Find(categorical); found {
		return p
	}
	if p, found := defaultGroup.Find(schema.NotDefinedProfile); found {
		return p
	}
	p, _ := schema.DefaultProfileGroup().Find(schema.NotDefinedProfile)
	return p
}
