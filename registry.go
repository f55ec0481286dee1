package viritys

import (
	"fmt"
	"sort"
)

// TuningRegistry maps identifiers to shared tuning system instances. The ids
// are kept sorted so iteration order is deterministic and lookups stay
// O(log n). The zero value is an empty registry ready for use.
//
// The registry applies no internal locking: build it fully before sharing it
// between goroutines, or serialize mutation externally. Once registration has
// settled, any number of goroutines may resolve frequencies and names
// concurrently.
type TuningRegistry struct {
	ids     []SystemID
	systems map[SystemID]TuningSystem
}

// UnknownSystemError reports a lookup of an identifier that has not been
// registered.
type UnknownSystemError struct {
	ID SystemID
}

func (e UnknownSystemError) Error() string {
	return fmt.Sprintf("unknown tuning system: %s", e.ID)
}

// DuplicateSystemError reports a TryRegister call for an identifier that
// already exists.
type DuplicateSystemError struct {
	ID SystemID
}

func (e DuplicateSystemError) Error() string {
	return fmt.Sprintf("tuning system %s is already registered", e.ID)
}

// NewTuningRegistry returns an empty registry.
func NewTuningRegistry() *TuningRegistry {
	return &TuningRegistry{}
}

// Len returns the number of registered tuning systems.
func (r *TuningRegistry) Len() int { return len(r.ids) }

// search returns the sorted position of id and whether it is present.
func (r *TuningRegistry) search(id SystemID) (int, bool) {
	i := sort.Search(len(r.ids), func(i int) bool { return r.ids[i] >= id })
	return i, i < len(r.ids) && r.ids[i] == id
}

// Insert registers a system unconditionally, returning the previous system
// and true when an entry was replaced.
func (r *TuningRegistry) Insert(id SystemID, system TuningSystem) (TuningSystem, bool) {
	if r.systems == nil {
		r.systems = make(map[SystemID]TuningSystem)
	}
	i, found := r.search(id)
	prev := r.systems[id]
	r.systems[id] = system
	if !found {
		r.ids = append(r.ids, "")
		copy(r.ids[i+1:], r.ids[i:])
		r.ids[i] = id
	}
	return prev, found
}

// Register registers a system, silently replacing any previous entry.
func (r *TuningRegistry) Register(id SystemID, system TuningSystem) {
	r.Insert(id, system)
}

// With registers a system and returns the registry, for chaining during
// setup.
func (r *TuningRegistry) With(id SystemID, system TuningSystem) *TuningRegistry {
	r.Register(id, system)
	return r
}

// TryRegister registers a system, failing with a DuplicateSystemError when
// the identifier is already in use.
func (r *TuningRegistry) TryRegister(id SystemID, system TuningSystem) error {
	if _, found := r.search(id); found {
		return DuplicateSystemError{ID: id}
	}
	r.Insert(id, system)
	return nil
}

// RegisterIfAbsent registers a system only when the identifier is unused and
// reports whether it was inserted. The existing system is left untouched
// otherwise.
func (r *TuningRegistry) RegisterIfAbsent(id SystemID, system TuningSystem) bool {
	if _, found := r.search(id); found {
		return false
	}
	r.Insert(id, system)
	return true
}

// GetOrInsert returns the system registered under id, lazily constructing
// and registering one with factory when absent. The factory is invoked at
// most once per identifier.
func (r *TuningRegistry) GetOrInsert(id SystemID, factory func() TuningSystem) TuningSystem {
	if system, ok := r.Get(id); ok {
		return system
	}
	system := factory()
	r.Insert(id, system)
	return system
}

// Get returns the system registered under id.
func (r *TuningRegistry) Get(id SystemID) (TuningSystem, bool) {
	if _, found := r.search(id); !found {
		return nil, false
	}
	return r.systems[id], true
}

// GetStr is a convenience lookup accepting a plain string identifier.
func (r *TuningRegistry) GetStr(id string) (TuningSystem, bool) {
	return r.Get(SystemID(id))
}

// Contains reports whether id is registered.
func (r *TuningRegistry) Contains(id SystemID) bool {
	_, found := r.search(id)
	return found
}

// ContainsStr reports whether the plain string identifier is registered.
func (r *TuningRegistry) ContainsStr(id string) bool {
	return r.Contains(SystemID(id))
}

// Remove deletes the entry for id, returning the removed system and whether
// an entry existed.
func (r *TuningRegistry) Remove(id SystemID) (TuningSystem, bool) {
	i, found := r.search(id)
	if !found {
		return nil, false
	}
	system := r.systems[id]
	delete(r.systems, id)
	r.ids = append(r.ids[:i], r.ids[i+1:]...)
	return system, true
}

// Clear removes every registered system.
func (r *TuningRegistry) Clear() {
	r.ids = r.ids[:0]
	for id := range r.systems {
		delete(r.systems, id)
	}
}

// IDs yields the registered identifiers in sorted order. It can be ranged
// over directly: for id := range r.IDs.
func (r *TuningRegistry) IDs(yield func(SystemID) bool) {
	for _, id := range r.ids {
		if !yield(id) {
			return
		}
	}
}

// All yields the registered (id, system) pairs in sorted id order.
func (r *TuningRegistry) All(yield func(SystemID, TuningSystem) bool) {
	for _, id := range r.ids {
		if !yield(id, r.systems[id]) {
			return
		}
	}
}

// Replace swaps the system stored under id in place, reporting whether the
// identifier was present. Useful for tweaking a registered system without
// disturbing iteration order.
func (r *TuningRegistry) Replace(id SystemID, system TuningSystem) bool {
	if _, found := r.search(id); !found {
		return false
	}
	r.systems[id] = system
	return true
}

// ResolveSystem returns the system for id, failing with UnknownSystemError
// when absent.
func (r *TuningRegistry) ResolveSystem(id SystemID) (TuningSystem, error) {
	system, ok := r.Get(id)
	if !ok {
		return nil, UnknownSystemError{ID: id}
	}
	return system, nil
}

// ResolveFrequency resolves the frequency of an abstract index in the given
// system. Each call recomputes from the system's closed-form rule; nothing
// is cached.
func (r *TuningRegistry) ResolveFrequency(id SystemID, index int) (float32, error) {
	system, err := r.ResolveSystem(id)
	if err != nil {
		return 0, err
	}
	return system.ToFrequency(index), nil
}

// ResolveName resolves the optional symbolic name of an abstract index in
// the given system. The second return value is false when the system
// provides no name for the index (or implements no naming at all); the
// error is non-nil only when the system itself is unknown.
func (r *TuningRegistry) ResolveName(id SystemID, index int) (string, bool, error) {
	system, err := r.ResolveSystem(id)
	if err != nil {
		return "", false, err
	}
	namer, ok := system.(PitchNamer)
	if !ok {
		return "", false, nil
	}
	name, ok := namer.NameOf(index)
	return name, ok, nil
}
