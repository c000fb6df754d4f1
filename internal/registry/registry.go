package registry

import (
	"sync"
	"time"

	"github.com/langlint/langlint/internal/dictionary"
)

// LocaleRegistry manages the loaded locale dictionaries. Dictionaries are
// immutable; a reload replaces the tree wholesale and broadcasts an event,
// so readers never observe a partially updated locale.
type LocaleRegistry struct {
	locales  map[string]*LocaleInfo
	mutex    sync.RWMutex
	watchers []chan LocaleEvent
}

// LocaleInfo holds one locale's dictionary and derived metadata
type LocaleInfo struct {
	Tag      string
	Root     *dictionary.Node
	Paths    dictionary.PathSet
	FilePath string
	LoadedAt time.Time
}

// LocaleEvent represents a change in the locale registry
type LocaleEvent struct {
	Type      EventType
	Locale    *LocaleInfo
	Timestamp time.Time
}

// EventType represents the type of locale event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NewLocaleRegistry creates a new locale registry
func NewLocaleRegistry() *LocaleRegistry {
	return &LocaleRegistry{
		locales:  make(map[string]*LocaleInfo),
		watchers: make([]chan LocaleEvent, 0),
	}
}

// Register adds or replaces a locale in the registry and derives its path
// vocabulary once, up front.
func (r *LocaleRegistry) Register(tag, filePath string, root *dictionary.Node) error {
	paths, err := dictionary.DerivePaths(root)
	if err != nil {
		return err
	}

	info := &LocaleInfo{
		Tag:      tag,
		Root:     root,
		Paths:    paths,
		FilePath: filePath,
		LoadedAt: time.Now(),
	}

	r.mutex.Lock()
	eventType := EventTypeAdded
	if _, exists := r.locales[tag]; exists {
		eventType = EventTypeUpdated
	}
	r.locales[tag] = info
	watchers := make([]chan LocaleEvent, len(r.watchers))
	copy(watchers, r.watchers)
	r.mutex.Unlock()

	event := LocaleEvent{
		Type:      eventType,
		Locale:    info,
		Timestamp: time.Now(),
	}

	for _, watcher := range watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
	return nil
}

// Get retrieves a locale by tag
func (r *LocaleRegistry) Get(tag string) (*LocaleInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	info, exists := r.locales[tag]
	return info, exists
}

// GetAll returns all registered locales keyed by tag
func (r *LocaleRegistry) GetAll() map[string]*LocaleInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]*LocaleInfo, len(r.locales))
	for tag, info := range r.locales {
		out[tag] = info
	}
	return out
}

// Dictionaries returns the tag-to-root mapping, as the parity check wants it
func (r *LocaleRegistry) Dictionaries() map[string]*dictionary.Node {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]*dictionary.Node, len(r.locales))
	for tag, info := range r.locales {
		out[tag] = info.Root
	}
	return out
}

// Remove deletes a locale from the registry
func (r *LocaleRegistry) Remove(tag string) {
	r.mutex.Lock()
	info, exists := r.locales[tag]
	if exists {
		delete(r.locales, tag)
	}
	watchers := make([]chan LocaleEvent, len(r.watchers))
	copy(watchers, r.watchers)
	r.mutex.Unlock()

	if !exists {
		return
	}

	event := LocaleEvent{
		Type:      EventTypeRemoved,
		Locale:    info,
		Timestamp: time.Now(),
	}
	for _, watcher := range watchers {
		select {
		case watcher <- event:
		default:
		}
	}
}

// Count returns the number of registered locales
func (r *LocaleRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.locales)
}

// Watch returns a channel receiving locale change events
func (r *LocaleRegistry) Watch() <-chan LocaleEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	watcher := make(chan LocaleEvent, 16)
	r.watchers = append(r.watchers, watcher)
	return watcher
}
