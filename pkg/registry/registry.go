package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/decor/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int
}

type registry[T any] struct {
	mu       sync.RWMutex
	items    map[string]T
	noun     string
	notFound errors.ErrorCode
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return NewNamed[T]("item", errors.ErrNotFound)
}

// NewNamed creates a Registry whose errors name the kind of item it holds
// and report lookups of unknown names with the given code.
func NewNamed[T any](noun string, notFound errors.ErrorCode) Registry[T] {
	return &registry[T]{
		items:    make(map[string]T),
		noun:     noun,
		notFound: notFound,
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds an item to the registry
func (r *registry[T]) Register(name string, item T) error {
	key := normalize(name)
	if key == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.noun)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s '%s' is already registered", r.noun, key)
	}

	r.items[key] = item
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[normalize(name)]
	if !exists {
		var zero T
		return zero, errors.Newf(r.notFound, "unknown %s '%s'", r.noun, name).
			WithDetail("name", name).
			WithDetail("known", r.sortedNames())
	}

	return item, nil
}

// Remove removes an item from the registry
func (r *registry[T]) Remove(name string) error {
	key := normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; !exists {
		return errors.Newf(r.notFound, "unknown %s '%s'", r.noun, name)
	}

	delete(r.items, key)
	return nil
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

func (r *registry[T]) sortedNames() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[normalize(name)]
	return exists
}

// Clear removes all items from the registry
func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails.
// Registration errors at startup are programming errors.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics if not found
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}

// All returns every registered item in name order
func All[T any](reg Registry[T]) []T {
	names := reg.List()
	items := make([]T, 0, len(names))
	for _, name := range names {
		if item, err := reg.Get(name); err == nil {
			items = append(items, item)
		}
	}
	return items
}
