// Package resource hands out process-local playable URLs for imported files.
//
// A URL stays valid until it is released. The player resolves URLs back to
// file paths when a playback handle is pointed at a song.
package resource

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Scheme prefixes every URL handed out by a Registry.
const Scheme = "song://"

// ErrUnknownURL is returned when a URL was never registered or was released.
var ErrUnknownURL = errors.New("unknown resource url")

// Registry maps playable URLs to file paths.
// It is safe for concurrent use; imports run off the UI goroutine.
type Registry struct {
	mu    sync.RWMutex
	paths map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[string]string)}
}

// Register creates a new URL for path.
func (r *Registry) Register(path string) string {
	url := Scheme + uuid.NewString()
	r.mu.Lock()
	r.paths[url] = path
	r.mu.Unlock()
	return url
}

// Resolve returns the file path behind url.
func (r *Registry) Resolve(url string) (string, error) {
	if !strings.HasPrefix(url, Scheme) {
		return "", ErrUnknownURL
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.paths[url]
	if !ok {
		return "", ErrUnknownURL
	}
	return path, nil
}

// Release forgets url. Returns false if it was not registered.
func (r *Registry) Release(url string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.paths[url]; !ok {
		return false
	}
	delete(r.paths, url)
	return true
}

// Len returns the number of live URLs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.paths)
}
