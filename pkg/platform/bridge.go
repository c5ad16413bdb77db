// Package platform bridges the slide library to host-native capabilities.
//
// The library talks to native code through named method channels. A host
// embedding the library registers a [Backend] that carries invocations to
// the platform side; without one, every capability degrades to a no-op so
// the engine keeps working headless (tests, previews, CI).
package platform

import (
	"errors"
	"sync"
)

// ErrNoBackend is returned by channel invocations when no backend has been
// registered. Best-effort capabilities treat it as "capability absent".
var ErrNoBackend = errors.New("platform: no backend registered")

// Backend delivers method invocations to the native side.
type Backend interface {
	Invoke(channel, method string, args any) (any, error)
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend installs the native bridge. This should be called once by
// the host during initialization. Pass nil to detach.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

func currentBackend() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend
}

// MethodChannel provides method-call communication with native code.
type MethodChannel struct {
	name string
}

// NewMethodChannel creates a new method channel with the given name.
func NewMethodChannel(name string) *MethodChannel {
	return &MethodChannel{name: name}
}

// Name returns the channel name.
func (c *MethodChannel) Name() string {
	return c.name
}

// Invoke calls a method on the native side and returns the result.
// Returns ErrNoBackend when no backend is registered.
func (c *MethodChannel) Invoke(method string, args any) (any, error) {
	b := currentBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	return b.Invoke(c.name, method, args)
}
