package platform

import "sync"

var (
	dispatchMu sync.RWMutex
	uiDispatch func(callback func())
)

// RegisterDispatch installs the function used to hop callbacks onto the
// host's UI thread. Hosts whose activation handlers touch UI state register
// one during initialization and pass [Dispatch] to the engine's dispatcher
// hook; headless hosts skip it and callbacks run inline.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	uiDispatch = fn
	dispatchMu.Unlock()
}

// Dispatch schedules callback on the UI thread. It reports false when no
// dispatch function is registered or the callback is nil, letting callers
// fall back to a synchronous call.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := uiDispatch
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
