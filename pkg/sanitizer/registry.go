package sanitizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownSanitizer is returned when a transform name is not registered.
var ErrUnknownSanitizer = errors.New("unknown sanitizer")

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{
		"trim":          Trim,
		"lower":         ToLower,
		"upper":         ToUpper,
		"collapse":      CollapseWhitespace,
		"strip_control": StripControl,
		"single_line":   SingleLine,
		"digits":        KeepDigits,
		"email":         NormalizeEmail,
		"phone":         NormalizePhone,
	}
)

// Register adds or replaces a named transform. Empty names and nil funcs are ignored.
func Register(name string, fn Func) {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Lookup returns the transform registered as name.
func Lookup(name string) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[strings.TrimSpace(name)]
	return fn, ok
}

// Parse chains the named transforms in order. An empty list yields nil.
func Parse(names []string) (Func, error) {
	if len(names) == 0 {
		return nil, nil
	}
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		fns = append(fns, fn)
	}
	return Chain(fns...), nil
}
