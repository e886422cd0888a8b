package textenc

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v4"
)

// schemes holds every registered codec by name. Using a concurrent map
// keeps Lookup safe without a package-level mutex.
var schemes = xsync.NewMap[string, Codec]()

// Register makes a codec available to Lookup under its Name. Scheme
// packages call it from init, so importing a scheme is enough to enable
// it. Register panics if the codec is nil or the name is already taken,
// both of which are programmer errors.
func Register(c Codec) {
	if c == nil {
		panic("textenc: Register called with a nil Codec")
	}
	if _, loaded := schemes.LoadOrStore(c.Name(), c); loaded {
		panic("textenc: Register called twice for scheme " + c.Name())
	}
}

// Lookup returns the codec registered under name, or ErrUnknownScheme.
func Lookup(name string) (Codec, error) {
	c, ok := schemes.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return c, nil
}

// Schemes returns the sorted names of all registered codecs.
func Schemes() []string {
	var names []string
	schemes.Range(func(name string, _ Codec) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
