package compress

import (
	"fmt"
	"sync"
)

var (
	mu      sync.RWMutex
	byName  = map[string]Compressor{}
	nameFor = map[Compressor]string{}
)

func init() {
	for name, c := range map[string]Compressor{
		"none": Identity{},
		"gzip": GZIP{},
		"zlib": Zlib{},
		"zstd": Zstd{},
		"lz4":  LZ4{},
	} {
		byName[name] = c
		nameFor[c] = name
	}
}

// Register adds a named compressor. The name is what CompressedObject tags
// store on the wire. Registering an existing name replaces it.
func Register(name string, c Compressor) error {
	if name == "" {
		return fmt.Errorf("compress: empty compressor name")
	}
	if c == nil {
		return fmt.Errorf("compress: nil compressor %q", name)
	}
	mu.Lock()
	defer mu.Unlock()
	if old, ok := byName[name]; ok {
		delete(nameFor, old)
	}
	byName[name] = c
	nameFor[c] = name
	return nil
}

// Lookup resolves a compressor by its registered name.
func Lookup(name string) (Compressor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byName[name]
	return c, ok
}

// NameOf resolves the registered name of a compressor instance.
func NameOf(c Compressor) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	name, ok := nameFor[c]
	return name, ok
}
