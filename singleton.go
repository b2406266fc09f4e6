package launchcfg

import "sync"

// The snapshot is constructed at most once per process. A plain mutex guards
// both the lazy construction and the lifecycle check in Init; sync.Once alone
// cannot report "already initialized" to a late Init caller.
var (
	mu       sync.Mutex
	instance *Config
)

// Instance returns the process-wide configuration, constructing it from
// DefaultPath on first call. Concurrent first callers all observe the same
// fully constructed snapshot. Construction never fails; see the package
// failure policy.
func Instance() *Config {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = load(DefaultPath)
	}
	return instance
}

// Init constructs the process-wide configuration from an explicit file path.
// It must be called before the first Instance call: once the snapshot exists,
// Init fails with ErrAlreadyInitialized and the existing snapshot is kept.
// An empty path fails with ErrEmptyPath.
func Init(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return nil, ErrAlreadyInitialized
	}
	instance = load(path)
	return instance, nil
}

// reset discards the snapshot so tests can exercise construction repeatedly.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
