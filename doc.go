// Package launchcfg loads a launcher's flat key=value configuration file and
// exposes it as an immutable, process-wide snapshot.
//
// The file follows Java properties conventions: one pair per logical line,
// '=' or ':' separators, '#' and '!' comment lines, backslash continuation
// and escapes. Fifteen well-known keys (AppId, UserName, Offline, ...) have
// typed accessors with defaults; every other key remains reachable through
// the generic lookup and enumeration.
//
// # Lifecycle
//
// The configuration is read exactly once per process:
//
//	cfg := launchcfg.Instance()          // lazy, loads ./config.txt
//	fmt.Println(cfg.AppID())
//
// or, before any Instance call, from an explicit path:
//
//	cfg, err := launchcfg.Init("/etc/launcher/config.txt")
//
// Init after the snapshot exists fails with ErrAlreadyInitialized; the
// original snapshot is never replaced. There is no reload.
//
// # Failure policy
//
// A missing or unreadable file is not an error: loading logs a warning
// through log/slog and yields an empty configuration with every field at
// its default. Callers always get a usable snapshot.
//
// All accessors are safe for concurrent use; the snapshot never changes
// after construction.
package launchcfg
