package launchcfg

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/magiconair/properties"
)

// DefaultPath is the configuration file read by Instance, relative to the
// process working directory.
const DefaultPath = "config.txt"

// Entry is a single key/value pair from the configuration file.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Config is an immutable snapshot of a configuration file. All methods are
// pure reads and safe for concurrent use.
type Config struct {
	appID            string
	userName         string
	language         string
	offline          bool
	autoDLC          bool
	buildID          string
	dlcName          string
	updateDB         bool
	signature        string
	windowInfo       string
	lvWindowInfo     string
	applicationPath  string
	workingDirectory string
	waitForExit      bool
	noOperation      bool

	// Raw pairs in first-seen file order, last duplicate wins.
	keys   []string
	values map[string]string
}

// load builds a Config from the file at path. Loading never fails: an
// unreadable file is reported through slog and yields an empty snapshot.
func load(path string) *Config {
	l := &properties.Loader{
		Encoding: properties.UTF8,
		// java.util.Properties does not expand ${key} references.
		DisableExpansion: true,
	}

	p, err := l.LoadFile(path)
	if err != nil {
		slog.Warn("failed to load config file, using defaults", "path", path, "err", err)
		p = properties.NewProperties()
		p.DisableExpansion = true
	}

	c := &Config{
		keys:   make([]string, 0, p.Len()),
		values: make(map[string]string, p.Len()),
	}
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		key := strings.TrimSpace(k)
		if _, seen := c.values[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.values[key] = strings.TrimSpace(v)
	}

	c.appID = c.str("AppId")
	c.userName = c.str("UserName")
	c.language = c.str("Language")
	c.offline = c.flag("Offline")
	c.autoDLC = c.flag("AutoDLC")
	c.buildID = c.str("BuildId")
	c.dlcName = c.str("DLCName")
	c.updateDB = c.flag("UpdateDB")
	c.signature = c.str("Signature")
	c.windowInfo = c.str("WindowInfo")
	c.lvWindowInfo = c.str("LVWindowInfo")
	c.applicationPath = c.str("ApplicationPath")
	c.workingDirectory = c.str("WorkingDirectory")
	c.waitForExit = c.flag("WaitForExit")
	c.noOperation = c.flag("NoOperation")

	return c
}

func (c *Config) str(key string) string {
	return c.values[key]
}

func (c *Config) flag(key string) bool {
	return parseFlag(c.values[key])
}

// parseFlag interprets the textual boolean convention: "1", "true" and "yes"
// (case-insensitive) are true, everything else including absence is false.
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// AppID returns the AppId value, or "" when absent.
func (c *Config) AppID() string { return c.appID }

// UserName returns the UserName value, or "" when absent.
func (c *Config) UserName() string { return c.userName }

// Language returns the Language value, or "" when absent.
func (c *Config) Language() string { return c.language }

// Offline reports whether the Offline flag is set.
func (c *Config) Offline() bool { return c.offline }

// AutoDLC reports whether the AutoDLC flag is set.
func (c *Config) AutoDLC() bool { return c.autoDLC }

// BuildID returns the BuildId value, or "" when absent.
func (c *Config) BuildID() string { return c.buildID }

// DLCName returns the DLCName value, or "" when absent.
func (c *Config) DLCName() string { return c.dlcName }

// UpdateDB reports whether the UpdateDB flag is set.
func (c *Config) UpdateDB() bool { return c.updateDB }

// Signature returns the Signature value, or "" when absent.
func (c *Config) Signature() string { return c.signature }

// WindowInfo returns the WindowInfo value, or "" when absent.
func (c *Config) WindowInfo() string { return c.windowInfo }

// LVWindowInfo returns the LVWindowInfo value, or "" when absent.
func (c *Config) LVWindowInfo() string { return c.lvWindowInfo }

// ApplicationPath returns the ApplicationPath value, or "" when absent.
func (c *Config) ApplicationPath() string { return c.applicationPath }

// WorkingDirectory returns the WorkingDirectory value, or "" when absent.
func (c *Config) WorkingDirectory() string { return c.workingDirectory }

// WaitForExit reports whether the WaitForExit flag is set.
func (c *Config) WaitForExit() bool { return c.waitForExit }

// NoOperation reports whether the NoOperation flag is set.
func (c *Config) NoOperation() bool { return c.noOperation }

// Raw returns the string value for key as read from the file, and whether
// the key was present. Keys without a typed accessor are reachable only here
// and through All.
func (c *Config) Raw(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// All returns every key/value pair in first-seen file order. The returned
// slice is a copy; mutating it does not affect the snapshot.
func (c *Config) All() []Entry {
	entries := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		entries[i] = Entry{Key: k, Value: c.values[k]}
	}
	return entries
}

// Len returns the number of distinct keys read from the file.
func (c *Config) Len() int { return len(c.keys) }

// String renders all pairs as a block, one per line, in file order.
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Config {\n")
	for _, k := range c.keys {
		fmt.Fprintf(&sb, "  %s = %s\n", k, c.values[k])
	}
	sb.WriteString("}")
	return sb.String()
}
