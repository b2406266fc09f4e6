package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cfgkit/launchcfg"
)

// Formatter renders configuration data for output.
type Formatter interface {
	FormatSummary(w io.Writer, cfg *launchcfg.Config) error
	FormatEntries(w io.Writer, entries []launchcfg.Entry) error
	FormatValue(w io.Writer, key, value string) error
}

// newFormatter returns the formatter for the given --output value.
func newFormatter(format string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return &textFormatter{}, nil
	case "json":
		return &jsonFormatter{}, nil
	case "yaml", "yml":
		return &yamlFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textFormatter outputs human-readable text.
type textFormatter struct{}

// FormatSummary prints the full block rendering followed by the well-known
// fields.
func (f *textFormatter) FormatSummary(w io.Writer, cfg *launchcfg.Config) error {
	_, _ = fmt.Fprintln(w, cfg.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "AppId:           %s\n", cfg.AppID())
	_, _ = fmt.Fprintf(w, "UserName:        %s\n", cfg.UserName())
	_, _ = fmt.Fprintf(w, "Language:        %s\n", cfg.Language())
	_, _ = fmt.Fprintf(w, "Offline:         %t\n", cfg.Offline())
	_, _ = fmt.Fprintf(w, "DLCName:         %s\n", cfg.DLCName())
	_, _ = fmt.Fprintf(w, "ApplicationPath: %s\n", cfg.ApplicationPath())
	return nil
}

// FormatEntries prints all pairs, one per line, in file order.
func (f *textFormatter) FormatEntries(w io.Writer, entries []launchcfg.Entry) error {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No entries found")
		return nil
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s = %s\n", e.Key, e.Value)
	}
	_, _ = fmt.Fprintf(w, "\n%d pair(s)\n", len(entries))
	return nil
}

// FormatValue prints the bare value.
func (f *textFormatter) FormatValue(w io.Writer, key, value string) error {
	_, _ = fmt.Fprintln(w, value)
	return nil
}

// summary is the serialized form of the well-known fields plus all raw
// entries, used by the json and yaml formatters.
type summary struct {
	AppID            string `json:"app_id" yaml:"app_id"`
	UserName         string `json:"user_name" yaml:"user_name"`
	Language         string `json:"language" yaml:"language"`
	Offline          bool   `json:"offline" yaml:"offline"`
	AutoDLC          bool   `json:"auto_dlc" yaml:"auto_dlc"`
	BuildID          string `json:"build_id" yaml:"build_id"`
	DLCName          string `json:"dlc_name" yaml:"dlc_name"`
	UpdateDB         bool   `json:"update_db" yaml:"update_db"`
	Signature        string `json:"signature" yaml:"signature"`
	WindowInfo       string `json:"window_info" yaml:"window_info"`
	LVWindowInfo     string `json:"lv_window_info" yaml:"lv_window_info"`
	ApplicationPath  string `json:"application_path" yaml:"application_path"`
	WorkingDirectory string `json:"working_directory" yaml:"working_directory"`
	WaitForExit      bool   `json:"wait_for_exit" yaml:"wait_for_exit"`
	NoOperation      bool   `json:"no_operation" yaml:"no_operation"`
}

func newSummary(cfg *launchcfg.Config) summary {
	return summary{
		AppID:            cfg.AppID(),
		UserName:         cfg.UserName(),
		Language:         cfg.Language(),
		Offline:          cfg.Offline(),
		AutoDLC:          cfg.AutoDLC(),
		BuildID:          cfg.BuildID(),
		DLCName:          cfg.DLCName(),
		UpdateDB:         cfg.UpdateDB(),
		Signature:        cfg.Signature(),
		WindowInfo:       cfg.WindowInfo(),
		LVWindowInfo:     cfg.LVWindowInfo(),
		ApplicationPath:  cfg.ApplicationPath(),
		WorkingDirectory: cfg.WorkingDirectory(),
		WaitForExit:      cfg.WaitForExit(),
		NoOperation:      cfg.NoOperation(),
	}
}

// jsonFormatter outputs JSON.
type jsonFormatter struct{}

// FormatSummary formats the well-known fields and all entries as JSON.
func (f *jsonFormatter) FormatSummary(w io.Writer, cfg *launchcfg.Config) error {
	output := struct {
		summary
		Entries []launchcfg.Entry `json:"entries"`
	}{
		summary: newSummary(cfg),
		Entries: cfg.All(),
	}
	return writeJSON(w, output)
}

// FormatEntries formats all pairs as a JSON array, preserving file order.
func (f *jsonFormatter) FormatEntries(w io.Writer, entries []launchcfg.Entry) error {
	output := struct {
		Entries []launchcfg.Entry `json:"entries"`
	}{
		Entries: entries,
	}
	return writeJSON(w, output)
}

// FormatValue formats a single lookup result as JSON.
func (f *jsonFormatter) FormatValue(w io.Writer, key, value string) error {
	output := struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}{
		Key:   key,
		Value: value,
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// yamlFormatter outputs YAML.
type yamlFormatter struct{}

// FormatSummary formats the well-known fields and all entries as YAML.
func (f *yamlFormatter) FormatSummary(w io.Writer, cfg *launchcfg.Config) error {
	output := struct {
		Summary summary    `yaml:",inline"`
		Entries *yaml.Node `yaml:"entries"`
	}{
		Summary: newSummary(cfg),
		Entries: entriesNode(cfg.All()),
	}
	return writeYAML(w, &output)
}

// FormatEntries formats all pairs as a YAML mapping, preserving file order.
func (f *yamlFormatter) FormatEntries(w io.Writer, entries []launchcfg.Entry) error {
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode("entries"),
			entriesNode(entries),
		},
	}
	return writeYAML(w, root)
}

// FormatValue formats a single lookup result as YAML.
func (f *yamlFormatter) FormatValue(w io.Writer, key, value string) error {
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode("key"), scalarNode(key),
			scalarNode("value"), scalarNode(value),
		},
	}
	return writeYAML(w, root)
}

// entriesNode builds a YAML mapping node by hand; marshaling a Go map would
// lose the file order.
func entriesNode(entries []launchcfg.Entry) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		node.Content = append(node.Content, scalarNode(e.Key), scalarNode(e.Value))
	}
	return node
}

// scalarNode returns a string scalar; the !!str tag keeps values like "1"
// from serializing as integers.
func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
