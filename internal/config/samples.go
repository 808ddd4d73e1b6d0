package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed samples/*.txt
var sampleFS embed.FS

// Sample returns the bundled track file with the given name.
func Sample(name string) ([]byte, bool) {
	data, err := sampleFS.ReadFile(path.Join("samples", name+".txt"))
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListSamples returns the bundled track names in order.
func ListSamples() []string {
	entries, err := sampleFS.ReadDir("samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}
