// Package dbconf loads libpq connection parameters from an INI-style
// file, one section per connection profile.
package dbconf

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	// DefaultFile is the conventional connection parameter filename.
	DefaultFile = "database.ini"
	// DefaultSection is the section read when none is given.
	DefaultSection = "postgresql"
)

// SectionError reports a named section absent from the parameter file.
type SectionError struct {
	Section string
	File    string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q not found in %s", e.Section, e.File)
}

// Load reads the key/value pairs of one section. A missing file surfaces
// the filesystem error unchanged (errors.Is with fs.ErrNotExist holds);
// a missing section yields a *SectionError.
func Load(path, section string) (map[string]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	sec, err := file.GetSection(section)
	if err != nil {
		return nil, &SectionError{Section: section, File: path}
	}
	params := make(map[string]string, len(sec.Keys()))
	for _, key := range sec.Keys() {
		params[key.Name()] = key.Value()
	}
	return params, nil
}

// DSN renders the parameter map as a libpq key=value connection string.
// Keys are passed through untransformed and sorted for determinism.
func DSN(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+quoteValue(params[k]))
	}
	return strings.Join(parts, " ")
}

// quoteValue single-quotes values libpq would otherwise misparse.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
