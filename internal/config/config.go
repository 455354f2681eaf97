package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config maps each section to its option values. A nil value means unset.
type Config map[Section]map[string]any

// Get returns the raw value of an option
func (c Config) Get(section Section, name string) (any, bool) {
	values, ok := c[section]
	if !ok {
		return nil, false
	}
	v, ok := values[name]
	return v, ok
}

// Set stores an option value in memory. Nothing is persisted until Store.Write.
func (c Config) Set(section Section, name string, value any) {
	if c[section] == nil {
		c[section] = map[string]any{}
	}
	c[section][name] = value
}

// String returns a string option, or "" when unset
func (c Config) String(section Section, name string) string {
	v, _ := c.Get(section, name)
	s, _ := v.(string)
	return s
}

// Bool returns a bool option, or false when unset
func (c Config) Bool(section Section, name string) bool {
	v, _ := c.Get(section, name)
	b, _ := v.(bool)
	return b
}

// Int returns an int option, or 0 when unset
func (c Config) Int(section Section, name string) int {
	v, _ := c.Get(section, name)
	i, _ := v.(int)
	return i
}

// TrunkBranch returns the configured trunk branch
func (c Config) TrunkBranch() string {
	return c.String(SectionTrunk, OptTrunkBranch)
}

// Clone returns a deep copy
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for section, values := range c {
		copied := make(map[string]any, len(values))
		for k, v := range values {
			copied[k] = v
		}
		out[section] = copied
	}
	return out
}

// Defaults returns the schema defaults for the given sections, or all sections
func Defaults(sections ...Section) Config {
	if len(sections) == 0 {
		sections = Sections()
	}
	cfg := Config{}
	for _, section := range sections {
		s, ok := LookupSection(section)
		if !ok {
			continue
		}
		for _, opt := range s.Options {
			cfg.Set(section, opt.Name, opt.Default)
		}
	}
	return cfg
}

// Coerce converts a raw git config string to the option's kind
func Coerce(opt Option, raw string) (any, error) {
	switch opt.Kind {
	case KindBool:
		return ParseBool(raw)
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		return i, nil
	default:
		return raw, nil
	}
}

// ParseBool parses a boolean the way git does. A key without a value is true.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1", "":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", raw)
}

// Format renders a value the way it is stored in git config
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
