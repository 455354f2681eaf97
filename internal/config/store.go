package config

import (
	"fmt"

	format "github.com/go-git/go-git/v5/plumbing/format/config"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

// RootSection is the git config section every option lives under
const RootSection = "trunk"

// Session is a transactional view of a repository's local git config
type Session interface {
	ReadConfig() (*format.Config, error)
	UpdateConfig(fn func(raw *format.Config) error) error
}

// MissingHandler decides what happens when an option is absent from git config.
// Returning a nil value and a nil error leaves the option unset.
type MissingHandler func(section Section, opt Option, key string) (any, error)

// ErrorOnMissing is the default MissingHandler: a missing option is a ConfigurationError
func ErrorOnMissing(section Section, opt Option, key string) (any, error) {
	return nil, trunkerrors.NewConfigurationError(string(section), opt.Name, key, nil)
}

// UnsetOnMissing leaves missing options unset, used when initializing configuration
func UnsetOnMissing(Section, Option, string) (any, error) {
	return nil, nil
}

// Store reads and writes workflow configuration in git config
type Store struct {
	session   Session
	path      string
	sections  []Section
	onMissing MissingHandler
	check     func(Config) error
	cached    Config
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithPath scopes every section to a nested repository path relative to the root
func WithPath(path string) StoreOption {
	return func(s *Store) { s.path = path }
}

// WithSections restricts the store to the given sections
func WithSections(sections ...Section) StoreOption {
	return func(s *Store) { s.sections = sections }
}

// WithMissingHandler overrides how missing options are handled
func WithMissingHandler(h MissingHandler) StoreOption {
	return func(s *Store) { s.onMissing = h }
}

// WithCheck installs a validation hook run after every read
func WithCheck(check func(Config) error) StoreOption {
	return func(s *Store) { s.check = check }
}

// NewStore creates a Store over session. By default it covers every section and
// fails on missing options.
func NewStore(session Session, opts ...StoreOption) *Store {
	s := &Store{
		session:   session,
		sections:  Sections(),
		onMissing: ErrorOnMissing,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the nested repository path the store is scoped to
func (s *Store) Path() string {
	return s.path
}

// SectionKey returns the git config section and subsection holding section.
// The base section is [trunk] or [trunk "<path>"]; others are [trunk "<section>"]
// or [trunk "<path>.<section>"].
func (s *Store) SectionKey(section Section) (string, string) {
	if section == SectionTrunk {
		return RootSection, s.path
	}
	if s.path != "" {
		return RootSection, s.path + "." + string(section)
	}
	return RootSection, string(section)
}

// Key returns the dotted git config key of an option, as accepted by `git config`
func (s *Store) Key(section Section, opt Option) string {
	name, subsection := s.SectionKey(section)
	if subsection == "" {
		return name + "." + opt.Key
	}
	return name + "." + subsection + "." + opt.Key
}

// Read returns the configuration, loading it on first use
func (s *Store) Read() (Config, error) {
	if s.cached != nil {
		return s.cached, nil
	}
	return s.Reload()
}

// Reload discards the cached configuration and reads it again
func (s *Store) Reload() (Config, error) {
	raw, err := s.session.ReadConfig()
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	for _, section := range s.sections {
		schema, ok := LookupSection(section)
		if !ok {
			return nil, fmt.Errorf("unknown config section %q", section)
		}
		name, subsection := s.SectionKey(section)
		for _, opt := range schema.Options {
			key := s.Key(section, opt)
			rawValue, found := lookup(raw, name, subsection, opt.Key)
			if !found {
				value, err := s.onMissing(section, opt, key)
				if err != nil {
					return nil, err
				}
				cfg.Set(section, opt.Name, value)
				continue
			}
			value, err := Coerce(opt, rawValue)
			if err != nil {
				return nil, trunkerrors.NewConfigurationError(string(section), opt.Name, key, err)
			}
			cfg.Set(section, opt.Name, value)
		}
	}

	if err := s.Check(cfg); err != nil {
		return nil, err
	}
	s.cached = cfg
	return cfg, nil
}

// Check validates a configuration. Without a hook every configuration is accepted.
func (s *Store) Check(cfg Config) error {
	if s.check == nil {
		return nil
	}
	return s.check(cfg)
}

// Write persists every set option of cfg in one config session. The next Read reloads.
func (s *Store) Write(cfg Config) error {
	err := s.session.UpdateConfig(func(raw *format.Config) error {
		for _, schema := range Schema() {
			values, ok := cfg[schema.Section]
			if !ok {
				continue
			}
			name, subsection := s.SectionKey(schema.Section)
			for _, opt := range schema.Options {
				value, ok := values[opt.Name]
				if !ok || value == nil {
					continue
				}
				raw.SetOption(name, subsection, opt.Key, Format(value))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cached = nil
	return nil
}

func lookup(raw *format.Config, name, subsection, key string) (string, bool) {
	if !raw.HasSection(name) {
		return "", false
	}
	section := raw.Section(name)
	if subsection == "" {
		if !section.HasOption(key) {
			return "", false
		}
		return section.Option(key), true
	}
	if !section.HasSubsection(subsection) {
		return "", false
	}
	sub := section.Subsection(subsection)
	if !sub.HasOption(key) {
		return "", false
	}
	return sub.Option(key), true
}
