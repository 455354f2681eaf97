package actions

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// Config output formats
const (
	ConfigOutputText = "text"
	ConfigOutputYAML = "yaml"
)

// ConfigOptions contains options for the config command
type ConfigOptions struct {
	Output string
}

// ConfigAction prints the persisted configuration. Options that are not set are
// shown empty in text output and left out of YAML output.
func ConfigAction(ctx *runtime.Context, opts ConfigOptions) error {
	store, err := ctx.ConfigStore(config.WithMissingHandler(config.UnsetOnMissing))
	if err != nil {
		return err
	}
	cfg, err := store.Read()
	if err != nil {
		return err
	}

	switch opts.Output {
	case "", ConfigOutputText:
		ctx.Splog.Page(renderConfigText(store, cfg))
		return nil
	case ConfigOutputYAML:
		out, err := renderConfigYAML(cfg)
		if err != nil {
			return err
		}
		ctx.Splog.Page(out)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", opts.Output, ConfigOutputText, ConfigOutputYAML)
	}
}

func renderConfigText(store *config.Store, cfg config.Config) string {
	var b strings.Builder
	for _, section := range config.Schema() {
		fmt.Fprintf(&b, "[%s]\n", section.Section)
		for _, opt := range section.Options {
			value, _ := cfg.Get(section.Section, opt.Name)
			fmt.Fprintf(&b, "  %s: %s %s\n", opt.Label, config.Format(value), style.ColorDim("("+store.Key(section.Section, opt)+")"))
		}
	}
	return b.String()
}

func renderConfigYAML(cfg config.Config) (string, error) {
	doc := map[string]map[string]any{}
	for _, section := range config.Schema() {
		values := map[string]any{}
		for _, opt := range section.Options {
			if value, ok := cfg.Get(section.Section, opt.Name); ok && value != nil {
				values[opt.Name] = value
			}
		}
		doc[string(section.Section)] = values
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(out), nil
}
