package version

import (
	"github.com/maruel/natural"
)

// Natural orders versions with natural sort, so 1.10 sorts after 1.9.
// It never generates versions: every release names its version explicitly.
type Natural struct {
	tags   TagSource
	prefix string
}

// Versions maps bare versions to tag names
func (n *Natural) Versions() (map[string]string, error) {
	return collect(n.tags, n.prefix, nil)
}

// Latest returns the naturally greatest version
func (n *Natural) Latest() (string, error) {
	versions, err := n.Versions()
	if err != nil {
		return "", err
	}
	latest := ""
	for v := range versions {
		if latest == "" || natural.Less(latest, v) {
			latest = v
		}
	}
	if latest == "" {
		return EmptyVersion, nil
	}
	return latest, nil
}

// Generate always returns an empty version
func (n *Natural) Generate(Part) (string, error) {
	return "", nil
}

// Check rejects empty and existing versions
func (n *Natural) Check(candidate string) error {
	return checkCommon(n, candidate)
}
