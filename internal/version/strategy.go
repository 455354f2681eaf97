// Package version resolves, generates and validates release versions from tags.
//
// Two strategies exist: Semver, backed by Masterminds/semver, and Natural, which
// orders arbitrary version strings in natural sort order.
package version

import (
	"fmt"
	"strings"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

// EmptyVersion is reported by Latest when no version has been released yet
const EmptyVersion = "0.0.0"

// Part is a named version bump
type Part string

// Bump parts understood by the semver strategy
const (
	PartMajor      Part = "major"
	PartMinor      Part = "minor"
	PartPatch      Part = "patch"
	PartPrerelease Part = "prerelease"
	PartBuild      Part = "build"
	PartFinal      Part = "final"
)

// Parts lists every bump part
var Parts = []Part{PartMajor, PartMinor, PartPatch, PartPrerelease, PartBuild, PartFinal}

// ParsePart validates a bump part name
func ParsePart(s string) (Part, error) {
	for _, p := range Parts {
		if string(p) == s {
			return p, nil
		}
	}
	names := make([]string, len(Parts))
	for i, p := range Parts {
		names[i] = string(p)
	}
	return "", fmt.Errorf("unknown version part %q, expected one of %s", s, strings.Join(names, ", "))
}

// TagSource lists tag names of a repository
type TagSource interface {
	Tags() ([]string, error)
}

// Strategy orders, generates and validates versions
type Strategy interface {
	// Versions maps each bare version to its full tag name. It is read fresh every time.
	Versions() (map[string]string, error)
	// Latest returns the highest version, or EmptyVersion
	Latest() (string, error)
	// Generate proposes the next version for part. An empty result means the
	// strategy cannot generate one and the caller must supply it.
	Generate(part Part) (string, error)
	// Check returns an InvalidVersionError when candidate cannot be released
	Check(candidate string) error
}

// New returns the semver strategy when useSemver is set, otherwise the natural one.
// prefix is stripped from the tags carrying it. Other tags keep their name.
func New(tags TagSource, prefix string, useSemver bool) Strategy {
	if useSemver {
		return &Semver{tags: tags, prefix: prefix}
	}
	return &Natural{tags: tags, prefix: prefix}
}

// collect maps bare versions to tag names. A prefixed tag wins over an unprefixed
// one with the same bare version.
func collect(tags TagSource, prefix string, keep func(bare string) bool) (map[string]string, error) {
	names, err := tags.Tags()
	if err != nil {
		return nil, err
	}
	versions := make(map[string]string, len(names))
	for _, name := range names {
		bare, prefixed := name, false
		if prefix != "" {
			bare, prefixed = strings.CutPrefix(name, prefix)
		}
		if bare == "" {
			continue
		}
		if keep != nil && !keep(bare) {
			continue
		}
		if existing, ok := versions[bare]; ok && !prefixed && existing != bare {
			continue
		}
		versions[bare] = name
	}
	return versions, nil
}

// checkCommon rejects empty and already released candidates
func checkCommon(s Strategy, candidate string) error {
	if candidate == "" {
		return trunkerrors.NewInvalidVersionError("", "version is missing")
	}
	versions, err := s.Versions()
	if err != nil {
		return err
	}
	if _, ok := versions[candidate]; ok {
		return trunkerrors.NewInvalidVersionError(candidate, "version already exists")
	}
	return nil
}
