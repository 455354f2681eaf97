package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/maruel/natural"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

const (
	prereleaseToken = "rc"
	buildToken      = "build"
)

// Semver orders versions by semantic version precedence. Tags that are not
// strict semantic versions are ignored.
type Semver struct {
	tags   TagSource
	prefix string
}

// Versions maps bare semantic versions to tag names
func (s *Semver) Versions() (map[string]string, error) {
	return collect(s.tags, s.prefix, func(bare string) bool {
		_, err := semver.StrictNewVersion(bare)
		return err == nil
	})
}

// Latest returns the version with the highest precedence
func (s *Semver) Latest() (string, error) {
	versions, err := s.Versions()
	if err != nil {
		return "", err
	}
	var latest *semver.Version
	for bare := range versions {
		v := semver.MustParse(bare)
		if latest == nil || v.GreaterThan(latest) ||
			(v.Equal(latest) && natural.Less(latest.Original(), v.Original())) {
			latest = v
		}
	}
	if latest == nil {
		return EmptyVersion, nil
	}
	return latest.Original(), nil
}

// Generate bumps the latest version
func (s *Semver) Generate(part Part) (string, error) {
	latestStr, err := s.Latest()
	if err != nil {
		return "", err
	}
	latest, err := semver.StrictNewVersion(latestStr)
	if err != nil {
		return "", err
	}

	var next semver.Version
	switch part {
	case PartMajor:
		next = latest.IncMajor()
	case PartMinor:
		next = latest.IncMinor()
	case PartPatch:
		next = latest.IncPatch()
	case PartPrerelease:
		next, err = bumpPrerelease(*latest)
	case PartBuild:
		next, err = latest.SetMetadata(bumpToken(latest.Metadata(), buildToken))
	case PartFinal:
		next, err = latest.SetPrerelease("")
		if err == nil {
			next, err = next.SetMetadata("")
		}
	default:
		return "", fmt.Errorf("unknown version part %q", part)
	}
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// Check rejects empty, existing and malformed versions, and versions with lower
// precedence than the latest. Equal precedence is accepted only for a new build.
func (s *Semver) Check(candidate string) error {
	if err := checkCommon(s, candidate); err != nil {
		return err
	}
	v, err := semver.StrictNewVersion(candidate)
	if err != nil {
		return trunkerrors.NewInvalidVersionError(candidate, "not a valid semantic version")
	}

	versions, err := s.Versions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		return nil
	}
	latestStr, err := s.Latest()
	if err != nil {
		return err
	}
	latest := semver.MustParse(latestStr)
	if v.LessThan(latest) || (v.Equal(latest) && v.Metadata() == "") {
		return trunkerrors.NewInvalidVersionError(candidate, fmt.Sprintf("must be greater than the latest version %s", latestStr))
	}
	return nil
}

// bumpPrerelease starts a release candidate for the next patch of a final
// version, or increments the prerelease of an existing one.
func bumpPrerelease(v semver.Version) (semver.Version, error) {
	if v.Prerelease() == "" {
		return v.IncPatch().SetPrerelease(prereleaseToken + ".1")
	}
	next, err := v.SetMetadata("")
	if err != nil {
		return v, err
	}
	return next.SetPrerelease(bumpToken(v.Prerelease(), prereleaseToken))
}

// bumpToken increments the trailing numeric identifier of a dot separated
// string, appending one when there is none: rc.1 -> rc.2, alpha -> alpha.1.
func bumpToken(s, token string) string {
	if s == "" {
		return token + ".1"
	}
	parts := strings.Split(s, ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
		return strings.Join(parts, ".")
	}
	return s + ".1"
}
