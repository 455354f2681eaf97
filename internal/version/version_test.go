package version_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/version"
)

type tagList []string

func (l tagList) Tags() ([]string, error) {
	return l, nil
}

type failingTags struct{}

func (failingTags) Tags() ([]string, error) {
	return nil, errors.New("tags unavailable")
}

func TestParsePart(t *testing.T) {
	part, err := version.ParsePart("prerelease")
	require.NoError(t, err)
	require.Equal(t, version.PartPrerelease, part)

	_, err = version.ParsePart("micro")
	require.ErrorContains(t, err, "major, minor, patch")
}

func TestVersionsStripPrefix(t *testing.T) {
	s := version.New(tagList{"v1.0.0", "v1.1.0", "1.2.0", "vnext", "v"}, "v", true)
	versions, err := s.Versions()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"1.0.0": "v1.0.0", "1.1.0": "v1.1.0", "1.2.0": "1.2.0"}, versions)

	n := version.New(tagList{"v1.0.0", "vnext", "1.2.0"}, "v", false)
	versions, err = n.Versions()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"1.0.0": "v1.0.0", "next": "vnext", "1.2.0": "1.2.0"}, versions)
}

func TestVersionsPreferPrefixedTag(t *testing.T) {
	for _, tags := range []tagList{{"1.0.0", "v1.0.0"}, {"v1.0.0", "1.0.0"}} {
		versions, err := version.New(tags, "v", true).Versions()
		require.NoError(t, err)
		require.Equal(t, map[string]string{"1.0.0": "v1.0.0"}, versions)
	}
}

func TestLatestKeepsUnprefixedReleases(t *testing.T) {
	s := version.New(tagList{"1.0.0", "v0.3.0"}, "v", true)
	latest, err := s.Latest()
	require.NoError(t, err)
	require.Equal(t, "1.0.0", latest)

	next, err := s.Generate(version.PartMinor)
	require.NoError(t, err)
	require.Equal(t, "1.1.0", next)
	require.ErrorIs(t, s.Check("0.9.0"), trunkerrors.ErrInvalidVersion)
}

func TestNaturalStrategy(t *testing.T) {
	t.Run("latest uses natural order", func(t *testing.T) {
		s := version.New(tagList{"1.9", "1.10", "1.2"}, "", false)
		latest, err := s.Latest()
		require.NoError(t, err)
		require.Equal(t, "1.10", latest)
	})

	t.Run("empty repository", func(t *testing.T) {
		s := version.New(tagList{}, "", false)
		latest, err := s.Latest()
		require.NoError(t, err)
		require.Equal(t, version.EmptyVersion, latest)
	})

	t.Run("never generates", func(t *testing.T) {
		s := version.New(tagList{"1.0"}, "", false)
		next, err := s.Generate(version.PartMinor)
		require.NoError(t, err)
		require.Empty(t, next)
		require.ErrorIs(t, s.Check(next), trunkerrors.ErrInvalidVersion)
	})

	t.Run("check", func(t *testing.T) {
		s := version.New(tagList{"release-1", "release-2"}, "release-", false)
		require.NoError(t, s.Check("3"))
		require.NoError(t, s.Check("anything goes"))

		err := s.Check("2")
		require.ErrorIs(t, err, trunkerrors.ErrInvalidVersion)
		require.ErrorContains(t, err, "already exists")

		require.ErrorContains(t, s.Check(""), "missing")
	})

	t.Run("tag errors propagate", func(t *testing.T) {
		s := version.New(failingTags{}, "", false)
		_, err := s.Latest()
		require.ErrorContains(t, err, "tags unavailable")
	})
}

func TestSemverLatest(t *testing.T) {
	s := version.New(tagList{"1.2.0", "1.10.0", "1.9.0-rc.1", "2.0.0-rc.1", "not-a-version", "v3.0.0"}, "", true)
	latest, err := s.Latest()
	require.NoError(t, err)
	require.Equal(t, "2.0.0-rc.1", latest)

	s = version.New(tagList{"1.0.0", "1.0.0+build.2", "1.0.0+build.10"}, "", true)
	latest, err = s.Latest()
	require.NoError(t, err)
	require.Equal(t, "1.0.0+build.10", latest)
}

func TestSemverGenerate(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		part   version.Part
		expect string
	}{
		{"first minor", nil, version.PartMinor, "0.1.0"},
		{"first major", nil, version.PartMajor, "1.0.0"},
		{"major", []string{"1.2.3"}, version.PartMajor, "2.0.0"},
		{"minor", []string{"1.2.3"}, version.PartMinor, "1.3.0"},
		{"patch", []string{"1.2.3"}, version.PartPatch, "1.2.4"},
		{"patch finalizes a prerelease", []string{"1.2.3", "1.2.4-rc.2"}, version.PartPatch, "1.2.4"},
		{"start prerelease", []string{"1.2.3"}, version.PartPrerelease, "1.2.4-rc.1"},
		{"next prerelease", []string{"1.2.4-rc.1"}, version.PartPrerelease, "1.2.4-rc.2"},
		{"prerelease without number", []string{"1.2.4-alpha"}, version.PartPrerelease, "1.2.4-alpha.1"},
		{"first build", []string{"1.2.3"}, version.PartBuild, "1.2.3+build.1"},
		{"next build", []string{"1.2.3", "1.2.3+build.1"}, version.PartBuild, "1.2.3+build.2"},
		{"final", []string{"1.2.4-rc.3"}, version.PartFinal, "1.2.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := version.New(tagList(tt.tags), "", true)
			next, err := s.Generate(tt.part)
			require.NoError(t, err)
			require.Equal(t, tt.expect, next)
			require.NoError(t, s.Check(next))
		})
	}

	_, err := version.New(tagList{}, "", true).Generate(version.Part("micro"))
	require.Error(t, err)
}

func TestSemverCheck(t *testing.T) {
	s := version.New(tagList{"v1.0.0", "v1.1.0"}, "v", true)

	tests := []struct {
		candidate string
		reason    string
	}{
		{"", "missing"},
		{"1.1.0", "already exists"},
		{"1.2", "not a valid semantic version"},
		{"v1.2.0", "not a valid semantic version"},
		{"1.0.5", "must be greater than the latest version 1.1.0"},
		{"1.1.0-rc.1", "must be greater"},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			err := s.Check(tt.candidate)
			require.ErrorIs(t, err, trunkerrors.ErrInvalidVersion)
			require.ErrorContains(t, err, tt.reason)
		})
	}

	require.NoError(t, s.Check("1.1.1"))
	require.NoError(t, s.Check("2.0.0-rc.1"))
	require.NoError(t, s.Check("1.1.0+build.1"))
}

func TestSemverGeneratedVersionsIncrease(t *testing.T) {
	tags := tagList{}
	var previous string
	for _, part := range []version.Part{
		version.PartMinor, version.PartPatch, version.PartPrerelease, version.PartPrerelease,
		version.PartFinal, version.PartBuild, version.PartMajor,
	} {
		s := version.New(tags, "", true)
		next, err := s.Generate(part)
		require.NoError(t, err)
		require.NoError(t, s.Check(next), "%s after %s", next, previous)
		tags = append(tags, next)
		previous = next

		latest, err := version.New(tags, "", true).Latest()
		require.NoError(t, err)
		require.Equal(t, next, latest)
	}
	require.Equal(t, "1.0.0", previous)
}
