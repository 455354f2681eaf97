package config

// Section is a group of options belonging to one workflow phase
type Section string

// Sections known to the schema. SectionTrunk is the base section.
const (
	SectionTrunk           Section = "trunk"
	SectionStart           Section = "start"
	SectionFinish          Section = "finish"
	SectionRelease         Section = "release"
	SectionSquash          Section = "squash"
	SectionSubmoduleUpdate Section = "submodule-update"
)

// Kind is the forced type of an option value
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return "string"
	}
}

// Option describes one configuration option
type Option struct {
	// Key is the option key inside the git config section
	Key string
	// Name identifies the option in code and in Config maps
	Name        string
	Default     any
	Kind        Kind
	Label       string
	Description string
}

// SectionSchema lists the options of one section
type SectionSchema struct {
	Section Section
	Options []Option
}

// Option names
const (
	OptTrunkBranch         = "trunk_branch"
	OptFetchBranchPattern  = "fetch_branch_pattern"
	OptFF                  = "ff"
	OptRequireSquash       = "require_squash"
	OptVersionPrefix       = "version_prefix"
	OptReleaseBranchPrefix = "release_branch_prefix"
	OptUseSemver           = "use_semver"
	OptEditTagMessage      = "edit_tag_message"
	OptEditSquashMessage   = "edit_squash_message"
	OptForcePushSquash     = "force_push_squash"
	OptPathSpec            = "path_spec"
	OptDepth               = "depth"
	OptSingleBranch        = "single_branch"
)

var schema = []SectionSchema{
	{
		Section: SectionTrunk,
		Options: []Option{{
			Key: "trunkbranch", Name: OptTrunkBranch, Default: "master", Kind: KindString,
			Label:       "Trunk Branch",
			Description: "Long-lived branch new branches start from and finished branches merge into.",
		}},
	},
	{
		Section: SectionStart,
		Options: []Option{{
			Key: "fetchbranchpattern", Name: OptFetchBranchPattern, Default: "*", Kind: KindString,
			Label:       "Fetch Branch Pattern",
			Description: "Glob used to fetch remote heads when start picks a branch name automatically.",
		}},
	},
	{
		Section: SectionFinish,
		Options: []Option{
			{
				Key: "ff", Name: OptFF, Default: true, Kind: KindBool,
				Label:       "Fast Forward Merge",
				Description: "Merge with --ff-only. When disabled a merge commit is always created.",
			},
			{
				Key: "requiresquash", Name: OptRequireSquash, Default: false, Kind: KindBool,
				Label:       "Require Squash",
				Description: "Refuse to finish a branch that is more than one commit ahead of trunk.",
			},
		},
	},
	{
		Section: SectionRelease,
		Options: []Option{
			{
				Key: "versionprefix", Name: OptVersionPrefix, Default: "", Kind: KindString,
				Label:       "Version Prefix",
				Description: "Prefix prepended to the version to form the tag name, e.g. v.",
			},
			{
				Key: "releasebranchprefix", Name: OptReleaseBranchPrefix, Default: "release/", Kind: KindString,
				Label:       "Release Branch Prefix",
				Description: "Branches with this prefix are finished by deletion instead of merge. Empty disables it.",
			},
			{
				Key: "usesemver", Name: OptUseSemver, Default: true, Kind: KindBool,
				Label:       "Use Semantic Versioning",
				Description: "Generate and validate versions as semantic versions. Otherwise versions are given explicitly and ordered naturally.",
			},
			{
				Key: "edittagmessage", Name: OptEditTagMessage, Default: true, Kind: KindBool,
				Label:       "Edit Tag Message",
				Description: "Open the editor on the generated tag message.",
			},
		},
	},
	{
		Section: SectionSquash,
		Options: []Option{
			{
				Key: "editsquashmessage", Name: OptEditSquashMessage, Default: true, Kind: KindBool,
				Label:       "Edit Squash Message",
				Description: "Open the editor on the squashed commit message.",
			},
			{
				Key: "forcepushsquash", Name: OptForcePushSquash, Default: true, Kind: KindBool,
				Label:       "Force Push Squash",
				Description: "Force push the squashed branch when it has a tracking branch.",
			},
		},
	},
	{
		Section: SectionSubmoduleUpdate,
		Options: []Option{
			{
				Key: "pathspec", Name: OptPathSpec, Default: "", Kind: KindString,
				Label:       "Path Spec",
				Description: "Space separated submodule paths to update. Empty updates all submodules.",
			},
			{
				Key: "depth", Name: OptDepth, Default: 0, Kind: KindInt,
				Label:       "Depth",
				Description: "Shallow clone depth for submodules. 0 clones full history.",
			},
			{
				Key: "singlebranch", Name: OptSingleBranch, Default: false, Kind: KindBool,
				Label:       "Single Branch",
				Description: "Clone only the branch the submodule tracks.",
			},
		},
	},
}

// Schema returns the static option schema in display order
func Schema() []SectionSchema {
	out := make([]SectionSchema, len(schema))
	for i, s := range schema {
		out[i] = SectionSchema{Section: s.Section, Options: append([]Option(nil), s.Options...)}
	}
	return out
}

// Sections returns every section in schema order
func Sections() []Section {
	out := make([]Section, 0, len(schema))
	for _, s := range schema {
		out = append(out, s.Section)
	}
	return out
}

// LookupSection returns the schema of one section
func LookupSection(section Section) (SectionSchema, bool) {
	for _, s := range schema {
		if s.Section == section {
			return SectionSchema{Section: s.Section, Options: append([]Option(nil), s.Options...)}, true
		}
	}
	return SectionSchema{}, false
}

// LookupOption returns the schema of one option
func LookupOption(section Section, name string) (Option, bool) {
	s, ok := LookupSection(section)
	if !ok {
		return Option{}, false
	}
	for _, opt := range s.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}
