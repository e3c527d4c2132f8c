package sweep

import (
	"github.com/relsweep/relsweep/pkg/github"
)

// Classification splits releases at or below a target version into two
// disjoint sets keyed by tag. Both sets are rebuilt on every run; nothing
// carries over between invocations.
type Classification struct {
	Prereleases map[string]github.Release
	Stable      map[string]github.Release
}

// Classify routes each release by its tag. A release lands in Prereleases
// when the stripped tag contains a prerelease separator ("-"), in Stable
// otherwise. Releases above the target version, and tags that don't parse
// as versions, are skipped.
func Classify(releases []github.Release, target Version) Classification {
	cls := Classification{
		Prereleases: make(map[string]github.Release),
		Stable:      make(map[string]github.Release),
	}

	for _, rel := range releases {
		v, ok := ParseVersion(rel.TagName)
		if !ok {
			continue
		}
		if compareVersions(v, target) > 0 {
			continue
		}
		if v.prerelease {
			cls.Prereleases[rel.TagName] = rel
		} else {
			cls.Stable[rel.TagName] = rel
		}
	}
	return cls
}
