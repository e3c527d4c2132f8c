package sweep

import (
	"sort"

	"github.com/relsweep/relsweep/pkg/github"
)

// SelectStale returns the stable releases that fall outside the retention
// window: everything past the keep newest entries, in descending version
// order. Returns nil when the set fits inside the window.
func SelectStale(stable map[string]github.Release, keep int) []github.Release {
	if keep < 0 {
		keep = 0
	}
	ordered := sortReleasesDesc(stable)
	if len(ordered) <= keep {
		return nil
	}
	return ordered[keep:]
}

// sortReleasesDesc orders a keyed release set newest first under the
// version ordering rule. Map enumeration order is randomized, so entries
// are first ordered by tag to make equal-version ties deterministic before
// the stable version sort. Tags that don't parse as versions are dropped.
func sortReleasesDesc(m map[string]github.Release) []github.Release {
	type entry struct {
		ver Version
		rel github.Release
	}

	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	entries := make([]entry, 0, len(tags))
	for _, tag := range tags {
		if v, ok := ParseVersion(tag); ok {
			entries = append(entries, entry{ver: v, rel: m[tag]})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return compareVersions(entries[i].ver, entries[j].ver) > 0
	})

	out := make([]github.Release, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.rel)
	}
	return out
}
