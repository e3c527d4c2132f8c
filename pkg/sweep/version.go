package sweep

import (
	"strings"
)

// Version is a release tag reduced to a comparable form: the tag with
// any leading "v" stripped, split on dots, plus a prerelease marker.
type Version struct {
	stripped   string
	segments   []string
	prerelease bool
}

// ParseVersion normalizes tag into a Version. It reports false for
// tags that do not look like versions at all (first segment must start with
// a digit); such tags are skipped by classification rather than failing the
// run.
//
// The ordering key is built from the release core only, the part before the
// first "-". The prerelease suffix marks the version as prerelease but does
// not participate in ordering, so 2.0.0-rc.1 compares equal to 2.0.0.
func ParseVersion(tag string) (Version, bool) {
	s := strings.TrimPrefix(tag, "v")
	if s == "" || s[0] < '0' || s[0] > '9' {
		return Version{}, false
	}

	core, _, pre := strings.Cut(s, "-")
	return Version{
		stripped:   s,
		segments:   strings.Split(core, "."),
		prerelease: pre,
	}, true
}

// compareVersions orders two parsed versions segment by segment: numeric
// comparison when both segments are purely numeric, bytewise otherwise.
// A version that is a strict prefix of a longer one ranks lower.
//
// This is version-sort semantics, not full semver precedence: a prerelease
// is not ranked below its corresponding release, it compares equal to it.
// Kept as-is for compatibility with existing retention behavior.
func compareVersions(a, b Version) int {
	n := min(len(a.segments), len(b.segments))
	for i := 0; i < n; i++ {
		if c := compareSegment(a.segments[i], b.segments[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.segments) < len(b.segments):
		return -1
	case len(a.segments) > len(b.segments):
		return 1
	}
	return 0
}

func compareSegment(a, b string) int {
	if isNumeric(a) && isNumeric(b) {
		return compareNumeric(a, b)
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareNumeric compares two all-digit strings by value without parsing,
// so segments longer than an int64 still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
