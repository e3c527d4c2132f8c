// Package sweep implements the retention-decision and execution engine.
//
// A run flows through five sequential stages:
//
//  1. Fetch the complete release collection (via [github.Client]).
//  2. Classify releases at or below the target version into prerelease
//     and stable sets, keyed by tag.
//  3. Select stable releases outside the retention window (newest keep
//     entries survive).
//  4. Delete candidates one at a time, prereleases first, then stale
//     stable releases; each batch is independently skippable. In Simulate
//     mode no network calls are made.
//  5. Report the accumulated counters; a non-zero error counter makes the
//     run fail.
//
// Version ordering uses version-sort semantics (numeric when both
// dot-segments are numeric, lexical otherwise), not full semver
// precedence. See [Classify] for the classification rule.
package sweep
