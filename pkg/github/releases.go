package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Release is a published release as returned by the GitHub API.
// The ID is an opaque identifier owned by the API; TagName is the git tag
// the release was cut from.
type Release struct {
	ID         int64  `json:"id"`
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
}

// ListReleases retrieves the complete release collection for repo, page by
// page. A short or empty page signals the end of the collection.
//
// Any single page failure aborts the whole fetch: partial lists are never
// returned, since an incomplete view would make retention decisions unsafe.
func (c *Client) ListReleases(ctx context.Context, repo Repo) ([]Release, error) {
	var all []Release

	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/repos/%s/releases?per_page=%d&page=%d",
			c.cfg.BaseURL, repo, c.cfg.PageSize, page)

		body, err := c.Do(ctx, http.MethodGet, u)
		if err != nil {
			return nil, fmt.Errorf("list releases page %d: %w", page, err)
		}

		var releases []Release
		if err := json.Unmarshal(body, &releases); err != nil {
			return nil, fmt.Errorf("list releases page %d: decoding: %w", page, err)
		}

		all = append(all, releases...)
		if len(releases) < c.cfg.PageSize {
			return all, nil
		}
	}
}

// DeleteRelease deletes a release by its API identifier.
func (c *Client) DeleteRelease(ctx context.Context, repo Repo, id int64) error {
	u := fmt.Sprintf("%s/repos/%s/releases/%d", c.cfg.BaseURL, repo, id)
	if _, err := c.Do(ctx, http.MethodDelete, u); err != nil {
		return fmt.Errorf("delete release %d: %w", id, err)
	}
	return nil
}

// DeleteTag deletes the git ref for tag. The tag may already be gone when
// a release is deleted out of band; callers typically treat a NotFound here
// as a warning rather than an error.
func (c *Client) DeleteTag(ctx context.Context, repo Repo, tag string) error {
	u := fmt.Sprintf("%s/repos/%s/git/refs/tags/%s", c.cfg.BaseURL, repo, url.PathEscape(tag))
	if _, err := c.Do(ctx, http.MethodDelete, u); err != nil {
		return fmt.Errorf("delete tag %q: %w", tag, err)
	}
	return nil
}
