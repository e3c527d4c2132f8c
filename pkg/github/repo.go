package github

import (
	"errors"
	"regexp"
	"strings"
)

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validName = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// Repo identifies a GitHub repository by owner and name.
type Repo struct {
	Owner string
	Name  string
}

// String renders the repository in "owner/name" form, as used in API paths.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepo parses an "owner/name" string and validates both parts.
func ParseRepo(ref string) (Repo, error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return Repo{}, errors.New("invalid repository format: use owner/name")
	}
	r := Repo{Owner: parts[0], Name: parts[1]}

	if r.Owner == "" || !validOwner.MatchString(r.Owner) {
		return Repo{}, errors.New("invalid owner: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	if r.Name == "" || !validName.MatchString(r.Name) {
		return Repo{}, errors.New("invalid repository name: must be 1-100 alphanumeric characters, hyphens, underscores, or dots")
	}
	return r, nil
}
