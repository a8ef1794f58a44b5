package github

import (
	"context"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Config locates the backing repository. It is passed explicitly so
// the store never reads ambient environment state.
type Config struct {
	// Owner is the user or organisation owning the repository.
	Owner string

	// Repo is the repository name.
	Repo string

	// Branch is the target branch. Empty means the default branch.
	Branch string

	// Token is a PAT or OAuth access token with repo scope.
	Token string
}

// newClient creates a go-github client authenticated with a static
// token. Works for both PAT and OAuth access tokens.
func newClient(ctx context.Context, token string) *gh.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	return gh.NewClient(tc)
}
