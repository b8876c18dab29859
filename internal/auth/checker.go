package auth

import "context"

// Checker is what the auth middleware needs from the session layer: a
// yes/no answer for an X-LIFT-TOKEN value. LoginChecker asks redis;
// LoginTestChecker answers from a plain map so handler and middleware
// tests need no redis at all.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}
