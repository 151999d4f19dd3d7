package wrangler

import "github.com/caretaker-cli/caretaker/internal/execx"

// Hints returns remediation guidance for a failed invocation. A launch
// failure means wrangler itself is missing, which is a setup problem, not
// a statement problem, and gets its own message. Remote failures get the
// checklist of the usual suspects; local failures speak for themselves
// through stderr.
func Hints(result execx.Result, remote bool) []string {
	if !result.Launched() {
		return []string{
			"wrangler was not found; install the Cloudflare Workers CLI: npm install -g wrangler",
		}
	}
	if !remote {
		return nil
	}
	return []string{
		"confirm you are logged in to Cloudflare: wrangler auth login",
		"confirm the database exists in the remote environment",
		"check your network connection",
		"confirm the account has permission to modify the remote database",
	}
}
