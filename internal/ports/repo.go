package ports

import "context"

type SyncAction string

const (
	SyncActionCloned SyncAction = "cloned"
	SyncActionPulled SyncAction = "pulled"
)

// RepoSyncPort brings a git working copy at dest up to date with the
// remote at url: clone when dest is absent, pull in place otherwise.
type RepoSyncPort interface {
	Sync(ctx context.Context, url string, dest string) (SyncAction, error)
}
