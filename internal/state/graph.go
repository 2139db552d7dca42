package state

import (
	"fmt"
	"maps"
	"slices"
)

// GetGraphState returns a snapshot of a session's repository for the renderer.
func (sm *SessionManager) GetGraphState(sessionID string) (*GraphState, error) {
	session, ok := sm.GetSession(sessionID)
	if !ok {
		return nil, fmt.Errorf("session not found")
	}

	session.RLock()
	defer session.RUnlock()

	return session.Repo.Snapshot(), nil
}

// Snapshot copies the repository into a GraphState. The result shares no
// memory with the repository, so callers may keep or modify it freely.
func (r *Repository) Snapshot() *GraphState {
	gs := &GraphState{
		Initialized:     r.initialized,
		CurrentBranch:   r.currentBranch,
		Commits:         make([]CommitView, 0, len(r.commits)),
		Branches:        r.Branches(),
		BranchHeads:     maps.Clone(r.branchHeads),
		BranchBases:     maps.Clone(r.branchBases),
		BranchParents:   maps.Clone(r.branchParents),
		Remotes:         make([]Remote, 0, len(r.remotes)),
		RemoteBranches:  r.RemoteBranches(),
		RemoteHeads:     maps.Clone(r.remoteHeads),
		RemoteConnected: r.remoteConnected,
		RemoteHistory:   []CommitView{},
		Working:         nonNil(r.Working()),
		Staging:         nonNil(r.Staged()),
		Modified:        nonNil(r.Modified()),
		FileStatuses:    r.FileStatuses(),
		Timeline:        r.Timeline(),
	}
	if gs.RemoteBranches == nil {
		gs.RemoteBranches = []string{}
	}

	for _, c := range r.commits {
		gs.Commits = append(gs.Commits, view(c.clone()))
	}
	for _, name := range r.remotes {
		gs.Remotes = append(gs.Remotes, Remote{Name: name, URLs: []string{r.remoteURLs[name]}})
	}

	// The remote panel shows what origin has for the current branch.
	ref := RemoteRef(DefaultRemote, r.currentBranch)
	if head := r.remoteHeads[ref]; head != "" {
		reachable := r.Reachable(head)
		for _, c := range r.commits {
			if _, ok := reachable[c.Hash]; ok {
				gs.RemoteHistory = append(gs.RemoteHistory, view(c.clone()))
			}
		}
		slices.Reverse(gs.RemoteHistory)
	}
	return gs
}

func view(c Commit) CommitView {
	return CommitView{Commit: c, Kind: c.Kind().String()}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
