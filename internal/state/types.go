package state

import (
	"slices"
	"time"
)

// CommitKind distinguishes commits by the number of parents they record.
type CommitKind int

const (
	RootCommit   CommitKind = iota // no parents
	NormalCommit                   // one parent
	MergeCommit                    // two parents
)

func (k CommitKind) String() string {
	switch k {
	case RootCommit:
		return "root"
	case MergeCommit:
		return "merge"
	default:
		return "normal"
	}
}

// Commit is an immutable record of a simulated commit.
// Parents[0] is the branch's own prior head, Parents[1] (merge only) the merged branch's head.
type Commit struct {
	Hash      string    `json:"hash"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Email     string    `json:"email,omitempty"`
	Files     []string  `json:"files"`
	Timestamp time.Time `json:"timestamp"`
	Branch    string    `json:"branch"`
	Parents   []string  `json:"parents"`
}

// Kind reports whether c is a root, normal or merge commit.
func (c Commit) Kind() CommitKind {
	switch len(c.Parents) {
	case 0:
		return RootCommit
	case 1:
		return NormalCommit
	default:
		return MergeCommit
	}
}

// FirstParent returns the first parent hash, or "" for a root commit.
func (c Commit) FirstParent() string {
	if len(c.Parents) == 0 {
		return ""
	}
	return c.Parents[0]
}

func (c Commit) clone() Commit {
	out := c
	out.Files = slices.Clone(c.Files)
	out.Parents = slices.Clone(c.Parents)
	return out
}

// GraphState is the read-only snapshot handed to renderers.
type GraphState struct {
	Initialized     bool              `json:"initialized"`
	CurrentBranch   string            `json:"currentBranch"`
	Commits         []CommitView      `json:"commits"`
	Branches        []string          `json:"branches"`
	BranchHeads     map[string]string `json:"branchHeads"`
	BranchBases     map[string]string `json:"branchBases"`
	BranchParents   map[string]string `json:"branchParents"`
	Remotes         []Remote          `json:"remotes"`
	RemoteBranches  []string          `json:"remoteBranches"`
	RemoteHeads     map[string]string `json:"remoteBranchHeads"`
	RemoteConnected bool              `json:"remoteConnected"`
	RemoteHistory   []CommitView      `json:"remoteHistory"`
	Working         []string          `json:"workingDirectory"`
	Staging         []string          `json:"stagedFiles"`
	Modified        []string          `json:"modifiedFiles"`
	FileStatuses    map[string]string `json:"fileStatuses"`
	Timeline        Timeline          `json:"timeline"`
}

// CommitView is a Commit as exposed to the renderer.
type CommitView struct {
	Commit
	Kind string `json:"kind"`
}

type Remote struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

// File status labels used by the file panel.
const (
	FileUntracked = "untracked"
	FileModified  = "modified"
	FileStaged    = "staged"
	FileClean     = "clean"
)
