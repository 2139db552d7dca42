package state

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	DefaultBranch = "main"
	DefaultRemote = "origin"
)

// SeedFile is a file present in the working directory when a session starts.
type SeedFile struct {
	Name    string
	Content string
}

// DefaultSeed returns the two untracked files every new session starts with.
func DefaultSeed() []SeedFile {
	return []SeedFile{
		{Name: "README.md", Content: "# My Project\n\nA short description of this project."},
		{Name: "app.js", Content: "// Entry point\nconsole.log('Hello, world!');"},
	}
}

// Repository is the canonical mutable model of the simulated repository.
// Hashes are stored as strings; "" stands for "no commit".
//
// Invariants kept by every mutator:
//   - a file name is never in both the working and staged sets
//   - the modified set is a subset of the working set
//   - every branch has an entry in the head/base/parent maps
type Repository struct {
	initialized bool

	working  []string
	staged   []string
	modified []string

	commits     []*Commit
	commitIndex map[string]*Commit

	currentBranch string
	branches      []string
	branchHeads   map[string]string
	branchBases   map[string]string
	branchParents map[string]string

	remotes         []string
	remoteURLs      map[string]string
	remoteBranches  []string
	remoteHeads     map[string]string
	remoteConnected bool

	fs    billy.Filesystem
	clock func() time.Time
	seq   uint64
}

// Option configures a Repository at construction time.
type Option func(*repoConfig)

type repoConfig struct {
	clock func() time.Time
	seed  []SeedFile
}

// WithClock overrides the time source used for commit timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *repoConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithSeed replaces the default starting files.
func WithSeed(files []SeedFile) Option {
	return func(c *repoConfig) {
		c.seed = files
	}
}

// NewRepository creates the session's starting state: uninitialized, a single
// main branch without commits and the seed files untracked.
func NewRepository(opts ...Option) *Repository {
	cfg := repoConfig{clock: time.Now, seed: DefaultSeed()}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Repository{
		commitIndex:   make(map[string]*Commit),
		currentBranch: DefaultBranch,
		branches:      []string{DefaultBranch},
		branchHeads:   map[string]string{DefaultBranch: ""},
		branchBases:   map[string]string{DefaultBranch: ""},
		branchParents: map[string]string{DefaultBranch: ""},
		remoteURLs:    make(map[string]string),
		remoteHeads:   make(map[string]string),
		fs:            memfs.New(),
		clock:         cfg.clock,
	}
	for _, f := range cfg.seed {
		if slices.Contains(r.working, f.Name) {
			continue
		}
		_ = util.WriteFile(r.fs, f.Name, []byte(f.Content), 0o644)
		r.working = append(r.working, f.Name)
	}
	return r
}

// Now returns the repository clock's current time.
func (r *Repository) Now() time.Time {
	return r.clock()
}

func (r *Repository) Initialized() bool { return r.initialized }

// Init marks the repository initialized and reports whether it was newly initialized.
func (r *Repository) Init() bool {
	if r.initialized {
		return false
	}
	r.initialized = true
	return true
}

func (r *Repository) CurrentBranch() string { return r.currentBranch }

// Branches returns branch names in creation order.
func (r *Repository) Branches() []string { return slices.Clone(r.branches) }

func (r *Repository) HasBranch(name string) bool {
	_, ok := r.branchHeads[name]
	return ok
}

// Head returns the tip of branch, or "" when it has no commits (or does not exist).
func (r *Repository) Head(branch string) string { return r.branchHeads[branch] }

// CurrentHead is Head(CurrentBranch()).
func (r *Repository) CurrentHead() string { return r.branchHeads[r.currentBranch] }

func (r *Repository) BranchBase(branch string) string   { return r.branchBases[branch] }
func (r *Repository) BranchParent(branch string) string { return r.branchParents[branch] }

// Commits returns every commit in insertion order.
func (r *Repository) Commits() []Commit {
	out := make([]Commit, 0, len(r.commits))
	for _, c := range r.commits {
		out = append(out, c.clone())
	}
	return out
}

// Commit looks up a commit by hash.
func (r *Repository) Commit(hash string) (Commit, bool) {
	c, ok := r.commitIndex[hash]
	if !ok {
		return Commit{}, false
	}
	return c.clone(), true
}

// RecordCommit records the staged files as a new commit on the current branch,
// advances the branch head and clears the staging set.
func (r *Repository) RecordCommit(message string, author *object.Signature) (Commit, error) {
	if !r.initialized {
		return Commit{}, ErrNotInitialized
	}
	if len(r.staged) == 0 {
		return Commit{}, ErrNothingStaged
	}

	parents := []string{}
	if prev := r.CurrentHead(); prev != "" {
		parents = append(parents, prev)
	}
	c := r.newCommit(message, author, r.currentBranch, slices.Clone(r.staged), parents)
	r.branchHeads[r.currentBranch] = c.Hash
	r.staged = nil
	return c.clone(), nil
}

// RecordMerge records a merge commit on the current branch joining other's
// head. It fails with ErrAlreadyUpToDate when other's head is already part of
// the current history, and with ErrNoCommits when the current branch is empty.
func (r *Repository) RecordMerge(other, message string, author *object.Signature) (Commit, error) {
	if !r.initialized {
		return Commit{}, ErrNotInitialized
	}
	if !r.HasBranch(other) {
		return Commit{}, fmt.Errorf("%w: %s", ErrBranchNotFound, other)
	}

	head, otherHead := r.CurrentHead(), r.branchHeads[other]
	if otherHead == "" || r.IsAncestor(otherHead, head) {
		return Commit{}, ErrAlreadyUpToDate
	}
	if head == "" {
		return Commit{}, fmt.Errorf("%w: %s", ErrNoCommits, r.currentBranch)
	}

	parents := []string{head, otherHead}
	c := r.newCommit(message, author, r.currentBranch, []string{}, parents)
	r.branchHeads[r.currentBranch] = c.Hash
	return c.clone(), nil
}

func (r *Repository) newCommit(message string, author *object.Signature, branch string, files, parents []string) *Commit {
	if author == nil {
		author = &object.Signature{}
	}
	when := r.clock()
	hashFields := append([]string{message, author.Name, branch, when.Format(time.RFC3339Nano)}, parents...)
	c := &Commit{
		Hash:      r.nextHash(hashFields...),
		Message:   message,
		Author:    author.Name,
		Email:     author.Email,
		Files:     files,
		Timestamp: when,
		Branch:    branch,
		Parents:   parents,
	}
	r.commits = append(r.commits, c)
	r.commitIndex[c.Hash] = c
	return c
}

// CreateBranch forks name from the current branch: the new branch starts at the
// current head, records that head as its base and the current branch as its parent.
func (r *Repository) CreateBranch(name string) error {
	if err := plumbing.NewBranchReferenceName(name).Validate(); err != nil || name == "HEAD" {
		return fmt.Errorf("%w: %s", ErrInvalidBranchName, name)
	}
	if r.HasBranch(name) {
		return fmt.Errorf("%w: %s", ErrBranchExists, name)
	}
	head := r.CurrentHead()
	r.branches = append(r.branches, name)
	r.branchHeads[name] = head
	r.branchBases[name] = head
	r.branchParents[name] = r.currentBranch
	return nil
}

// SwitchBranch makes name the current branch.
func (r *Repository) SwitchBranch(name string) error {
	if !r.HasBranch(name) {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	r.currentBranch = name
	return nil
}

// FastForward moves the current branch head to hash.
func (r *Repository) FastForward(hash string) error {
	if _, ok := r.commitIndex[hash]; !ok {
		return fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}
	r.branchHeads[r.currentBranch] = hash
	return nil
}

// RemoteRef returns the remote-tracking name for branch on remote, e.g. "origin/main".
func RemoteRef(remote, branch string) string {
	return plumbing.NewRemoteReferenceName(remote, branch).Short()
}

func (r *Repository) Remotes() []string          { return slices.Clone(r.remotes) }
func (r *Repository) RemoteURL(name string) string { return r.remoteURLs[name] }
func (r *Repository) RemoteConnected() bool      { return r.remoteConnected }

// RemoteBranches returns remote-tracking branch names in creation order.
func (r *Repository) RemoteBranches() []string { return slices.Clone(r.remoteBranches) }

func (r *Repository) HasRemoteBranch(ref string) bool {
	_, ok := r.remoteHeads[ref]
	return ok
}

// RemoteHead returns the head of a remote-tracking branch, or "".
func (r *Repository) RemoteHead(ref string) string { return r.remoteHeads[ref] }

// ConnectRemote registers remote with url, marks the repository connected and
// makes sure a tracking branch exists for the current branch.
func (r *Repository) ConnectRemote(name, url string) {
	if !slices.Contains(r.remotes, name) {
		r.remotes = append(r.remotes, name)
	}
	r.remoteURLs[name] = url
	r.remoteConnected = true
	r.ensureRemoteBranch(RemoteRef(name, r.currentBranch))
}

func (r *Repository) ensureRemoteBranch(ref string) {
	if _, ok := r.remoteHeads[ref]; ok {
		return
	}
	r.remoteBranches = append(r.remoteBranches, ref)
	r.remoteHeads[ref] = ""
}

// SetRemoteHead points a remote-tracking branch at hash, creating the branch if needed.
func (r *Repository) SetRemoteHead(ref, hash string) error {
	if hash != "" {
		if _, ok := r.commitIndex[hash]; !ok {
			return fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
		}
	}
	r.ensureRemoteBranch(ref)
	r.remoteHeads[ref] = hash
	return nil
}

// RecordRemoteCommit simulates a collaborator pushing a commit to branch on
// remote. Only the remote-tracking head moves; local branches are untouched.
func (r *Repository) RecordRemoteCommit(remote, branch, message string, author *object.Signature) (Commit, error) {
	if !slices.Contains(r.remotes, remote) {
		return Commit{}, fmt.Errorf("%w: %s", ErrRemoteNotFound, remote)
	}
	ref := RemoteRef(remote, branch)
	r.ensureRemoteBranch(ref)

	parent := r.remoteHeads[ref]
	if parent == "" {
		parent = r.branchHeads[branch]
	}
	parents := []string{}
	if parent != "" {
		parents = append(parents, parent)
	}
	c := r.newCommit(message, author, branch, []string{}, parents)
	r.remoteHeads[ref] = c.Hash
	return c.clone(), nil
}
