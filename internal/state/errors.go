package state

import "errors"

var (
	ErrNotInitialized    = errors.New("not a git repository")
	ErrNothingStaged     = errors.New("nothing staged")
	ErrNoCommits         = errors.New("branch has no commits")
	ErrAlreadyUpToDate   = errors.New("already up to date")
	ErrBranchExists      = errors.New("branch already exists")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrInvalidBranchName = errors.New("invalid branch name")
	ErrRemoteNotFound    = errors.New("remote not found")
	ErrFileExists        = errors.New("file already exists")
	ErrFileNotFound      = errors.New("file not found")
	ErrFileNotTracked    = errors.New("file is not tracked")
	ErrInvalidFileName   = errors.New("invalid file name")
	ErrCommitNotFound    = errors.New("commit not found")
)
