package state

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

func (r *Repository) Working() []string  { return slices.Clone(r.working) }
func (r *Repository) Staged() []string   { return slices.Clone(r.staged) }
func (r *Repository) Modified() []string { return slices.Clone(r.modified) }

func (r *Repository) InWorking(name string) bool  { return slices.Contains(r.working, name) }
func (r *Repository) IsStaged(name string) bool   { return slices.Contains(r.staged, name) }
func (r *Repository) IsModified(name string) bool { return slices.Contains(r.modified, name) }

// IsTracked reports whether name appears in any commit's file list.
func (r *Repository) IsTracked(name string) bool {
	for _, c := range r.commits {
		if slices.Contains(c.Files, name) {
			return true
		}
	}
	return false
}

// ValidFileName reports whether name can hold file content. Directory-like
// names (".", "/", "a/") are rejected; the simulated tree is flat.
func ValidFileName(name string) bool {
	if name == "" || strings.HasSuffix(name, "/") {
		return false
	}
	switch path.Clean(name) {
	case ".", "/", "..":
		return false
	}
	return true
}

// FileExists reports whether name is known anywhere: working, staged or history.
func (r *Repository) FileExists(name string) bool {
	return r.InWorking(name) || r.IsStaged(name) || r.IsTracked(name)
}

// ListFiles returns the working and staged names, deduplicated, in that order.
func (r *Repository) ListFiles() []string {
	var out []string
	for _, name := range slices.Concat(r.working, r.staged) {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// FileStatuses labels every known file as untracked, modified, staged or clean.
func (r *Repository) FileStatuses() map[string]string {
	statuses := make(map[string]string)
	for _, c := range r.commits {
		for _, f := range c.Files {
			statuses[f] = FileClean
		}
	}
	for _, f := range r.staged {
		statuses[f] = FileStaged
	}
	for _, f := range r.working {
		if r.IsModified(f) {
			statuses[f] = FileModified
		} else {
			statuses[f] = FileUntracked
		}
	}
	return statuses
}

// AllFiles returns every known file name sorted.
func (r *Repository) AllFiles() []string {
	statuses := r.FileStatuses()
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddFile creates an empty untracked file.
func (r *Repository) AddFile(name string) error {
	if !ValidFileName(name) {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	if r.FileExists(name) {
		return fmt.Errorf("%w: %s", ErrFileExists, name)
	}
	if err := util.WriteFile(r.fs, name, nil, 0o644); err != nil {
		return err
	}
	r.working = append(r.working, name)
	return nil
}

// RenameFile renames oldName in whichever of the working or staged sets holds it.
// A clean tracked file reappears under the new name as untracked. Tracked
// names keep their content, since history still lists them.
func (r *Repository) RenameFile(oldName, newName string) error {
	if !r.FileExists(oldName) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, oldName)
	}
	if !ValidFileName(newName) {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, newName)
	}
	if r.FileExists(newName) {
		return fmt.Errorf("%w: %s", ErrFileExists, newName)
	}

	if r.IsTracked(oldName) {
		if err := r.copyContent(oldName, newName); err != nil {
			return err
		}
	} else if err := r.fs.Rename(oldName, newName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	switch {
	case r.InWorking(oldName):
		r.working = replace(r.working, oldName, newName)
		r.modified = remove(r.modified, oldName)
	case r.IsStaged(oldName):
		r.staged = replace(r.staged, oldName, newName)
	default:
		r.working = append(r.working, newName)
	}
	return nil
}

// copyContent duplicates oldName's content under newName.
func (r *Repository) copyContent(oldName, newName string) error {
	data, err := util.ReadFile(r.fs, oldName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			data = nil
		} else {
			return err
		}
	}
	return util.WriteFile(r.fs, newName, data, 0o644)
}

// DeleteFile removes a working or staged file from the sets and the filesystem.
func (r *Repository) DeleteFile(name string) error {
	if !r.InWorking(name) && !r.IsStaged(name) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	r.forget(name)
	return nil
}

// RemoveTracked removes a file that appears in history from every pending set.
func (r *Repository) RemoveTracked(name string) error {
	if !r.FileExists(name) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	if !r.IsTracked(name) {
		return fmt.Errorf("%w: %s", ErrFileNotTracked, name)
	}
	r.forget(name)
	return nil
}

func (r *Repository) forget(name string) {
	r.working = remove(r.working, name)
	r.staged = remove(r.staged, name)
	r.modified = remove(r.modified, name)
	_ = r.fs.Remove(name)
}

// Stage moves name from the working set into the staged set. Files already
// staged or clean in history are accepted without change.
func (r *Repository) Stage(name string) error {
	switch {
	case r.IsStaged(name):
		return nil
	case r.InWorking(name):
		r.working = remove(r.working, name)
		r.modified = remove(r.modified, name)
		r.staged = append(r.staged, name)
		return nil
	case r.IsTracked(name):
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
}

// StageAll stages every working file and returns the names moved.
func (r *Repository) StageAll() []string {
	moved := slices.Clone(r.working)
	r.staged = append(r.staged, moved...)
	r.working = nil
	r.modified = nil
	return moved
}

// StageModified stages only tracked files with local edits.
func (r *Repository) StageModified() []string {
	moved := slices.Clone(r.modified)
	for _, name := range moved {
		r.working = remove(r.working, name)
		r.staged = append(r.staged, name)
	}
	r.modified = nil
	return moved
}

// Unstage moves a staged file back to the working set; tracked files come back as modified.
func (r *Repository) Unstage(name string) error {
	if !r.IsStaged(name) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	r.staged = remove(r.staged, name)
	r.working = append(r.working, name)
	if r.IsTracked(name) {
		r.modified = append(r.modified, name)
	}
	return nil
}

// DiscardChanges drops the pending local edit of a modified file, leaving it clean.
func (r *Repository) DiscardChanges(name string) error {
	if !r.IsModified(name) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	r.working = remove(r.working, name)
	r.modified = remove(r.modified, name)
	return nil
}

// WriteFile replaces or appends to a file's content. Unknown names become
// untracked files; a clean tracked file becomes modified.
func (r *Repository) WriteFile(name, content string, appendMode bool) error {
	if !ValidFileName(name) {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	data := []byte(content)
	if appendMode {
		if prev, err := util.ReadFile(r.fs, name); err == nil {
			data = append(prev, data...)
		}
	}
	if err := util.WriteFile(r.fs, name, data, 0o644); err != nil {
		return err
	}

	switch {
	case !r.FileExists(name):
		r.working = append(r.working, name)
	case r.InWorking(name) || r.IsStaged(name):
	default:
		r.working = append(r.working, name)
		r.modified = append(r.modified, name)
	}
	return nil
}

// ReadFile returns the simulated content of name.
func (r *Repository) ReadFile(name string) (string, error) {
	if !r.FileExists(name) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	data, err := util.ReadFile(r.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return "", err
	}
	return string(data), nil
}

func remove(list []string, name string) []string {
	return slices.DeleteFunc(list, func(s string) bool { return s == name })
}

func replace(list []string, oldName, newName string) []string {
	out := slices.Clone(list)
	if i := slices.Index(out, oldName); i >= 0 {
		out[i] = newName
	}
	return out
}
