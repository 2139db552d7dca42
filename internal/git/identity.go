package git

import (
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GetDefaultSignature returns the author signature recorded on commits made in s.
func GetDefaultSignature(s *Session) *object.Signature {
	return &object.Signature{
		Name:  s.Author,
		Email: s.Email,
		When:  s.Repo.Now(),
	}
}

// CollaboratorSignature is the identity used for commits that appear on the
// remote without the learner making them.
func CollaboratorSignature(s *Session) *object.Signature {
	return &object.Signature{
		Name:  "Collaborator",
		Email: "collaborator@example.com",
		When:  s.Repo.Now(),
	}
}
