package state

import (
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// ShortHashLen is the number of hex characters kept from a computed hash.
const ShortHashLen = 7

// nextHash derives a fresh abbreviated commit hash. The sequence counter is
// part of the payload so identical commits still hash differently, and a
// collision with an existing abbreviation is retried.
func (r *Repository) nextHash(fields ...string) string {
	for {
		r.seq++
		payload := strconv.FormatUint(r.seq, 10) + "\x00" + strings.Join(fields, "\x00")
		h := plumbing.ComputeHash(plumbing.CommitObject, []byte(payload)).String()[:ShortHashLen]
		if _, taken := r.commitIndex[h]; !taken {
			return h
		}
	}
}
