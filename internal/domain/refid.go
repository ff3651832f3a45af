package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Display IDs are short human-readable references shown in the UI and
// exports, e.g. "RM-MDQ3K2-X4J9P". They are a convenience, not a uniqueness
// guarantee: the database primary key enforces uniqueness. The time-derived
// component makes them sort roughly chronologically.
const (
	RoadmapIDPrefix     = "RM"
	RequirementIDPrefix = "REQ"
	IdeaIDPrefix        = "IDEA"

	refIDRandomChars = 5
)

// NewRoadmapRefID generates a display ID for a roadmap.
func NewRoadmapRefID() string { return newRefID(RoadmapIDPrefix) }

// NewRequirementRefID generates a display ID for a requirement.
func NewRequirementRefID() string { return newRefID(RequirementIDPrefix) }

// NewIdeaRefID generates a display ID for an idea.
func NewIdeaRefID() string { return newRefID(IdeaIDPrefix) }

func newRefID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, randomBase36(refIDRandomChars)))
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure is not recoverable here; fall back to a
			// time-derived digit so ID generation never blocks a request.
			b.WriteByte(base36Alphabet[time.Now().Nanosecond()%len(base36Alphabet)])
			continue
		}
		b.WriteByte(base36Alphabet[idx.Int64()])
	}
	return b.String()
}
