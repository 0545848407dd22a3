package notes

import (
	"fmt"
	"strings"
	"time"
)

// DefaultHistoryLimit caps the number of builds kept in a history file.
const DefaultHistoryLimit = 50

// Build is one classified snapshot appended to the rolling history.
type Build struct {
	Timestamp string             `json:"timestamp"`
	Revision  string             `json:"revision"`
	Stories   []ClassifiedCommit `json:"stories"`
	Defects   []ClassifiedCommit `json:"defects"`
}

// NewBuild stamps a build record with the current UTC time.
func NewBuild(revision string, stories, defects []ClassifiedCommit) Build {
	return Build{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Revision:  revision,
		Stories:   stories,
		Defects:   defects,
	}
}

// History is the persisted rolling list of build records.
type History struct {
	Builds []Build `json:"builds"`
}

// Policy selects where a new build is inserted and which end is truncated.
type Policy int

const (
	// Prepend keeps the newest build first and truncates the tail.
	Prepend Policy = iota
	// Append keeps the newest build last and truncates the head.
	Append
)

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "prepend":
		return Prepend, nil
	case "append":
		return Append, nil
	default:
		return 0, fmt.Errorf("unknown insert policy %q (want prepend or append)", s)
	}
}

// Insert adds a build per the policy and trims the history to limit
// entries, always discarding the oldest.
func (h History) Insert(build Build, policy Policy, limit int) History {
	var builds []Build
	switch policy {
	case Append:
		builds = append(append(builds, h.Builds...), build)
		if len(builds) > limit {
			builds = builds[len(builds)-limit:]
		}
	default:
		builds = append([]Build{build}, h.Builds...)
		if len(builds) > limit {
			builds = builds[:limit]
		}
	}
	return History{Builds: builds}
}
