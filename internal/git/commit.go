package git

import "strings"

// fieldSep separates hash, author, and subject in git log output.
// It is the unit separator byte, which cannot appear in any of the fields.
const fieldSep = "\x1f"

// logFormat is the pretty format used for every commit listing.
const logFormat = "%H" + fieldSep + "%an" + fieldSep + "%s"

// Commit is one commit as reported by a range query.
type Commit struct {
	Hash    string
	Author  string
	Subject string
}

// ShortHash returns the abbreviated commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// parseLog parses `git log` output produced with logFormat into commits.
// Blank lines are skipped.
func parseLog(output string) []Commit {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, fieldSep, 3)
		commit := Commit{Hash: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			commit.Author = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			commit.Subject = strings.TrimSpace(parts[2])
		}
		commits = append(commits, commit)
	}
	return commits
}
