package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/git"
)

// DefaultNotesSizeLimit is the largest notes text set directly as a
// release description. Longer texts are uploaded as an asset instead.
const DefaultNotesSizeLimit = 125000

// notesAssetName is the asset a too-large notes text is uploaded as.
const notesAssetName = "release-notes.txt"

// notesPlaceholder replaces the description when the text is attached.
const notesPlaceholder = "Release notes exceed the description size limit. See the " + notesAssetName + " asset on this release."

// PublishRequest carries the required inputs for publishing a release.
type PublishRequest struct {
	ReleaseName  string
	TargetBranch string
	ArtifactPath string
	Prerelease   bool
}

// PublishResult reports what the publisher did.
type PublishResult struct {
	Updated       bool // an existing release was updated instead of created
	NotesAttached bool // notes were uploaded as an asset
	NotesSize     int  // length of the computed notes text
}

// Publisher creates or updates a tagged release with an artifact bundle
// and a release-notes log.
type Publisher struct {
	Git            GitClient
	Forge          ForgeClient
	NotesSizeLimit int // zero means DefaultNotesSizeLimit
}

// Publish creates the release, uploads the artifact, and sets the notes.
// A release that already exists for the tag is updated in place.
func (p *Publisher) Publish(req PublishRequest) (PublishResult, error) {
	if err := req.validate(); err != nil {
		return PublishResult{}, err
	}

	limit := p.NotesSizeLimit
	if limit == 0 {
		limit = DefaultNotesSizeLimit
	}

	text, err := p.notesText(req.TargetBranch)
	if err != nil {
		return PublishResult{}, err
	}

	result := PublishResult{NotesSize: len(text)}

	body := text
	if len(text) > limit {
		result.NotesAttached = true
		body = notesPlaceholder
	}

	spec := gh.ReleaseSpec{
		Tag:        req.ReleaseName,
		Target:     req.TargetBranch,
		Notes:      body,
		Prerelease: req.Prerelease,
	}

	if err := p.Forge.CreateRelease(spec); err != nil {
		if !errors.Is(err, gh.ErrReleaseExists) {
			return PublishResult{}, err
		}
		result.Updated = true
		if err := p.Forge.UpdateRelease(spec); err != nil {
			return PublishResult{}, err
		}
	}

	if err := p.Forge.UploadAsset(req.ReleaseName, req.ArtifactPath); err != nil {
		return PublishResult{}, err
	}

	if result.NotesAttached {
		if err := p.uploadNotes(req.ReleaseName, text); err != nil {
			return PublishResult{}, err
		}
	}

	return result, nil
}

func (req PublishRequest) validate() error {
	missing := []string{}
	if req.ReleaseName == "" {
		missing = append(missing, "release name")
	}
	if req.TargetBranch == "" {
		missing = append(missing, "target branch")
	}
	if req.ArtifactPath == "" {
		missing = append(missing, "artifact path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}
	return nil
}

// notesText builds the release-notes log from commit subjects since the
// latest stable release tag, or the full branch history without one.
func (p *Publisher) notesText(target string) (string, error) {
	start, found, err := p.Forge.LatestReleaseTag(true)
	if err != nil {
		return "", fmt.Errorf("failed to resolve previous release: %w", err)
	}
	if !found {
		start = ""
	}

	commits, err := p.Git.CommitsInRange(start, target)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		lines = append(lines, formatNotesLine(commit))
	}
	return strings.Join(lines, "\n"), nil
}

// uploadNotes writes the notes text to a scratch file and attaches it to
// the release.
func (p *Publisher) uploadNotes(tag, text string) error {
	dir, err := os.MkdirTemp("", "release-notes")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, notesAssetName)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	return p.Forge.UploadAsset(tag, path)
}

func formatNotesLine(commit git.Commit) string {
	return fmt.Sprintf("%s (%s, %s)", commit.Subject, commit.Author, commit.ShortHash())
}
