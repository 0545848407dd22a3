package notes

import (
	"github.com/stretchr/testify/mock"

	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/git"
)

type MockGitClient struct {
	mock.Mock
}

// Head implements GitClient.
func (m *MockGitClient) Head() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// RootCommit implements GitClient.
func (m *MockGitClient) RootCommit() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// CommitsInRange implements GitClient.
func (m *MockGitClient) CommitsInRange(start, end string) ([]git.Commit, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]git.Commit), args.Error(1)
}

// RecentCommits implements GitClient.
func (m *MockGitClient) RecentCommits(n int, ref string) ([]git.Commit, error) {
	args := m.Called(n, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]git.Commit), args.Error(1)
}

// RemoteBranchesContaining implements GitClient.
func (m *MockGitClient) RemoteBranchesContaining(hash string) ([]string, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// RemoteName implements GitClient.
func (m *MockGitClient) RemoteName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

type MockForgeClient struct {
	mock.Mock
}

// LastSuccessfulRunHead implements ForgeClient.
func (m *MockForgeClient) LastSuccessfulRunHead(workflow, branch string) (string, bool, error) {
	args := m.Called(workflow, branch)
	return args.String(0), args.Bool(1), args.Error(2)
}

// LatestReleaseTag implements ForgeClient.
func (m *MockForgeClient) LatestReleaseTag(stableOnly bool) (string, bool, error) {
	args := m.Called(stableOnly)
	return args.String(0), args.Bool(1), args.Error(2)
}

// ReleaseTags implements ForgeClient.
func (m *MockForgeClient) ReleaseTags(limit int, stableOnly bool) ([]string, error) {
	args := m.Called(limit, stableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// PRHeadBranch implements ForgeClient.
func (m *MockForgeClient) PRHeadBranch(hash string) (string, bool, error) {
	args := m.Called(hash)
	return args.String(0), args.Bool(1), args.Error(2)
}

// CreateRelease implements ForgeClient.
func (m *MockForgeClient) CreateRelease(spec gh.ReleaseSpec) error {
	args := m.Called(spec)
	return args.Error(0)
}

// UpdateRelease implements ForgeClient.
func (m *MockForgeClient) UpdateRelease(spec gh.ReleaseSpec) error {
	args := m.Called(spec)
	return args.Error(0)
}

// UploadAsset implements ForgeClient.
func (m *MockForgeClient) UploadAsset(tag, path string) error {
	args := m.Called(tag, path)
	return args.Error(0)
}

// DownloadAsset implements ForgeClient.
func (m *MockForgeClient) DownloadAsset(tag, name, dir string) error {
	args := m.Called(tag, name, dir)
	return args.Error(0)
}
