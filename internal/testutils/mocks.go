package testutils

import (
	"fmt"
	"strings"

	"github.com/3dyuval/git-resolve-conflict/internal/git"
)

// MockResponse is a canned result for one git command.
type MockResponse struct {
	Output string
	Error  error
}

// MockGitCommander implements git.Commander with canned responses for use
// across test packages. It tracks executed commands for verification and
// matches responses by exact joined-args key first, then by prefix.
type MockGitCommander struct {
	// Commands stores the executed commands for verification.
	Commands [][]string
	// WorkDirs stores the working directory of each executed command.
	WorkDirs []string
	// Responses maps command keys (args joined by spaces) to responses.
	Responses map[string]MockResponse
	// CallCount tracks how many times Run/RunQuiet was called.
	CallCount int
}

// NewMockGitCommander creates an empty mock commander.
func NewMockGitCommander() *MockGitCommander {
	return &MockGitCommander{
		Responses: make(map[string]MockResponse),
	}
}

// SetResponse registers a canned response for the given command key.
// The key is the git arguments joined by single spaces, e.g. "ls-files -u -z".
func (m *MockGitCommander) SetResponse(command, output string, err error) {
	m.Responses[command] = MockResponse{Output: output, Error: err}
}

// Run implements git.Commander.
func (m *MockGitCommander) Run(workDir string, args ...string) ([]byte, []byte, error) {
	output, err := m.dispatch(workDir, args)
	if err != nil {
		return nil, []byte(err.Error()), err
	}
	return []byte(output), nil, nil
}

// RunQuiet implements git.Commander.
func (m *MockGitCommander) RunQuiet(workDir string, args ...string) error {
	_, err := m.dispatch(workDir, args)
	return err
}

func (m *MockGitCommander) dispatch(workDir string, args []string) (string, error) {
	m.CallCount++
	m.Commands = append(m.Commands, args)
	m.WorkDirs = append(m.WorkDirs, workDir)

	key := strings.Join(args, " ")

	if response, exists := m.Responses[key]; exists {
		return response.Output, response.Error
	}

	// Prefix matches cover commands with variable parts.
	for pattern, response := range m.Responses {
		if strings.HasPrefix(key, pattern) {
			return response.Output, response.Error
		}
	}

	return "", fmt.Errorf("mock: unhandled git command: %s", key)
}

// CommandKeys returns the executed commands as joined-args keys, in order.
func (m *MockGitCommander) CommandKeys() []string {
	keys := make([]string, len(m.Commands))
	for i, args := range m.Commands {
		keys[i] = strings.Join(args, " ")
	}
	return keys
}

// Ran reports whether a command with the given key (or prefix) was executed.
func (m *MockGitCommander) Ran(prefix string) bool {
	for _, key := range m.CommandKeys() {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// FakeClient implements git.Client entirely in memory so the resolution
// pipeline can be exercised without a repository on disk.
type FakeClient struct {
	// Root is returned by ResolveRoot; empty means "not a repository".
	Root string
	// Unmerged is the set of conflicted repo-relative paths.
	Unmerged []string
	// Stages maps relPath -> stage -> blob content. A missing stage entry
	// simulates add/add or delete/modify conflicts.
	Stages map[string]map[git.ConflictStage][]byte

	// WrittenPath and WrittenContent record the last WriteResolvedFile call.
	WrittenPath    string
	WrittenContent []byte
	// ResolvedPaths records every MarkResolved call.
	ResolvedPaths []string

	// Error overrides per operation.
	ResolveRootErr  error
	ListUnmergedErr error
	ReadStageErr    error
	WriteErr        error
	MarkResolvedErr error
}

// NewFakeClient creates a fake client rooted at root.
func NewFakeClient(root string) *FakeClient {
	return &FakeClient{
		Root:   root,
		Stages: make(map[string]map[git.ConflictStage][]byte),
	}
}

// AddConflict registers relPath as conflicted with the given stage blobs.
func (f *FakeClient) AddConflict(relPath string, base, ours, theirs []byte) {
	f.Unmerged = append(f.Unmerged, relPath)
	stages := make(map[git.ConflictStage][]byte)
	if base != nil {
		stages[git.StageBase] = base
	}
	if ours != nil {
		stages[git.StageOurs] = ours
	}
	if theirs != nil {
		stages[git.StageTheirs] = theirs
	}
	f.Stages[relPath] = stages
}

func (f *FakeClient) ResolveRoot(dir string) (string, error) {
	if f.ResolveRootErr != nil {
		return "", f.ResolveRootErr
	}
	if f.Root == "" {
		return "", &git.GitError{Command: "git", Args: []string{"rev-parse", "--show-toplevel"}, Stderr: "fatal: not a git repository", ExitCode: 128}
	}
	return f.Root, nil
}

func (f *FakeClient) ListUnmergedPaths(root string) ([]string, error) {
	if f.ListUnmergedErr != nil {
		return nil, f.ListUnmergedErr
	}
	return f.Unmerged, nil
}

func (f *FakeClient) ReadStageBlob(root, relPath string, stage git.ConflictStage) ([]byte, error) {
	if f.ReadStageErr != nil {
		return nil, f.ReadStageErr
	}
	stages, ok := f.Stages[relPath]
	if !ok {
		return nil, &git.GitError{Command: "git", Args: []string{"show"}, Stderr: fmt.Sprintf("fatal: path '%s' does not exist in the index", relPath), ExitCode: 128}
	}
	content, ok := stages[stage]
	if !ok {
		return nil, &git.GitError{Command: "git", Args: []string{"show"}, Stderr: fmt.Sprintf("fatal: path '%s' is in the index, but not at stage %d", relPath, stage), ExitCode: 128}
	}
	return content, nil
}

func (f *FakeClient) WriteResolvedFile(absPath string, content []byte) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.WrittenPath = absPath
	f.WrittenContent = content
	return nil
}

func (f *FakeClient) MarkResolved(root, relPath string) error {
	if f.MarkResolvedErr != nil {
		return f.MarkResolvedErr
	}
	f.ResolvedPaths = append(f.ResolvedPaths, relPath)
	return nil
}
