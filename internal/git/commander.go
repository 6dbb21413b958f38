package git

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/3dyuval/git-resolve-conflict/internal/logger"
)

// GitError captures a failed git invocation with enough detail to surface
// the underlying tool's diagnostic text to the user.
type GitError struct {
	Command  string
	Args     []string
	Stderr   string
	ExitCode int
}

func (e *GitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		return fmt.Sprintf("git %s failed: %s", strings.Join(e.Args, " "), stderr)
	}
	return fmt.Sprintf("git %s failed with exit code %d", strings.Join(e.Args, " "), e.ExitCode)
}

// Commander abstracts git command execution to enable dependency injection
// and testing. Mock implementations replace real git execution so the
// surrounding pipeline can be tested without a repository on disk.
type Commander interface {
	// Run executes a git command with the given arguments in the specified
	// working directory. Returns stdout, stderr, and any execution error.
	Run(workDir string, args ...string) (stdout, stderr []byte, err error)

	// RunQuiet executes a git command without logging failures. This is for
	// operations where failures are expected and handled by the caller.
	RunQuiet(workDir string, args ...string) error
}

// LiveGitCommander provides production git command execution with
// structured logging and error capture.
type LiveGitCommander struct{}

// NewLiveGitCommander creates a new instance of LiveGitCommander.
func NewLiveGitCommander() *LiveGitCommander {
	return &LiveGitCommander{}
}

// Run executes a git command with structured logging and error handling.
func (c *LiveGitCommander) Run(workDir string, args ...string) (stdout, stderr []byte, err error) {
	log := logger.WithComponent("git_commander")
	start := time.Now()

	log.GitCommand("git", args)
	cmd := exec.Command("git", args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	stdoutBytes, err := cmd.Output()
	duration := time.Since(start)

	if err != nil {
		var stderrBytes []byte
		if exitError, ok := err.(*exec.ExitError); ok {
			stderrBytes = exitError.Stderr
		}

		exitCode := 0
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}

		gitErr := &GitError{
			Command:  "git",
			Args:     args,
			Stderr:   string(stderrBytes),
			ExitCode: exitCode,
		}

		log.GitResult("git", false, string(stderrBytes), "duration", duration, "workdir", workDir)
		return stdoutBytes, stderrBytes, gitErr
	}

	log.GitResult("git", true, string(stdoutBytes), "duration", duration, "workdir", workDir)
	return stdoutBytes, nil, nil
}

// RunQuiet executes a git command without logging failures.
func (c *LiveGitCommander) RunQuiet(workDir string, args ...string) error {
	log := logger.WithComponent("git_commander")

	log.GitCommand("git", args)
	cmd := exec.Command("git", args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	stdout, err := cmd.Output()
	if err != nil {
		var stderrString string
		if exitError, ok := err.(*exec.ExitError); ok {
			stderrString = string(exitError.Stderr)
		}

		exitCode := 0
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}

		// Note: We don't log failures for quiet execution.
		// The caller expects failures and will handle them appropriately.
		return &GitError{
			Command:  "git",
			Args:     args,
			Stderr:   stderrString,
			ExitCode: exitCode,
		}
	}

	log.GitResult("git", true, strings.TrimSpace(string(stdout)), "workdir", workDir)
	return nil
}

// DefaultCommander provides a default instance of LiveGitCommander for production use.
var DefaultCommander Commander = NewLiveGitCommander()
