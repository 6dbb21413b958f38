package git

// ConflictStage identifies one of the three index slots git assigns to a
// path during an unresolved merge. The numeric values are the stage numbers
// used in `git show :<stage>:<path>` specs.
type ConflictStage int

const (
	StageBase   ConflictStage = 1 // common ancestor
	StageOurs   ConflictStage = 2 // current branch
	StageTheirs ConflictStage = 3 // incoming branch
)

func (s ConflictStage) String() string {
	switch s {
	case StageBase:
		return "base"
	case StageOurs:
		return "ours"
	case StageTheirs:
		return "theirs"
	default:
		return "unknown"
	}
}

// RepoPath represents an absolute path to a git repository root.
// Using a distinct type prevents mixing up repository roots with other strings.
type RepoPath string
