package merge

import (
	"strings"

	"github.com/3dyuval/git-resolve-conflict/internal/errors"
)

// Strategy selects how conflicting regions are resolved. Non-conflicting
// changes from either side are always merged in regardless of strategy.
type Strategy int

const (
	// StrategyOurs resolves every conflicting region with the current
	// branch's lines.
	StrategyOurs Strategy = iota
	// StrategyTheirs resolves every conflicting region with the incoming
	// branch's lines.
	StrategyTheirs
	// StrategyUnion resolves every conflicting region with both sides'
	// lines, ours first, neither block deduplicated.
	StrategyUnion
)

func (s Strategy) String() string {
	switch s {
	case StrategyOurs:
		return "ours"
	case StrategyTheirs:
		return "theirs"
	case StrategyUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Description returns the human-readable label used by the interactive picker.
func (s Strategy) Description() string {
	switch s {
	case StrategyOurs:
		return "keep our version of conflicting regions"
	case StrategyTheirs:
		return "keep their version of conflicting regions"
	case StrategyUnion:
		return "keep both versions, ours first"
	default:
		return ""
	}
}

// Strategies lists every supported strategy in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyOurs, StrategyTheirs, StrategyUnion}
}

// ParseStrategy validates a strategy name at the input boundary. Anything
// outside the closed set is rejected as a user input error.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ours":
		return StrategyOurs, nil
	case "theirs":
		return StrategyTheirs, nil
	case "union":
		return StrategyUnion, nil
	default:
		return 0, errors.ErrStrategyInvalid(name)
	}
}
