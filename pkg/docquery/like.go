package docquery

import "strings"

type LikeKind int

const (
	LikeEquals LikeKind = iota
	LikeBeginsWith
	LikeEndsWith
	LikeContains
)

func (k LikeKind) String() string {
	switch k {
	case LikeEquals:
		return "equals"
	case LikeBeginsWith:
		return "prefix"
	case LikeEndsWith:
		return "suffix"
	case LikeContains:
		return "substring"
	default:
		return "unknown"
	}
}

// LikePattern is a LIKE pattern reduced to one match kind and its literal text.
type LikePattern struct {
	Kind LikeKind
	Text string
}

// DecomposeLike classifies pattern by the presence of '%' as its first and
// last character. Any other '%' or '_' is taken literally. It never fails.
func DecomposeLike(pattern string) LikePattern {
	leading := strings.HasPrefix(pattern, "%")
	trailing := strings.HasSuffix(pattern, "%")

	switch {
	case leading && trailing:
		if len(pattern) == 1 {
			return LikePattern{Kind: LikeContains}
		}
		return LikePattern{Kind: LikeContains, Text: pattern[1 : len(pattern)-1]}
	case leading:
		return LikePattern{Kind: LikeEndsWith, Text: pattern[1:]}
	case trailing:
		return LikePattern{Kind: LikeBeginsWith, Text: pattern[:len(pattern)-1]}
	default:
		return LikePattern{Kind: LikeEquals, Text: pattern}
	}
}
