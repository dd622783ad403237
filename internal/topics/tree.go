// Package topics orders a subject's topic tree and decides how each
// node renders.
package topics

import (
	"sort"

	"github.com/igcsenotes/site/internal/model"
)

// NodeKind is the render decision for a subtopic or sub-subtopic.
type NodeKind int

const (
	// KindComingSoon renders a disabled label with a badge; any URL
	// or children are ignored.
	KindComingSoon NodeKind = iota
	// KindExpandable renders a collapsible toggle; the node's own
	// URL is not used for navigation.
	KindExpandable
	// KindLink renders a direct navigable link.
	KindLink
	// KindInert renders a disabled label. Reaching it means the
	// document has a subtopic with no URL and no children, which is
	// an authoring error but must not fail the page.
	KindInert
)

// Sort returns the topics ordered by display order ascending. The
// input is not modified.
func Sort(ts []model.Topic) []model.Topic {
	out := make([]model.Topic, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// Valid filters out subtopics without a name.
func Valid(subs []model.Subtopic) []model.Subtopic {
	out := make([]model.Subtopic, 0, len(subs))
	for _, s := range subs {
		if s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}

// HasValidSubtopics reports whether a topic has anything to expand.
func HasValidSubtopics(t model.Topic) bool {
	return len(Valid(t.Subtopics)) > 0
}

// Classify decides how a subtopic renders. Coming-soon wins over
// everything; children win over the node's own URL.
func Classify(s model.Subtopic) NodeKind {
	switch {
	case s.IsComingSoon:
		return KindComingSoon
	case len(s.SubSubtopics) > 0:
		return KindExpandable
	case s.URL != "":
		return KindLink
	default:
		return KindInert
	}
}

// ClassifyLeaf decides how a sub-subtopic renders. There is no deeper
// level, so a URL is required for navigation.
func ClassifyLeaf(s model.SubSubtopic) NodeKind {
	switch {
	case s.IsComingSoon:
		return KindComingSoon
	case s.URL != "":
		return KindLink
	default:
		return KindInert
	}
}
