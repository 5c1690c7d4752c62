package resolver

import (
	"golang.org/x/text/cases"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

type predicate func(*model.CollectorItem) bool

// filter returns the items keep accepts, in their original order. The result
// is never nil.
func filter(items []model.CollectorItem, keep predicate) []model.CollectorItem {
	out := make([]model.CollectorItem, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// altIdentifierEquals matches on the item's alternate identifier using
// Unicode case folding. Items without one never match.
func altIdentifierEquals(want string) predicate {
	fold := cases.Fold()
	folded := fold.String(want)
	return func(item *model.CollectorItem) bool {
		if !item.HasAltIdentifier() {
			return false
		}
		return fold.String(item.AltIdentifier) == folded
	}
}

// artifactNameEquals matches on the artifactName option using Unicode case
// folding. Non-string values never match.
func artifactNameEquals(want string) predicate {
	fold := cases.Fold()
	folded := fold.String(want)
	return func(item *model.CollectorItem) bool {
		name, ok := item.StringOption(model.OptionArtifactName)
		if !ok {
			return false
		}
		return fold.String(name) == folded
	}
}

// testTypeEquals matches the testType option exactly.
func testTypeEquals(want string) predicate {
	return func(item *model.CollectorItem) bool {
		testType, ok := item.StringOption(model.OptionTestType)
		return ok && testType == want
	}
}
