package recognition

import (
	"math"
	"strings"

	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// matchScore is the outcome of scoring one pattern against one element.
type matchScore struct {
	confidence int
	matched    int
	total      int
}

// matchPattern scores a pattern against an element's data.
//
// The tag list is a hard gate: when specified and the element's tag is
// absent, the score is 0 and no other dimension can compensate. A passing
// gate counts as one satisfied signal. Every other specified dimension is
// evaluated independently; the confidence is the base confidence scaled by
// the fraction of satisfied signals, rounded.
func matchPattern(p *compiledPattern, el *dom.Element, st styles.Styles, ctx ElementContext) matchScore {
	var score matchScore

	if len(p.Tags) > 0 {
		if !containsFold(p.Tags, el.Tag()) {
			return matchScore{}
		}
		score.total++
		score.matched++
	}

	if len(p.ClassKeywords) > 0 {
		score.total++
		if anyClassKeyword(el, p.ClassKeywords) {
			score.matched++
		}
	}

	if p.CSS != nil {
		score.total++
		if p.CSS.satisfied(st, el) {
			score.matched++
		}
	}

	if p.contentRE != nil {
		score.total++
		if p.contentRE.MatchString(el.Text()) {
			score.matched++
		}
	}

	if p.AriaRole != "" {
		score.total++
		if strings.EqualFold(el.Role(), p.AriaRole) {
			score.matched++
		}
	}

	if len(p.Context) > 0 {
		score.total++
		if contextSatisfied(p.Context, ctx) {
			score.matched++
		}
	}

	if score.total == 0 {
		return matchScore{}
	}

	ratio := float64(score.matched) / float64(score.total)
	score.confidence = int(math.Round(float64(p.BaseConfidence) * ratio))
	return score
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func anyClassKeyword(el *dom.Element, keywords []string) bool {
	for _, kw := range keywords {
		if el.HasClassContaining(kw) {
			return true
		}
	}
	return false
}

// contextSatisfied requires every declared flag to equal its expected value.
// Keys were validated at registry construction.
func contextSatisfied(required map[string]bool, ctx ElementContext) bool {
	for key, want := range required {
		got, _ := ctx.contextFlag(key)
		if got != want {
			return false
		}
	}
	return true
}
