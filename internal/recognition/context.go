package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
)

// DetermineContext computes an element's structural context from its
// parent's. Flags are inherited top-down and include the current element's
// own contribution: the <form> node itself carries InsideForm, established
// here before the node's own recognition runs. Depth is 0 at the analysis
// root. SiblingTypes is left empty; the parent records it after all its
// children have been analyzed.
func DetermineContext(el *dom.Element, parent *ElementContext) ElementContext {
	var ctx ElementContext
	if parent != nil {
		ctx = *parent
		ctx.SiblingTypes = nil
		ctx.Depth = parent.Depth + 1
	}

	switch el.Tag() {
	case "form":
		ctx.InsideForm = true
	case "nav":
		ctx.InsideNav = true
	case "header":
		ctx.InsideHeader = true
	case "footer":
		ctx.InsideFooter = true
	case "section":
		ctx.InsideSection = true
	}

	if el.HasClassContaining("hero") || el.HasClassContaining("banner") {
		ctx.InsideHero = true
	}
	if el.HasClassContaining("card") || el.HasClassContaining("box") {
		ctx.InsideCard = true
	}

	return ctx
}
