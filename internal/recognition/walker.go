package recognition

import (
	"fmt"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/logging"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// Analyzer walks a parsed document depth-first, pre-order, attaching a
// RecognitionResult to every element. Context is computed and passed down
// before recursing, so a node is always recognized with its own ancestry
// flags already in place.
type Analyzer struct {
	recognizer *Recognizer
	extractor  styles.Extractor
	sanitizer  *bluemonday.Policy
	log        *logging.Logger
	sem        chan struct{}
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExtractor replaces the default inline style extractor.
func WithExtractor(x styles.Extractor) Option {
	return func(a *Analyzer) { a.extractor = x }
}

// WithLogger attaches a logger for walk diagnostics.
func WithLogger(log *logging.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithWorkers enables concurrent descent into sibling subtrees, using at
// most n extra workers. Recognition order and results are identical to the
// sequential walk: each node's own recognition still happens in sibling
// order, only subtree descent fans out.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 1 {
			a.sem = make(chan struct{}, n-1)
		}
	}
}

// NewAnalyzer creates an analyzer over an immutable registry.
func NewAnalyzer(registry *Registry, opts ...Option) *Analyzer {
	a := &Analyzer{
		recognizer: NewRecognizer(registry),
		extractor:  styles.NewInlineExtractor(),
		sanitizer:  bluemonday.UGCPolicy(),
		log:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeDocument parses markup and analyzes its body. A document that
// cannot be parsed into a tree at all is fatal; per-node style extraction
// failures are recovered with empty styles and recorded as diagnostics.
func (a *Analyzer) AnalyzeDocument(htmlStr string) (*Report, error) {
	started := time.Now()

	doc, err := dom.Parse(htmlStr)
	if err != nil {
		return nil, err
	}

	root, diags := a.AnalyzeElement(doc.Body())
	report := newReport(doc.Meta(), root, diags, time.Since(started))

	a.log.Info("analysis complete",
		zap.String("report_id", report.ID),
		zap.Int("nodes", report.Stats.Nodes),
		zap.Int("unknown", report.Stats.Unknown),
		zap.Int("manual_review", report.Stats.ManualReview),
		zap.Int64("duration_ms", report.Stats.DurationMS),
	)
	return report, nil
}

// AnalyzeElement analyzes the subtree rooted at el and returns the analyzed
// tree plus any non-fatal diagnostics gathered along the walk.
func (a *Analyzer) AnalyzeElement(el *dom.Element) (*AnalyzedElement, []Diagnostic) {
	col := &collector{}
	ctx := DetermineContext(el, nil)
	vctx := BuildValidationContext(ElementContext{}, nil)

	node := a.recognizeNode(el, ctx, vctx, 0, el.Tag(), col)
	a.walkChildren(node, el, ctx, el.Tag(), col)
	return node, col.diagnostics()
}

// maxTextContent bounds the text carried per analyzed node. Containers near
// the root aggregate the whole page's text; reports only need a preview.
const maxTextContent = 500

// recognizeNode extracts one element's data and attaches its classification.
func (a *Analyzer) recognizeNode(el *dom.Element, ctx ElementContext, vctx ValidationContext, index int, path string, col *collector) *AnalyzedElement {
	st := a.extractStyles(el, path, col)
	rec := a.recognizer.Recognize(el, st, ctx, vctx)

	return &AnalyzedElement{
		Tag:         el.Tag(),
		ID:          el.ID(),
		Classes:     el.Classes(),
		Attributes:  el.Attributes(),
		TextContent: dom.TruncateText(dom.NormalizeWhitespace(el.Text()), maxTextContent),
		InnerHTML:   a.sanitizer.Sanitize(el.InnerHTML()),
		Styles:      st,
		Context:     ctx,
		Recognition: rec,
		Position:    Position{Index: index, Depth: ctx.Depth},
	}
}

// walkChildren analyzes el's children in source order, then descends into
// each child's subtree — concurrently when workers are configured — and
// finally records the sibling type group on every child.
//
// Ordering matters twice here: a child's ValidationContext may only contain
// already-finalized prior-sibling results, so per-child recognition is
// strictly sequential; and sibling types are recorded only after every
// subtree has joined, in original order.
func (a *Analyzer) walkChildren(node *AnalyzedElement, el *dom.Element, ctx ElementContext, path string, col *collector) {
	children := el.Children()
	if len(children) == 0 {
		return
	}

	node.Children = make([]*AnalyzedElement, len(children))
	ctxs := make([]ElementContext, len(children))
	paths := make([]string, len(children))
	prior := make([]RecognitionResult, 0, len(children))

	for i, c := range children {
		cctx := DetermineContext(c, &ctx)
		vctx := BuildValidationContext(ctx, prior)
		paths[i] = fmt.Sprintf("%s/%s[%d]", path, c.Tag(), i)

		node.Children[i] = a.recognizeNode(c, cctx, vctx, i, paths[i], col)
		ctxs[i] = cctx
		prior = append(prior, node.Children[i].Recognition)
	}

	var wg sync.WaitGroup
	for i := range children {
		i := i
		select {
		case a.sem <- struct{}{}:
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-a.sem }()
				a.walkChildren(node.Children[i], children[i], ctxs[i], paths[i], col)
			}()
		default:
			a.walkChildren(node.Children[i], children[i], ctxs[i], paths[i], col)
		}
	}
	wg.Wait()

	siblings := make([]ComponentType, len(node.Children))
	for i, c := range node.Children {
		siblings[i] = c.Recognition.ComponentType
	}
	for _, c := range node.Children {
		c.Context.SiblingTypes = siblings
	}
}

// extractStyles resolves styles for one node. Extraction failures are
// node-local: the walk continues with empty styles and a diagnostic.
func (a *Analyzer) extractStyles(el *dom.Element, path string, col *collector) styles.Styles {
	st, err := a.extractor.Extract(el.OuterHTML())
	if err != nil {
		col.add(Diagnostic{
			Path:    path,
			Message: fmt.Sprintf("style extraction failed: %v", err),
		})
		a.log.Warn("style extraction failed",
			zap.String("path", path), zap.Error(err))
		return styles.Styles{}
	}
	if st == nil {
		return styles.Styles{}
	}
	return st
}

// collector gathers walk diagnostics; safe under concurrent descent.
type collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *collector) add(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

func (c *collector) diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.diags
}
