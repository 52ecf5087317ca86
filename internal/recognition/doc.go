// Package recognition classifies scraped DOM elements into semantic UI
// component types so exporters can regenerate an equivalent page in another
// authoring format.
//
// The engine is a deterministic, explainable rule pipeline:
//
//	walk -> context -> styles -> match -> best-of -> boost -> cross-validate
//
// Patterns live in an immutable priority-sorted registry built once at
// startup. Matching scores each pattern 0-100 from the fraction of its
// declared signals an element satisfies. A post-pass booster adjusts
// confidence with structural heuristics the matcher cannot express, and a
// cross validator reconciles the result against ancestor context and
// already-finalized prior siblings. Every decision is traceable to a rule;
// there are no learned weights.
package recognition
