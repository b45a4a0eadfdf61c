package treestore

import (
	"regexp"
	"strings"
	"sync"
)

// Pattern grammar: a pattern is a dot-joined path whose segments are either
// literals, the single-level wildcard "*" (exactly one segment), or the deep
// wildcard "**" (zero or more segments).
//
// Two algorithms share the grammar and must agree: discovery (findPaths,
// backing Find) walks the tree and enumerates concrete matching paths, while
// point match (MatchPath, backing subscription dispatch) decides whether one
// concrete path matches a pattern. Every path discovery returns satisfies
// point match for the same pattern.

// MatchPath reports whether the concrete path matches the pattern.
func MatchPath(path, pattern string) bool {
	if pattern == "**" {
		return true
	}
	// A trailing ".**" on a literal prefix means "the prefix itself or
	// anything below it". Wildcard prefixes fall through to the compiled
	// matcher, which handles a trailing deep wildcard the same way.
	if prefix, ok := strings.CutSuffix(pattern, ".**"); ok && !containsWildcard(prefix) {
		return path == prefix || strings.HasPrefix(path, prefix+".")
	}
	re, err := compiledPattern(pattern)
	if err != nil {
		Logger.Error().Err(err).Str("pattern", pattern).Msg("pattern compilation failed")
		return false
	}
	return re.MatchString(path)
}

// collapseDeepWildcards folds runs of consecutive "**" segments into one;
// they are equivalent and a single occurrence keeps both algorithms simple.
func collapseDeepWildcards(segs Path) Path {
	out := make(Path, 0, len(segs))
	for _, seg := range segs {
		if seg == "**" && len(out) > 0 && out[len(out)-1] == "**" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func containsWildcard(pattern string) bool {
	for _, seg := range ParsePath(pattern) {
		if seg == "*" || seg == "**" {
			return true
		}
	}
	return false
}

var (
	patternCacheMu sync.Mutex
	patternCache   = map[string]*regexp.Regexp{}
)

// compiledPattern returns the anchored matcher for a pattern, compiling and
// caching it on first use. Literal segments are escaped so separators and
// regexp metacharacters in them match verbatim.
func compiledPattern(pattern string) (*regexp.Regexp, error) {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()

	if re, ok := patternCache[pattern]; ok {
		return re, nil
	}

	segs := collapseDeepWildcards(ParsePath(pattern))
	var b strings.Builder
	b.WriteString("^")
	skipDot := false
	for i, seg := range segs {
		last := i == len(segs)-1
		switch {
		case seg == "**" && last:
			// Zero or more trailing segments, each with its separator.
			if i == 0 {
				b.WriteString(`(?:[^.]+(?:\.[^.]+)*)?`)
			} else {
				b.WriteString(`(?:\.[^.]+)*`)
			}
		case seg == "**":
			// Zero or more interior segments, each consuming its own
			// separator, so "a.**.c" still matches "a.c".
			if i > 0 && !skipDot {
				b.WriteString(`\.`)
			}
			b.WriteString(`(?:[^.]+\.)*`)
			skipDot = true
			continue
		case seg == "*":
			if i > 0 && !skipDot {
				b.WriteString(`\.`)
			}
			b.WriteString(`[^.]+`)
		default:
			if i > 0 && !skipDot {
				b.WriteString(`\.`)
			}
			b.WriteString(regexp.QuoteMeta(seg))
		}
		skipDot = false
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}
	patternCache[pattern] = re
	return re, nil
}

// findPaths enumerates the concrete paths under root that match the pattern,
// in depth-first sorted-key order. Results are deduplicated: the deep
// wildcard reaches the same path through multiple recursion branches, and
// callers get each match once.
func findPaths(root Value, pattern string) []string {
	segs := collapseDeepWildcards(ParsePath(pattern))
	var out []string
	seen := make(map[string]struct{})
	record := func(p Path) {
		s := p.String()
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	discover(root, Path{}, segs, record)
	return out
}

// discover walks the tree in lock-step with the pattern segments.
func discover(node Value, at Path, segs []string, record func(Path)) {
	if len(segs) == 0 {
		record(at)
		return
	}
	if segs[0] == "**" {
		// Zero segments consumed: advance past the wildcard at this node.
		// Happens before the object check so a deep wildcard can end at a
		// scalar leaf.
		discover(node, at, segs[1:], record)
	}
	obj, ok := node.(Object)
	if !ok {
		return
	}
	switch seg := segs[0]; seg {
	case "*":
		for _, k := range obj.SortedKeys() {
			discover(obj[k], at.Child(k), segs[1:], record)
		}
	case "**":
		// One or more segments: consume a child, keep the wildcard in place.
		for _, k := range obj.SortedKeys() {
			discover(obj[k], at.Child(k), segs, record)
		}
	default:
		if child, present := obj[seg]; present {
			discover(child, at.Child(seg), segs[1:], record)
		}
	}
}
