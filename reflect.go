package parsekit

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// AllParsers returns every node reachable from root, each visited
// exactly once, in depth-first order. root is always included.
//
// Grounded on spec.md §4.5's "depth-first traversal, seen-set keyed by
// node identity"; the stack itself is github.com/emirpasic/gods's
// arraystack, the same treeset/stack family this package already
// draws on for CharMatcher's code-point sets.
func AllParsers(root Parser) []Parser {
	if root == nil {
		return nil
	}

	seen := make(map[Parser]bool)
	var order []Parser

	stack := arraystack.New()
	stack.Push(root)
	seen[root] = true

	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(Parser)
		order = append(order, n)

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c == nil || seen[c] {
				continue
			}
			seen[c] = true
			stack.Push(c)
		}
	}

	return order
}

// Transform rebuilds the graph reachable from root by applying f to a
// Copy of every reachable node, then rewiring every child pointer in
// the new graph from old node identities to their replacements. The
// original graph is left untouched.
func Transform(root Parser, f func(Parser) Parser) Parser {
	if root == nil {
		return nil
	}

	originals := AllParsers(root)
	mapping := make(map[Parser]Parser, len(originals))
	for _, n := range originals {
		mapping[n] = f(n.Copy())
	}

	for {
		changed := false
		for _, replaced := range AllParsers(mapping[root]) {
			if _, original := mapping[replaced]; original {
				continue
			}
			for _, child := range replaced.Children() {
				if target, ok := mapping[child]; ok && target != child {
					replaced.Replace(child, target)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return mapping[root]
}

// ultimateSetableTarget follows a chain of Setable indirections to its
// final non-Setable target, per spec.md §4.5. A Setable chain that
// cycles back to its own start is left in place rather than looped
// over forever.
func ultimateSetableTarget(p Parser) Parser {
	visited := map[Parser]bool{}
	cur := p
	for {
		s, ok := cur.(*SetableParser)
		if !ok {
			return cur
		}
		if visited[s] {
			return s
		}
		visited[s] = true
		if s.target == nil {
			return s
		}
		cur = s.target
	}
}

// RemoveSetables rewrites every child pointer reachable from root to
// skip over Setable indirections, then returns the ultimate target of
// root itself.
func RemoveSetables(root Parser) Parser {
	if root == nil {
		return nil
	}

	for _, n := range AllParsers(root) {
		for _, child := range n.Children() {
			target := ultimateSetableTarget(child)
			if target != child {
				n.Replace(child, target)
			}
		}
	}

	return ultimateSetableTarget(root)
}

// structuralDigest produces a cheap, collision-tolerant prefilter key
// for a node's scalar configuration, used to avoid an O(n^2) full
// Match comparison against every canonical candidate. Two nodes with
// different digests are never structurally equal; nodes sharing a
// digest still go through the authoritative Match check.
//
// Grounded on github.com/cnf/structhash, one of the pack's few hashing
// libraries with no domain-specific baggage.
func structuralDigest(p Parser) string {
	digest, err := structhash.Hash(p.String(), 1)
	if err != nil {
		return p.String()
	}
	return digest
}

// RemoveDuplicates rewrites every child pointer reachable from root so
// that structurally-equal (but not identity-equal) children collapse
// onto a single canonical representative.
func RemoveDuplicates(root Parser) Parser {
	if root == nil {
		return nil
	}

	canonicalsByDigest := make(map[string][]Parser)

	canonicalFor := func(p Parser) Parser {
		digest := structuralDigest(p)
		for _, c := range canonicalsByDigest[digest] {
			if c == p {
				return c
			}
			if c.Match(p, map[NodePair]bool{}) {
				return c
			}
		}
		canonicalsByDigest[digest] = append(canonicalsByDigest[digest], p)
		return p
	}

	for _, n := range AllParsers(root) {
		for _, child := range n.Children() {
			if canonical := canonicalFor(child); canonical != child {
				n.Replace(child, canonical)
			}
		}
	}

	return canonicalFor(root)
}
