package parsekit

// PairContainer holds the two values a Pair or SeparatedPair parser
// produces. Grounded on oleiade/gomme's containers.go, carried over
// unchanged since a concrete (non-generic) pair type works just as
// well against any-valued graph nodes.
type PairContainer struct {
	Left  any
	Right any
}

// Pair applies left then right in sequence and succeeds with a
// PairContainer of their two values.
//
// Grounded on oleiade/gomme's sequence.go Pair, rebuilt on Sequence +
// Map instead of a bespoke closure.
func Pair(left, right Parser) Parser {
	return newSequence(left, right).Map(func(v any) any {
		pair := v.([]any)
		return PairContainer{Left: pair[0], Right: pair[1]}
	})
}

// SeparatedPair applies left, then sep (discarded), then right,
// succeeding with a PairContainer of left's and right's values.
func SeparatedPair(left, sep, right Parser) Parser {
	return newSequence(left, sep, right).Map(func(v any) any {
		parts := v.([]any)
		return PairContainer{Left: parts[0], Right: parts[2]}
	})
}

// Preceded discards prefix's value and returns inner's.
func Preceded(prefix, inner Parser) Parser {
	return newSequence(prefix, inner).Pick(1)
}

// Terminated discards suffix's value and returns inner's.
func Terminated(inner, suffix Parser) Parser {
	return newSequence(inner, suffix).Pick(0)
}

// Delimited discards prefix's and suffix's values and returns inner's.
func Delimited(prefix, inner, suffix Parser) Parser {
	return newSequence(prefix, inner, suffix).Pick(1)
}
