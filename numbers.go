package parsekit

import "strconv"

// Integer parses an optional leading '-' followed by one or more
// decimal digits, into an int64.
func Integer() Parser {
	digits := Digit().Plus().Flatten()
	signed := Char('-').Optional("").Seq(digits).Flatten()

	return signed.Map(func(v any) any {
		n, _ := strconv.ParseInt(v.(string), 10, 64)
		return n
	})
}

// Number finishes the teacher library's commented-out Float stub:
// an optional leading '-', one or more digits, and an optional
// '.' followed by one or more digits, parsed into a float64. A number
// with no decimal part still parses as a float64, exactly as the
// original intended.
func Number() Parser {
	digits := Digit().Plus().Flatten()
	fraction := Char('.').Seq(digits).Flatten().Optional("")
	signed := Char('-').Optional("").Seq(digits).Seq(fraction).Flatten()

	return signed.Map(func(v any) any {
		f, _ := strconv.ParseFloat(v.(string), 64)
		return f
	})
}
