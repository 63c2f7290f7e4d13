package core

// Span is a half-open index range [Start, End) into a flat array.
type Span struct {
	Start int
	End   int
}

// Len returns the number of entries covered by the span.
func (s Span) Len() int { return s.End - s.Start }
