package element

import (
	"fmt"

	"github.com/hupe1980/flattree/internal/conv"
)

// Number is the set of numeric types usable as scalar elements or tuple fields.
type Number = conv.Number

// Kind converts between child counts and element values.
// Implementations must be safe for concurrent use.
type Kind[T comparable] interface {
	// Marker returns count stored as a T.
	Marker(count uint64) (T, error)
	// Count recovers a count stored by Marker.
	Count(v T) (uint64, error)
}

// Scalar is the Kind for plain numeric element types.
type Scalar[T Number] struct{}

// Marker implements Kind.
func (Scalar[T]) Marker(count uint64) (T, error) { return conv.FromUint64[T](count) }

// Count implements Kind.
func (Scalar[T]) Count(v T) (uint64, error) { return conv.ToUint64(v) }

// Pair is a two-field tuple element. Equality is field-wise.
type Pair[A, B Number] struct {
	First  A `json:"first"`
	Second B `json:"second"`
}

// MakePair returns Pair{a, b}.
func MakePair[A, B Number](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// PairKind is the Kind for Pair elements.
type PairKind[A, B Number] struct{}

// Marker implements Kind. Every field is set to count.
func (PairKind[A, B]) Marker(count uint64) (Pair[A, B], error) {
	a, err := conv.FromUint64[A](count)
	if err != nil {
		return Pair[A, B]{}, fmt.Errorf("first field: %w", err)
	}
	b, err := conv.FromUint64[B](count)
	if err != nil {
		return Pair[A, B]{}, fmt.Errorf("second field: %w", err)
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// Count implements Kind.
func (PairKind[A, B]) Count(v Pair[A, B]) (uint64, error) {
	n, err := conv.ToUint64(v.First)
	if err != nil {
		return 0, err
	}
	m, err := conv.ToUint64(v.Second)
	if err != nil || m != n {
		return 0, fmt.Errorf("inconsistent count marker %v", v)
	}
	return n, nil
}

// Triple is a three-field tuple element. Equality is field-wise.
type Triple[A, B, C Number] struct {
	First  A `json:"first"`
	Second B `json:"second"`
	Third  C `json:"third"`
}

// MakeTriple returns Triple{a, b, c}.
func MakeTriple[A, B, C Number](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// TripleKind is the Kind for Triple elements.
type TripleKind[A, B, C Number] struct{}

// Marker implements Kind. Every field is set to count.
func (TripleKind[A, B, C]) Marker(count uint64) (Triple[A, B, C], error) {
	p, err := PairKind[A, B]{}.Marker(count)
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	c, err := conv.FromUint64[C](count)
	if err != nil {
		return Triple[A, B, C]{}, fmt.Errorf("third field: %w", err)
	}
	return Triple[A, B, C]{First: p.First, Second: p.Second, Third: c}, nil
}

// Count implements Kind.
func (TripleKind[A, B, C]) Count(v Triple[A, B, C]) (uint64, error) {
	n, err := PairKind[A, B]{}.Count(Pair[A, B]{First: v.First, Second: v.Second})
	if err != nil {
		return 0, fmt.Errorf("inconsistent count marker %v", v)
	}
	m, err := conv.ToUint64(v.Third)
	if err != nil || m != n {
		return 0, fmt.Errorf("inconsistent count marker %v", v)
	}
	return n, nil
}
