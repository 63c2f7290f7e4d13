package core

import "fmt"

// Variant selects the flat layout used to encode a tree.
type Variant uint8

const (
	// VariantAuto picks FixedSlot or Bitmap from the tree's fan-out.
	VariantAuto Variant = iota
	// VariantFixedSlot reserves maxChildren slots per node, padded with a sentinel.
	VariantFixedSlot
	// VariantBitmap stores one existence bit per slot and packs values densely.
	VariantBitmap
	// VariantCompact stores breadth-first values and cumulative child offsets.
	VariantCompact
)

func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantFixedSlot:
		return "fixed-slot"
	case VariantBitmap:
		return "bitmap"
	case VariantCompact:
		return "compact"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant parses the textual form produced by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "auto", "":
		return VariantAuto, nil
	case "fixed-slot", "fixedslot", "fixed":
		return VariantFixedSlot, nil
	case "bitmap", "lots-of-children":
		return VariantBitmap, nil
	case "compact":
		return VariantCompact, nil
	default:
		return VariantAuto, NewConfigError("variant", fmt.Errorf("unknown variant %q", s))
	}
}
