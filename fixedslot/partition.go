package fixedslot

import (
	"fmt"

	"github.com/hupe1980/flattree/core"
)

// Partition splits values[1:len-1] into levels.
//
// The first span holds maxChildren slots for the root. Every following span
// holds maxChildren slots for each non-sentinel value of the previous span.
// The returned spans do not include the root level.
func Partition[T comparable](values []T, sentinel T, maxChildren int) ([]core.Span, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: %d values, need at least 2", core.ErrCorrupt, len(values))
	}
	if maxChildren < 0 {
		return nil, fmt.Errorf("%w: negative max children %d", core.ErrCorrupt, maxChildren)
	}

	end := len(values) - 1
	pos := 1
	parents := 1

	var spans []core.Span
	for size := parents * maxChildren; size > 0; size = parents * maxChildren {
		if size > end-pos {
			return nil, fmt.Errorf("%w: level %d needs %d slots, %d left", core.ErrCorrupt, len(spans)+1, size, end-pos)
		}
		span := core.Span{Start: pos, End: pos + size}
		spans = append(spans, span)

		parents = 0
		for _, v := range values[span.Start:span.End] {
			if v != sentinel {
				parents++
			}
		}
		pos = span.End
	}

	if pos != end {
		return nil, fmt.Errorf("%w: levels end at %d, marker at %d", core.ErrCorrupt, pos, end)
	}
	return spans, nil
}
