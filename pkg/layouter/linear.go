package layouter

import "github.com/drodenkirchen/rio/pkg/errors"

// span is one child's placement on a linear container's major axis,
// relative to the container's inner origin.
type span struct {
	start float64
	size  float64
}

// linearNatural computes a linear container's natural size on its major
// axis: the children's requested outer sizes plus the spacing between
// consecutive children.
func linearNatural(childSizes []float64, spacing float64) float64 {
	if len(childSizes) == 0 {
		return 0
	}

	result := spacing * float64(len(childSizes)-1)
	for _, size := range childSizes {
		result += size
	}
	return result
}

// linearAllocate places each child of a linear container on the major
// axis: sequentially, each granted exactly its requested outer size,
// advancing by size plus spacing. Space left over after the last child is
// currently left unused; there is no grow/shrink distribution.
//
// Explicit proportions are recognized by the data model but have no
// distribution algorithm; requesting them fails rather than silently
// approximating.
func linearAllocate(childSizes []float64, spacing float64, proportions []float64) ([]span, error) {
	if proportions != nil {
		return nil, errors.New(errors.ErrCodeUnsupportedProportions,
			"proportional space distribution in linear containers is not implemented")
	}

	spans := make([]span, len(childSizes))
	cursor := 0.0
	for i, size := range childSizes {
		spans[i] = span{start: cursor, size: size}
		cursor += size + spacing
	}
	return spans, nil
}
