package groove

import "errors"

// ErrInsufficientData is returned when a performance has too few notes for
// any extraction at all (fewer than 2). It is the only error a structurally
// valid performance can produce: every internal degeneracy (quantized
// timing, zero denominators, sparse swing evidence) resolves to a documented
// neutral value instead, so a successful invocation always yields a
// complete, well-typed result.
var ErrInsufficientData = errors.New("groove: insufficient note data")
