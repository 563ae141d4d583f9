package field

// Bounds adds min/max range checking to a field type. Either bound may be
// absent (nil), a literal, or a func() any producer re-evaluated on every
// validation call, which supports dynamically changing limits.
//
// The range check uses strict inequality: a value equal to either bound
// passes; a value strictly below Min or strictly above Max fails.
type Bounds struct {
	Min any
	Max any
}

// MinValue resolves the lower bound, invoking it if it is a producer.
func (b Bounds) MinValue() any { return resolve(b.Min) }

// MaxValue resolves the upper bound, invoking it if it is a producer.
func (b Bounds) MaxValue() any { return resolve(b.Max) }
