package blockform

// analyzeOptions holds configuration for a reconstruction run.
type analyzeOptions struct {
	// normalize applies NFC normalization to all resolved text.
	normalize bool

	// concurrent runs the line, table, and form passes on separate
	// goroutines. Output is identical to the sequential path.
	concurrent bool
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() analyzeOptions {
	return analyzeOptions{
		normalize:  false,
		concurrent: false,
	}
}

// clone creates a copy of analyzeOptions.
func (o analyzeOptions) clone() analyzeOptions {
	return analyzeOptions{
		normalize:  o.normalize,
		concurrent: o.concurrent,
	}
}
