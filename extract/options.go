package extract

import "log/slog"

// DefaultMaxDepth bounds recursive bulk extraction. Exceeding the bound
// yields an empty partial result for that subtree, never an error.
const DefaultMaxDepth = 100

// Options configures composite extractors. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// IncludeLocations attaches SourceLocations to composite records when
	// the originating nodes carry position metadata.
	IncludeLocations bool

	// IncludePatterns requests deep decomposition of clause patterns into
	// Pattern records. Clause records hold raw pattern nodes by default;
	// eager decomposition is work many callers do not need.
	IncludePatterns bool

	// MaxDepth caps recursive bulk extraction. Zero means DefaultMaxDepth.
	MaxDepth int

	// ParentModule is the enclosing module's name segments, supplied when
	// the caller recurses into a nested module it discovered earlier.
	ParentModule []string

	// Logger receives best-effort diagnostics for malformed input.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used when a caller has no opinion.
func DefaultOptions() Options {
	return Options{
		IncludeLocations: true,
		MaxDepth:         DefaultMaxDepth,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}
