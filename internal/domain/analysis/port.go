package analysis

import "context"

// Generator port: item description in, raw model text out. Implementations
// wrap a hosted generative-text service (or a canned stand-in) and own their
// prompt construction.
type Generator interface {
	Generate(ctx context.Context, item string) (string, error)
}

// TranscriptStore port for archiving raw model output that failed
// sanitization, keyed per request. Diagnostics only, never user-facing.
type TranscriptStore interface {
	Archive(ctx context.Context, key string, raw []byte) (string, error)
}
