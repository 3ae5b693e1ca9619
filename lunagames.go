// Package lunagames tracks the free games currently claimable on Amazon Luna.
// It fetches the claims page, extracts game titles from its unstable markup
// using an ordered chain of heuristics, and serves the result from a cached,
// periodically refreshed source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package lunagames
