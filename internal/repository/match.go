package repository

// MatchMode selects how email lookups compare values. MatchFold is the
// default case-insensitive comparison; MatchExact is the stricter fallback
// used when the folded query is rejected by the backend's policy layer.
type MatchMode int

const (
	MatchFold MatchMode = iota
	MatchExact
)
