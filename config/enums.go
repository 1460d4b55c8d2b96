package config

// Treatment of combinator text which is not a CSS combinator.
// ENUM(permissive, strict)
type CombinatorPolicy int
