// Package config holds the gateway configuration model: a GraphQL schema of
// types, fields and arguments, per-field resolution steps, and the operations
// that combine and normalize configurations.
//
// Config values are immutable by convention. Every operation (the WithX
// builders, MergeRight, Compress) returns a new value and never mutates its
// receiver, so values can be shared freely across goroutines without
// coordination.
package config
