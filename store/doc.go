// Package store holds the in-memory user and task repositories.
//
// Both stores are safe for concurrent use. Every operation runs inside a
// single critical section of the store's lock, so operations on the same key
// are linearizable and a user rename is never observable half-done. Records
// are kept and handed out by value; callers cannot reach the maps.
//
// Operations report their outcome through Result, never through panics:
// validation failures come back as KindInvalid with a *ValidationError whose
// message is meant to be shown to the client verbatim.
package store
