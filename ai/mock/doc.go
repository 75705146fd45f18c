// Package mock provides test doubles for the ai interfaces.
//
// The mocks are deterministic by default (FNV-hashed unit vectors, empty
// lemma lists) and support behavior injection via exported function fields.
package mock
