// Package domain defines the core business entities for reposcout.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types of the query/filter/sort pipeline:
//
//   - RepoResult: One normalised repository search hit
//   - FilterStore: Facet selection state (category -> value -> selected)
//   - SortCriterion: The two descending orderings of a result set
//   - QueryTransaction: Lifecycle of one outstanding search request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse. The only external import is google/uuid for
// transaction identifiers.
package domain
