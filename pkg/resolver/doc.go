// Package resolver selects the CollectorItems a dashboard evaluation should
// read.
//
// A dashboard points at a Component, and the Component lists the ids of the
// CollectorItems it owns per CollectorType. Those embedded entries are only
// an index: every operation re-reads the items from the CollectorItemStore
// and filters the fresh records.
//
// Strategies:
//
//   - ResolveByType: every item of a type on the first widget's component.
//   - ResolveNextGenByType: same, using the application's first component.
//   - ResolveByAltIdentifier: items whose alternate identifier matches,
//     ignoring case.
//   - ResolveByIdentifierName: items whose artifactName option matches,
//     ignoring case, falling back to ResolveByAltIdentifier.
//   - ResolveByTestType: items whose testType option matches exactly.
//
// Results are never nil; "nothing found" is an empty slice. Resolve picks a
// strategy from a Query and is what the HTTP handler and CLI use.
package resolver
