// Package review infers the file-naming convention shared by a set of
// loaded image files and uses it to discover and step through every other
// file-set in the same directory following that convention.
//
// The flow, driven synchronously by the host one call per user action:
//
//   - Extract derives the shared radix (the stable literal/numeric part of
//     the filenames) and each file's remainder from the loaded paths.
//   - BuildPatternSet turns each remainder into an editable regex with a
//     single capture group carrying the radix.
//   - Scan applies the slot patterns to a directory listing and returns
//     every qualifying radix in natural order.
//   - ResolveSet deterministically picks one concrete file per slot for a
//     radix, leaving unmatched slots empty.
//   - Navigator owns the active session (pattern set, discovered radixes,
//     current position) and exposes activate, navigate, refresh, recompute
//     and deactivate on top of the pieces above.
//
// Every operation either fully succeeds, replacing session state, or fully
// fails leaving the prior session untouched, so the host never observes a
// partially updated session.
package review
