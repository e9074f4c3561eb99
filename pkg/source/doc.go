// Package source provides implementations of the layout source: the
// single upstream call that supplies the window dimensions and the
// client-measured layout records a computation starts from.
//
// Available sources:
//   - [Static]: serves a snapshot already in memory (tests, embedded scene
//     reports)
//   - [File]: reads a snapshot JSON file written earlier
//   - [HTTP]: pulls the snapshot from a running rendering client's debug
//     endpoint, with retry/backoff on transient failures
//   - [Recorded]: wraps another source and records fetched snapshots in a
//     [snapshot.Store] for offline replay
package source
