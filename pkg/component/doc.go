// Package component models the read-only surface of a UI component tree
// that layout computation needs: stable identifiers, a kind tag selecting
// the layout behavior, explicit size constraints, margins, alignment, and
// ordered child iteration.
//
// The tree itself is owned elsewhere (typically by a running app session or
// a scene fixture); this package never mutates it. Two shapes of children
// exist and are iterated transparently via [TreeChildren]:
//
//   - primitive components own an ordered list of direct children
//   - composite components are defined by a build function and contribute a
//     single child, their build result
//
// [Walk] produces the parents-before-children ordering both layout passes
// are sequenced by.
package component
