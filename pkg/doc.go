// Package pkg provides the core libraries for server-side UI layout
// validation.
//
// # Overview
//
// A rendering client (browser, native shell) measures how it actually laid
// out a UI component tree and reports those measurements back. The
// libraries here recompute the same layout from scratch, authoritative and
// deterministic, and compare the two results field by field. The pkg
// directory is organized into these areas:
//
//  1. [component] - The component tree data model and traversal
//  2. [layouter] - The two-pass constraint layout computation and diffing
//  3. [scene] - TOML scene fixtures describing trees and client reports
//  4. [source] - Snapshot acquisition (static, file, HTTP, recorded)
//  5. [snapshot] - Persistence for recorded client snapshots
//  6. [export] - JSON, SVG, Graphviz, and text output of finished runs
//
// # Architecture
//
// The typical data flow:
//
//	Scene file / live client
//	         ↓
//	    [component] package (build the tree)
//	         ↓
//	    [source] package (fetch the measured snapshot)
//	         ↓
//	    [layouter] package (compute the authoritative layout, diff)
//	         ↓
//	    [export] package (JSON/SVG/DOT/text artifacts)
//
// # Quick Start
//
// Compute a layout and compare it with the client report:
//
//	import (
//	    "context"
//	    "github.com/drodenkirchen/rio/pkg/layouter"
//	    "github.com/drodenkirchen/rio/pkg/scene"
//	    "github.com/drodenkirchen/rio/pkg/source"
//	)
//
//	// 1. Load the scene and build the component tree
//	sc, _ := scene.Load("login.toml")
//	root, _ := sc.Build()
//
//	// 2. Point at the client-measured snapshot
//	src, _ := source.NewHTTP("http://localhost:8000")
//
//	// 3. Compute the authoritative layout
//	ly, _ := layouter.New(context.Background(), root, src)
//
//	// 4. Compare
//	mismatches := ly.Diff(0.1)
//
// Supporting packages: [errors] for coded errors, [observability] for
// instrumentation hooks, [buildinfo] for version stamping.
package pkg
