// Package trigon is an in-memory toolkit for a classic combinatorial-geometry
// problem: given a planar diagram cut into small valued faces, plus the list
// of straight lines its vertices lie on, find every way of merging adjacent
// faces into a larger region whose outline is a triangle — and total up the
// values of all such triangular regions.
//
// 🚀 What is trigon?
//
//	A pure, deterministic library that brings together:
//		• region     — immutable base regions, straight lines, sorted id-sets
//		• collinear  — the vertex/line index answering "is B between A and C?"
//		• dual       — the face-adjacency graph (faces sharing a boundary edge)
//		• boundary   — union outlines via directed-edge cancellation + corner merging
//		• triangles  — the enumerator walking every connected face subset exactly once
//		• report     — plain-text (optionally colored) result listings
//
// ✨ Why trigon?
//
//   - Purely topological – no coordinates, no floating point, no geometry inference
//   - Deterministic – canonical id-set keys and ring rotations, stable output order
//   - Defensive – fail-fast validation of malformed or overlapping input faces
//   - Extensible – context cancellation, subset-size bounds, per-triangle hooks
//
// Quick ASCII example:
//
//	        1
//	       /│\
//	      2─8─7
//	     /│ │ │\
//	    3─9─10─6─5      (cevians make 9 small faces; 22 merged triangles hide here)
//
// Dive into examples/ for the fully worked 9-face puzzle and the package docs
// for per-component contracts, complexity, and error taxonomies.
package trigon
