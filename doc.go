// Package enceladus is an in-memory playground of classic data structures:
// lists, maps, sets, stacks, queues, priority queues, graphs and trees,
// together with the elementary algorithms that consume them.
//
// 🚀 What is enceladus?
//
//	A small, generic, capability-driven library that brings together:
//		• Capability contracts: List, Map, Graph, Set, Stack, Queue, PriorityQueue, Tree
//		• Hash map: separate chaining with occupancy-driven rehashing
//		• Graph: labeled multigraph over a dense adjacency matrix
//		• Sorting: bubble sort and insertion sort over any List
//		• Traversal: BFS and DFS over any Graph
//
// ✨ Why choose enceladus?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – every structure implements a core capability interface
//   - Deterministic – sentinel errors, no panics on user input, no hidden state
//   - Generic – type parameters throughout, no interface{} round-trips
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/      - capability interfaces, id types and sentinel errors
//	arraylist/ - slice-backed List
//	hashmap/   - separate-chaining Map with dynamic growth
//	adjmat/    - adjacency-matrix Graph (multi-edges, self-loops)
//	sorting/   - bubble sort & insertion sort over List
//	stack/     - list-backed Stack
//	queue/     - list-backed Queue
//	set/       - hashmap-backed Set
//	heap/      - binary-heap PriorityQueue
//	tree/      - Tree capability & ArrayTree
//	traverse/  - BFS & DFS over any Graph
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square: four vertices, four edges, every degree equal to 2.
//
// All structures assume exclusive-owner access per operation; callers that
// need concurrent use must add their own synchronization.
//
//	go get github.com/jmcph4/enceladus
package enceladus
