// Package graph implements persistent inductive graphs: a directed,
// edge-labeled, node-labeled graph represented as a context attached to a
// strictly smaller graph, recursively down to the empty graph.
//
// # Representation
//
// A Graph is one of exactly two things: the empty graph (the zero value), or
// a head Context consed onto a tail Graph. The tail is immutable and shared
// structurally between graph values, so attaching or popping never invalidates
// a graph held elsewhere. The central invariant is that a context can always
// be peeled off leaving a smaller, still-valid graph: a context's adjacency
// lists only ever name nodes present in its tail, or the context's own node
// for self-loops. Attach enforces this at construction time.
//
// # Operations
//
// Construction is Attach (one context) or Build (a right fold of Attach over
// a context sequence). Decomposition is Pop (a named node's full context,
// gathered from every layer that mentions it) or PopAny (whatever is on top).
// UFold, GMap, Nodes, DFF and TopSort are all expressed through these two
// primitives; none of them mutates its input.
//
// Node identifiers are any cmp.Ordered type and must be unique within one
// graph value. Node and edge label types are free type parameters.
package graph
