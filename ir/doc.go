// Package ir provides the token tree produced by the parser.
//
// # Overview
//
// A [Tree] is an arena of [Node] values addressed by [NodeID]. Nodes refer
// to each other by index (parent, first child, next sibling) and to the
// source buffer by [Span]. No bytes of the source are copied: [Tree.Name]
// and [Tree.Value] return subslices of the buffer the tree was parsed from,
// which must therefore stay unmodified for the lifetime of the tree.
//
// # Node Kinds
//
//   - [ObjectKind]: children are members, each carrying a name span (its key)
//   - [ArrayKind]: children are elements, none carry a name span
//   - [StringKind]: the value span excludes the quotes; escapes are not decoded
//   - [PrimitiveKind]: numbers, true, false and null, uninterpreted
//
// # Construction
//
// Trees are built with a [Builder]. The builder owns every node until
// [Builder.Tree] hands them over as a unit; a builder that is dropped takes
// its partial structure with it.
//
// # Paths
//
// [ParsePath] reads paths such as `$.a[1].'b.c'` which [Tree.GetPath] and
// [Tree.ListPath] resolve against a tree. Field names are compared with the
// raw name bytes, escapes included.
package ir
