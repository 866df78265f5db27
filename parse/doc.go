// Package parse parses JSON text into span trees.
//
// # Usage
//
//	// Parse a buffer
//	tree, err := parse.Parse([]byte(`{"name": "alice", "tags": [1, 2]}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse the first n bytes of a buffer
//	tree, err := parse.ParseN(buf, n)
//
//	// Parse with options
//	tree, err := parse.Parse(data, parse.MaxDepth(64), parse.AllowTrailing())
//
// The returned tree refers to the input by offsets; nothing is copied and
// primitives are not converted. On failure no tree is returned and the
// error is a *[Error] carrying an [ErrorKind] and the position of the
// failure.
//
// # Related Packages
//
//   - github.com/signadot/jspan/ir - the span tree
//   - github.com/signadot/jspan/token - tokenization
//   - github.com/signadot/jspan/encode - re-encode a tree as JSON
package parse
