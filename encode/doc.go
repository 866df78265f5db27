// Package encode writes span trees back out as JSON.
//
// # Usage
//
//	tree, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	// compact
//	err = encode.Encode(tree, os.Stdout)
//
//	// indented and colored
//	err = encode.Encode(tree, os.Stdout, encode.Indent(2), encode.EncodeColors(encode.NewColors()))
//
// Names, strings and primitives are copied from the source buffer as
// written, escapes included, so the output parses to a tree with the same
// content as the input.
//
// # Related Packages
//
//   - github.com/signadot/jspan/ir - the span tree
//   - github.com/signadot/jspan/parse - parse JSON text to span trees
package encode
