// Package format writes listings of span trees and token streams.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = format.Dump(tree, os.Stdout, f)
//
// The text format is an indented listing meant for reading; json and yaml
// marshal one [Entry] per node for consumption by other tools.
//
// # Related Packages
//
//   - github.com/signadot/jspan/ir - the span tree
//   - github.com/signadot/jspan/encode - re-encode a tree as JSON
package format
