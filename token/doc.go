// Package token provides lexical analysis of JSON text.
//
// A [Lexer] produces one [Token] per call to [Lexer.Next] from a byte buffer
// of explicit length. Tokens are spans into that buffer; nothing is copied or
// decoded. String tokens exclude their quotes and keep escapes as written.
//
// [Stream] wraps a Lexer with one token of lookahead, which is what the
// parser consumes.
//
// [Tokenize] is a function for tokenizing a whole buffer at once.
package token
