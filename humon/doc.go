// Package humon converts humon text to JSON.
//
// Humon is JSON without punctuation: members are written as `name value`,
// elements are separated by whitespace, and strings which hold no
// whitespace, quotes, backslashes or brackets may be written bare.
//
//	name alice
//	tags [admin "on call"]
//	limits {
//		cpu 2
//		mem 512Mi
//	}
//
// A document is an object whose braces are left out, unless it starts with
// '{' or '[' or is a single value.
package humon
