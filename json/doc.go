// Package json is a thin facade over [sonic] used to read option mappings
// and to write results as JSON.
package json
