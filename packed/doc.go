// Package packed implements the three small value wrappers the legacy
// save format packs its scalar data with: a fixed-width ASCII string,
// an opaque fixed-width byte blob, and an unsigned integer constrained
// to a fixed number of low bits. Each provides a string form, a binary
// form, and a CDR (canonical data representation) form.
package packed
