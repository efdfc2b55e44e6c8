// Package archive wraps an encoded save or CDR dump in a small container
// format: a one-byte method tag identifying how the payload was
// compressed, a little-endian uint32 giving the decompressed length,
// an xxHash64 checksum of the decompressed payload, and the compressed
// bytes themselves. This lets a .SAV, .MP, or CDR
// JSON/YAML dump be cached or transmitted without the caller needing
// to know in advance which codec produced it.
package archive
