// Package binio provides a stateful cursor over a byte buffer or file,
// supporting typed reads and writes of the odd integer widths (1, 2, 3,
// 4, 6 and 8 bytes) that the legacy Colonization save format packs its
// records with.
//
// There are two cursor backends: MemCursor wraps an externally owned
// byte slice and FileCursor wraps an *os.File. Both satisfy the same
// Cursor interface, so schema codecs are written once against Cursor
// and work unmodified against either backend.
//
// Every operation fails softly: a short read or write returns false
// rather than panicking or returning an error value, mirroring the
// legacy format's own "boolean success" binary codec contract.
package binio
