// Package source loads a haystack buffer from a capture file, sniffing
// its leading bytes for a known compression container (gzip, zstd) and
// transparently decompressing before the scanner ever sees it. Callers
// that already know their file uses a block-oriented codec with no
// self-describing magic (S2, LZ4) select it explicitly.
package source
