// Package export converts tensor expressions into flat numeric arrays for
// host environments that keep data as dense, typed buffers with their own
// subscript-to-offset convention, and stores those arrays in a checksummed
// container.
//
// An Array carries a rank, per-axis extents, an element Class and
// little-endian element bytes. Complex element types are split into
// separate real and imaginary buffers.
//
// Container format:
//
//	[4]byte  magic "TXPR"
//	uint32   format version
//	uint32   flags (compression)
//	uint64   header size
//	[]byte   JSON header
//	[32]byte SHA-256 of the uncompressed payload
//	[]byte   payload: real bytes followed by imaginary bytes
//
// All integers are little-endian.
package export
