package cmdchain

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// IndexType identifies the element width of an index buffer.
type IndexType uint8

const (
	// IndexTypeNone means no index data. Ray tracing geometry uses it for
	// non-indexed triangles; it is never valid for vertex indexing.
	IndexTypeNone IndexType = iota

	// IndexTypeUint8 uses 8-bit unsigned indices.
	IndexTypeUint8

	// IndexTypeUint16 uses 16-bit unsigned indices.
	IndexTypeUint16

	// IndexTypeUint32 uses 32-bit unsigned indices.
	IndexTypeUint32
)

var indexTypeNames = [...]string{
	IndexTypeNone:   "None",
	IndexTypeUint8:  "Uint8",
	IndexTypeUint16: "Uint16",
	IndexTypeUint32: "Uint32",
}

// String returns the index type name.
func (t IndexType) String() string {
	if int(t) < len(indexTypeNames) {
		return indexTypeNames[t]
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// Size returns the byte width of one index, or 0 for IndexTypeNone.
func (t IndexType) Size() uint64 {
	switch t {
	case IndexTypeUint8:
		return 1
	case IndexTypeUint16:
		return 2
	case IndexTypeUint32:
		return 4
	default:
		return 0
	}
}

// Format returns the WebGPU index format for t.
// WebGPU has no 8-bit or empty index format; those map to
// gputypes.IndexFormatUndefined and a HAL recorder rejects them.
func (t IndexType) Format() gputypes.IndexFormat {
	switch t {
	case IndexTypeUint16:
		return gputypes.IndexFormatUint16
	case IndexTypeUint32:
		return gputypes.IndexFormatUint32
	default:
		return gputypes.IndexFormatUndefined
	}
}

// NoIndex is the index element type of a chain with no index buffer bound.
type NoIndex struct{}

// IndexElement is the closed set of types that can occupy a chain's index slot.
type IndexElement interface {
	NoIndex | uint8 | uint16 | uint32
}

// VertexIndex is the closed set of element types an index buffer can hold.
type VertexIndex interface {
	uint8 | uint16 | uint32
}

// IndexTypeOf returns the index type tag for the element type T.
//
//	cmdchain.IndexTypeOf[uint16]() // IndexTypeUint16
func IndexTypeOf[T IndexElement]() IndexType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return IndexTypeUint8
	case uint16:
		return IndexTypeUint16
	case uint32:
		return IndexTypeUint32
	default:
		return IndexTypeNone
	}
}
