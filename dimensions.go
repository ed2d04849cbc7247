package cmdchain

// DispatchSize is the set of values accepted as dispatch dimensions: a bare
// workgroup count or a fixed-size array of one, two or three counts.
//
// Untyped constants default to int, so scalar counts must be converted
// explicitly:
//
//	cmdchain.Dispatch(c, uint32(64))
//	cmdchain.Dispatch(c, [2]uint32{16, 16})
type DispatchSize interface {
	uint32 | [1]uint32 | [2]uint32 | [3]uint32
}

// Dimensions normalizes d into an (x, y, z) workgroup triple.
// Omitted trailing dimensions are 1.
func Dimensions[D DispatchSize](d D) [3]uint32 {
	switch v := any(d).(type) {
	case uint32:
		return [3]uint32{v, 1, 1}
	case [1]uint32:
		return [3]uint32{v[0], 1, 1}
	case [2]uint32:
		return [3]uint32{v[0], v[1], 1}
	case [3]uint32:
		return v
	}
	// DispatchSize has no ~ terms, so the switch above is exhaustive.
	panic("cmdchain: unreachable dispatch size")
}
