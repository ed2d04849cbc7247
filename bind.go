package cmdchain

// Dispatch appends a compute dispatch to c.
//
// c must have the same compatibility marker K in its compute pipeline and
// compute layout slots. Any other chain fails type inference:
//
//	c := cmdchain.BindComputePipeline(cmdchain.Begin(), blurPipeline)
//	c2 := cmdchain.BindComputeLayout(c, reduceLayout)
//	cmdchain.Dispatch(c2, uint32(64)) // does not compile
//
// dimensions is normalized with Dimensions.
func Dispatch[K, GP, GL, RP, RL any, I IndexElement, D DispatchSize](
	c Commands[K, K, GP, GL, RP, RL, I], dimensions D,
) Commands[K, K, GP, GL, RP, RL, I] {
	return Commands[K, K, GP, GL, RP, RL, I]{
		prev: c,
		step: dispatchStep{dims: Dimensions(dimensions)},
		n:    c.n + 1,
	}
}

// BindComputePipeline appends a compute pipeline bind to c. The returned
// chain's compute pipeline slot holds the pipeline's marker K; every other
// slot is unchanged.
func BindComputePipeline[K, CP, CL, GP, GL, RP, RL any, I IndexElement, P ComputePipeline[K]](
	c Commands[CP, CL, GP, GL, RP, RL, I], pipeline P,
) Commands[K, CL, GP, GL, RP, RL, I] {
	return Commands[K, CL, GP, GL, RP, RL, I]{
		prev: c,
		step: bindComputePipelineStep{pipeline: pipeline},
		n:    c.n + 1,
	}
}

// BindComputeLayout appends a descriptor-set bind for layout to c. The sets
// are bound at the compute bind point starting at layout.FirstSet(), with no
// dynamic offsets. The returned chain's compute layout slot holds the
// layout's marker K; every other slot is unchanged.
func BindComputeLayout[K, CP, CL, GP, GL, RP, RL any, I IndexElement, L ComputeLayout[K]](
	c Commands[CP, CL, GP, GL, RP, RL, I], layout L,
) Commands[CP, K, GP, GL, RP, RL, I] {
	return Commands[CP, K, GP, GL, RP, RL, I]{
		prev: c,
		step: bindComputeLayoutStep{layout: layout},
		n:    c.n + 1,
	}
}

// BindIndexBuffer appends an index buffer bind to c. The recorded index
// type is derived from the buffer's element type T, never passed
// separately. The returned chain's index slot holds T.
func BindIndexBuffer[T VertexIndex, CP, CL, GP, GL, RP, RL any, I IndexElement, B IndexBuffer[T]](
	c Commands[CP, CL, GP, GL, RP, RL, I], buffer B,
) Commands[CP, CL, GP, GL, RP, RL, T] {
	return Commands[CP, CL, GP, GL, RP, RL, T]{
		prev: c,
		step: bindIndexBufferStep{buffer: buffer, index: IndexTypeOf[T]()},
		n:    c.n + 1,
	}
}
