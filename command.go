package cmdchain

// Builder is the type-erased form of a chain. Every Commands instantiation
// implements it, so chains in different type states can be stored side by
// side:
//
//	passes := []cmdchain.Builder{blurChain, reduceChain}
//	for _, p := range passes {
//	    if err := p.Build(rec); err != nil {
//	        return err
//	    }
//	}
type Builder interface {
	// Build records every action of the chain into r, in append order.
	Build(r Recorder) error
}

// Commands is a chain of recording actions.
//
// The type parameters track what the chain has bound so far, per pipeline
// domain:
//
//	CP, CL  compute pipeline and layout compatibility markers
//	GP, GL  graphics pipeline and layout markers
//	RP, RL  ray tracing pipeline and layout markers
//	I       index buffer element type
//
// Each builder function (Dispatch, BindComputePipeline, BindComputeLayout,
// BindIndexBuffer) wraps the chain it is given in a new node and returns it
// with the affected slot updated. Dispatch only accepts chains whose CP and
// CL are the same type, so a dispatch against a mismatched or missing layout
// does not compile.
//
// A chain is an immutable recipe: Build records it and may be called any
// number of times. The zero value is an empty chain.
type Commands[CP, CL, GP, GL, RP, RL any, I IndexElement] struct {
	prev Builder
	step step
	n    int
}

// Root is the type state of a chain with nothing bound.
type Root = Commands[Unbound, Unbound, Unbound, Unbound, Unbound, Unbound, NoIndex]

// Begin returns an empty chain.
func Begin() Root {
	return Root{}
}

// From returns a chain that records root before any action appended to it.
// root is opaque: its binds do not update the returned chain's slots.
// If root has a Steps method its actions are listed by Steps and count
// towards Len and step indices.
func From(root Builder) Root {
	c := Root{prev: root}
	if s, ok := root.(stepLister); ok {
		c.n = len(s.Steps())
	}
	return c
}

// Build records every action of the chain into r: first the wrapped chain,
// then this node's own action. It returns a *RecordError for the first
// primitive r rejects and records nothing after it.
func (c Commands[CP, CL, GP, GL, RP, RL, I]) Build(r Recorder) error {
	if c.prev != nil {
		if err := c.prev.Build(r); err != nil {
			return err
		}
	}
	if c.step == nil {
		return nil
	}

	index := c.n - 1
	kind := c.step.kind()
	if err := c.step.record(r); err != nil {
		Logger().Warn("cmdchain: recorder rejected step",
			"index", index, "step", kind.String(), "err", err)
		return &RecordError{Index: index, Step: kind, Err: err}
	}
	Logger().Debug("cmdchain: recorded step", "index", index, "step", kind.String())
	return nil
}

// Len returns the number of actions in the chain. It always equals
// len(c.Steps()).
func (c Commands[CP, CL, GP, GL, RP, RL, I]) Len() int {
	return c.n
}

// Steps returns the kinds of the chain's actions in append order.
// Actions of a root passed to From are listed only if the root has a Steps
// method.
func (c Commands[CP, CL, GP, GL, RP, RL, I]) Steps() []StepKind {
	return c.appendSteps(make([]StepKind, 0, c.n))
}

type stepAppender interface {
	appendSteps(dst []StepKind) []StepKind
}

type stepLister interface {
	Steps() []StepKind
}

func (c Commands[CP, CL, GP, GL, RP, RL, I]) appendSteps(dst []StepKind) []StepKind {
	switch p := c.prev.(type) {
	case stepAppender:
		dst = p.appendSteps(dst)
	case stepLister:
		dst = append(dst, p.Steps()...)
	}
	if c.step != nil {
		dst = append(dst, c.step.kind())
	}
	return dst
}

var _ Builder = Root{}
