package autograd

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Op identifies the operation that produced a Value. OpNone marks a leaf
// (a constant or a trainable parameter).
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpMul
	OpPow
	OpTanh
	OpExp
)

// Symbol returns the display form of the operator, as used by String and
// the graph exports. OpNone renders empty.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpTanh:
		return "tanh"
	case OpExp:
		return "exp"
	default:
		return ""
	}
}

func (op Op) valid() bool {
	return op > OpNone && op <= OpExp
}

// Errors reported for graph-construction invariant breaches. These signal
// build-time logic bugs, never recoverable runtime conditions.
var (
	ErrUnsupportedOp      = errors.New("unsupported op")
	ErrOpAlreadySet       = errors.New("op is already set")
	ErrNoOperands         = errors.New("operand list is empty")
	ErrOperandsAlreadySet = errors.New("operands are already set")
	ErrNilGradFn          = errors.New("grad fn is nil")
	ErrGradFnAlreadySet   = errors.New("grad fn is already set")
	ErrGradFnNotSet       = errors.New("grad fn is not set")
)

// instanceCount hands out process-unique node ids. Construction may happen
// from multiple goroutines, so the counter is atomic; everything else about
// a graph is single-threaded by contract.
var instanceCount atomic.Uint64

// Value is a scalar node in a computation graph. Arithmetic on Values
// records, as a side effect, how each result was derived, so that Backward
// can later propagate gradients from a root back to every reachable node.
type Value struct {
	id       uint64
	label    string
	data     float64
	grad     float64
	op       Op
	prev     []*Value
	backward func()
}

// NewValue creates a leaf Value holding data, with a generated label.
func NewValue(data float64) *Value {
	v := &Value{id: instanceCount.Add(1), data: data}
	v.label = fmt.Sprintf("val_%d", v.id)
	return v
}

// NewLabeled creates a leaf Value holding data with an explicit debug label.
func NewLabeled(data float64, label string) *Value {
	v := NewValue(data)
	v.label = label
	return v
}

// Data returns the forward value of the node.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value. Intended for the optimizer update
// step on parameters; derived nodes must be rebuilt, not mutated.
func (v *Value) SetData(d float64) {
	v.data = d
}

// Grad returns the gradient accumulated by the last backward pass.
func (v *Value) Grad() float64 {
	return v.grad
}

// ZeroGrad resets the gradient to 0. Gradients only accumulate during
// backward passes, so callers must zero them between independent passes.
func (v *Value) ZeroGrad() {
	v.grad = 0.0
}

// Op returns the operator that produced this node, or OpNone for a leaf.
func (v *Value) Op() Op {
	return v.op
}

// Operands returns a copy of the node's operand list, empty for a leaf.
func (v *Value) Operands() []*Value {
	return append([]*Value(nil), v.prev...)
}

// IsLeaf reports whether the node is a constant or parameter rather than
// the result of an operation.
func (v *Value) IsLeaf() bool {
	return v.op == OpNone && v.prev == nil
}

// ID returns the node's process-unique identity. It is used for visited
// sets and diagram node naming, never for arithmetic.
func (v *Value) ID() uint64 {
	return v.id
}

// Label returns the debug label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel replaces the debug label. Labels have no effect on computation.
func (v *Value) SetLabel(label string) {
	v.label = label
}

// String implements fmt.Stringer for debug printing.
func (v *Value) String() string {
	return fmt.Sprintf("Value(label=%s, data=%g, grad=%g)", v.label, v.data, v.grad)
}

// bindOp sets the operator tag. It may be called at most once per node and
// only with a member of the closed operator set.
func (v *Value) bindOp(op Op) error {
	if !op.valid() {
		return errors.Wrapf(ErrUnsupportedOp, "op tag %d", op)
	}
	if v.op != OpNone {
		return ErrOpAlreadySet
	}
	v.op = op
	return nil
}

// bindOperands sets the operand list. It may be called at most once per
// node and never with an empty list; a leaf's list stays permanently unset.
func (v *Value) bindOperands(operands ...*Value) error {
	if len(operands) == 0 {
		return ErrNoOperands
	}
	if v.prev != nil {
		return ErrOperandsAlreadySet
	}
	v.prev = operands
	return nil
}

// bindGradFn installs the local-gradient closure. It may be called at most
// once per node and never with nil.
func (v *Value) bindGradFn(fn func()) error {
	if fn == nil {
		return ErrNilGradFn
	}
	if v.backward != nil {
		return ErrGradFnAlreadySet
	}
	v.backward = fn
	return nil
}

// gradFn returns the local-gradient closure, or an error if none was set.
// Every derived node must carry one before a backward pass reaches it.
func (v *Value) gradFn() (func(), error) {
	if v.backward == nil {
		return nil, ErrGradFnNotSet
	}
	return v.backward, nil
}

// derive allocates the single output node of an operation, binding operator
// and operands in one step on a fresh node. The write-once binds cannot
// fail here; if one does it is a bug in this package and fatal.
func derive(data float64, op Op, operands ...*Value) *Value {
	out := NewValue(data)
	if err := out.bindOp(op); err != nil {
		panic(errors.Wrap(err, "autograd: derive"))
	}
	if err := out.bindOperands(operands...); err != nil {
		panic(errors.Wrap(err, "autograd: derive"))
	}
	return out
}

// mustBindGradFn installs the local-gradient closure built by an operation.
// Same fatality argument as derive: only a package bug can trip it.
func (v *Value) mustBindGradFn(fn func()) {
	if err := v.bindGradFn(fn); err != nil {
		panic(errors.Wrap(err, "autograd: bind grad fn"))
	}
}
