package autograd

import "github.com/pkg/errors"

// Backward computes, for every node reachable from v, the derivative of
// v's value with respect to that node, accumulating it into the node's
// gradient. v is treated as the single scalar output, so its own gradient
// is seeded to 1.
//
// The walk follows the descending topological order: a node's closure runs
// only after every consumer that could still add to its gradient already
// ran, so the gradient it propagates onward is final. Gradients are not
// zeroed here; between independent passes the caller owns that.
//
// A derived node without a local-gradient closure makes the pass abort with
// an error, because continuing would leave gradients silently incomplete.
func (v *Value) Backward() error {
	v.grad = 1
	for _, node := range TopoSort(v, Descending) {
		if node.IsLeaf() {
			continue
		}
		fn, err := node.gradFn()
		if err != nil {
			return errors.Wrapf(err, "backward through %s (op %s)", node.label, node.op.Symbol())
		}
		fn()
	}
	return nil
}
