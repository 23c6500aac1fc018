package autograd

import (
	"fmt"
	"math/rand"
)

// Module is implemented by anything that exposes trainable parameters as
// leaf Values.
type Module interface {
	Parameters() []*Value
}

// ZeroGradAll resets the gradient of every parameter in m. Defined purely
// in terms of Parameters so any Module gets it for free.
func ZeroGradAll(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Neuron represents a single tanh neuron with weights and a bias.
type Neuron struct {
	w []*Value
	b *Value
}

// NewNeuron creates a Neuron with nin inputs. Weights and bias are drawn
// uniformly from [-1, 1); the label is threaded into the parameter labels.
func NewNeuron(nin int, label string) *Neuron {
	w := make([]*Value, nin)
	for i := range w {
		w[i] = NewLabeled(rand.Float64()*2-1, fmt.Sprintf("%s__Weight%d", label, i))
	}
	b := NewLabeled(rand.Float64()*2-1, label+"__Bias")
	return &Neuron{w: w, b: b}
}

// Call computes tanh(w·x + b) for input x.
func (n *Neuron) Call(x []*Value) *Value {
	if len(x) != len(n.w) {
		panic("autograd: input size mismatch")
	}
	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Value {
	params := make([]*Value, len(n.w)+1)
	copy(params, n.w)
	params[len(n.w)] = n.b
	return params
}

// Layer represents a layer of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a Layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, label string) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, fmt.Sprintf("%s__Neuron%d", label, i))
	}
	return &Layer{neurons: neurons}
}

// Call computes the output of every neuron in the layer for input x.
func (l *Layer) Call(x []*Value) []*Value {
	outs := make([]*Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Call(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons in the layer.
func (l *Layer) Parameters() []*Value {
	var params []*Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// MLP represents a multi-layer perceptron.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int) *MLP {
	layers := make([]*Layer, len(nouts))
	sz := append([]int{nin}, nouts...)
	for i := range nouts {
		layers[i] = NewLayer(sz[i], sz[i+1], fmt.Sprintf("Layer%d", i))
	}
	return &MLP{layers: layers}
}

// Call feeds x through every layer in turn.
func (m *MLP) Call(x []*Value) []*Value {
	for _, l := range m.layers {
		x = l.Call(x)
	}
	return x
}

// CallFloats wraps plain numbers as labelled input leaves and feeds them
// through the network.
func (m *MLP) CallFloats(x []float64) []*Value {
	xs := make([]*Value, len(x))
	for i, el := range x {
		xs[i] = NewLabeled(el, fmt.Sprintf("Input%d", i))
	}
	return m.Call(xs)
}

// Parameters returns the parameters of all layers in the MLP.
func (m *MLP) Parameters() []*Value {
	var params []*Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
