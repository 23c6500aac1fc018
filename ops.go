package autograd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Numeric covers the plain number types that may be implicitly wrapped as
// constant leaf values.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Of wraps a plain numeric literal as a new constant leaf Value.
func Of[N Numeric](n N) *Value {
	return NewValue(float64(n))
}

// Add performs addition: v + other.
func (v *Value) Add(other *Value) *Value {
	out := derive(v.data+other.data, OpAdd, v, other)
	out.mustBindGradFn(func() {
		v.grad += out.grad
		other.grad += out.grad
	})
	return out
}

// AddScalar performs addition with a plain number: v + scalar.
func (v *Value) AddScalar(scalar float64) *Value {
	return v.Add(NewValue(scalar))
}

// Mul performs multiplication: v * other.
func (v *Value) Mul(other *Value) *Value {
	out := derive(v.data*other.data, OpMul, v, other)
	out.mustBindGradFn(func() {
		v.grad += out.grad * other.data
		other.grad += out.grad * v.data
	})
	return out
}

// MulScalar performs multiplication with a plain number: v * scalar.
func (v *Value) MulScalar(scalar float64) *Value {
	return v.Mul(NewValue(scalar))
}

// Pow raises v to a fixed numeric exponent: v ** n. The exponent is not a
// graph node and receives no gradient.
func (v *Value) Pow(n float64) *Value {
	out := derive(math.Pow(v.data, n), OpPow, v)
	out.mustBindGradFn(func() {
		// d/dx x^n = n * x^(n-1)
		v.grad += out.grad * n * math.Pow(v.data, n-1)
	})
	return out
}

// Neg computes -v.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub computes v - other.
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar computes v - scalar.
func (v *Value) SubScalar(scalar float64) *Value {
	return v.Sub(NewValue(scalar))
}

// Div computes v / other as v * other^-1. A zero divisor follows IEEE-754:
// the result is ±Inf or NaN and propagates through backward unchanged.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// DivScalar computes v / scalar.
func (v *Value) DivScalar(scalar float64) *Value {
	return v.Div(NewValue(scalar))
}

// Exp computes e^v.
func (v *Value) Exp() *Value {
	out := derive(math.Exp(v.data), OpExp, v)
	out.mustBindGradFn(func() {
		// d/dx e^x = e^x, which is the output's own data
		v.grad += out.grad * out.data
	})
	return out
}

// Tanh performs the hyperbolic tangent activation.
func (v *Value) Tanh() *Value {
	out := derive(math.Tanh(v.data), OpTanh, v)
	out.mustBindGradFn(func() {
		v.grad += out.grad * (1 - out.data*out.data)
	})
	return out
}
