package draw

import (
	"math/rand/v2"
)

// Result is the ordered outcome of one draw. It is never modified after
// the sampler creates it.
type Result struct {
	values []int
}

// Len returns the number of drawn values.
func (r Result) Len() int {
	return len(r.values)
}

// At returns the i-th drawn value in reveal order.
func (r Result) At(i int) int {
	return r.values[i]
}

// Values returns a copy of the drawn values in reveal order.
func (r Result) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

// Sampler draws numbers from 1..maxNumber.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded from the runtime's random source.
func NewSampler() *Sampler {
	return NewDeterministicSampler(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewDeterministicSampler returns a sampler reading from source.
func NewDeterministicSampler(source rand.Source) *Sampler {
	return &Sampler{rng: rand.New(source)}
}

// Sample draws quantity distinct values from 1..maxNumber uniformly at
// random without replacement. It runs a partial Fisher-Yates shuffle over
// a virtual array 0..maxNumber-1 whose swapped slots are tracked in a map,
// so memory grows with quantity rather than with maxNumber.
func (s *Sampler) Sample(maxNumber, quantity int) (Result, error) {
	if maxNumber <= 0 {
		return Result{}, &InvalidInputError{Field: FieldMaxNumber}
	}
	if quantity <= 0 {
		return Result{}, &InvalidInputError{Field: FieldQuantity}
	}
	if quantity > maxNumber {
		return Result{}, &InsufficientRangeError{MaxNumber: maxNumber, Quantity: quantity}
	}

	swapped := make(map[int]int, quantity)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	values := make([]int, quantity)
	for i := 0; i < quantity; i++ {
		j := i + s.rng.IntN(maxNumber-i)
		vi, vj := at(i), at(j)
		swapped[j] = vi
		swapped[i] = vj
		values[i] = vj + 1
	}
	return Result{values: values}, nil
}

// Decoy returns an independent uniform value in 1..maxNumber for the
// flashing single-draw animation. Repeats are expected.
func (s *Sampler) Decoy(maxNumber int) int {
	return s.rng.IntN(maxNumber) + 1
}
