// SPDX-License-Identifier: MIT

package logit

// Params is the explicit parameter structure: r basis coefficients and an intercept.
type Params struct {
	Coef  []float64
	Beta0 float64
}

// Vector flattens p as [Coef..., Beta0] for optimizers. The result is a fresh slice.
func (p Params) Vector() []float64 {
	v := make([]float64, len(p.Coef)+1)
	copy(v, p.Coef)
	v[len(p.Coef)] = p.Beta0

	return v
}

// ParamsFromVector splits a flat vector of length r+1 into Params. Coef is copied.
//
// Errors: ErrParamLength when len(v) != r+1 or r < 1.
func ParamsFromVector(v []float64, r int) (Params, error) {
	if r < 1 || len(v) != r+1 {
		return Params{}, logitErrorf("ParamsFromVector", ErrParamLength)
	}
	coef := make([]float64, r)
	copy(coef, v[:r])

	return Params{Coef: coef, Beta0: v[r]}, nil
}
