package prediction

import (
	"errors"
	"fmt"
	"math"
	"skeet-sim/internal/common"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// degree+1 coefficients per axis: a + b*t + c*t^2
const terms = 3

var (
	// ErrTooFewSamples is returned when fewer than three samples are given.
	ErrTooFewSamples = errors.New("prediction: need at least 3 samples")
	// ErrDegenerate is returned when samples do not span three distinct times.
	ErrDegenerate = errors.New("prediction: samples need 3 distinct times")
)

// Sample is an observed position at frame T.
type Sample struct {
	T        float64
	Position common.Position
}

// Trajectory is a quadratic fit of a flight path.
type Trajectory struct {
	origin float64 // time the coefficients are centered on
	x, y   [terms]float64
	// ResidualError is ||A*c - b|| / sqrt(m) summed over both axes. Lower is better.
	ResidualError float64
}

// At evaluates the trajectory at frame t.
func (tr Trajectory) At(t float64) common.Position {
	dt := t - tr.origin
	return common.NewPosition(
		tr.x[0]+tr.x[1]*dt+tr.x[2]*dt*dt,
		tr.y[0]+tr.y[1]*dt+tr.y[2]*dt*dt,
	)
}

// Fit finds the least-squares quadratic through samples.
// Time is centered on the last sample to keep the system well conditioned.
func Fit(samples []Sample) (Trajectory, error) {
	var empty Trajectory

	m := len(samples)
	if m < terms {
		return empty, fmt.Errorf("%w: got %d", ErrTooFewSamples, m)
	}
	distinct := make(map[float64]struct{}, m)
	for _, s := range samples {
		distinct[s.T] = struct{}{}
	}
	if len(distinct) < terms {
		return empty, ErrDegenerate
	}

	origin := samples[m-1].T
	aData := make([]float64, m*terms)
	xData := make([]float64, m)
	yData := make([]float64, m)
	for i, s := range samples {
		dt := s.T - origin
		aData[i*terms] = 1
		aData[i*terms+1] = dt
		aData[i*terms+2] = dt * dt
		xData[i] = s.Position.X
		yData[i] = s.Position.Y
	}

	A := mat.NewDense(m, terms, aData)
	var qr mat.QR
	qr.Factorize(A)

	tr := Trajectory{origin: origin}
	var residualSq float64
	for axis, b := range []*mat.VecDense{mat.NewVecDense(m, xData), mat.NewVecDense(m, yData)} {
		var c mat.VecDense
		if err := qr.SolveVecTo(&c, false, b); err != nil {
			return empty, fmt.Errorf("QR least squares solve failed: %w", err)
		}

		var residual mat.VecDense
		residual.MulVec(A, &c)
		residual.SubVec(b, &residual)
		n := blas64.Nrm2(residual.RawVector())
		residualSq += n * n

		coeffs := &tr.x
		if axis == 1 {
			coeffs = &tr.y
		}
		for j := 0; j < terms; j++ {
			coeffs[j] = c.AtVec(j)
		}
	}
	tr.ResidualError = math.Sqrt(residualSq) / math.Sqrt(float64(m))

	return tr, nil
}

// Intercept finds the first frame within horizon at which a shot from origin
// travelling at speed can meet the trajectory. now is the current frame.
// It returns the meeting point and the number of frames until the meeting.
func Intercept(tr Trajectory, now float64, origin common.Position, speed float64, horizon int) (common.Position, int, bool) {
	if speed <= 0 {
		return common.Position{}, 0, false
	}
	for k := 1; k <= horizon; k++ {
		p := tr.At(now + float64(k))
		if origin.Distance(p) <= speed*float64(k) {
			return p, k, true
		}
	}
	return common.Position{}, 0, false
}
