package classifier

import (
	"math"
	"math/rand"
)

// Default SGD hyperparameters.
const (
	DefaultAlpha   = 1e-4
	DefaultMaxIter = 2000
	DefaultTol     = 1e-3
	DefaultSeed    = 42
	noChangeEpochs = 5
	interceptDecay = 0.01 // sparse input
	logLossCutoff  = 18.0
)

// binaryModel is a linear decision function w·x + b.
type binaryModel struct {
	Weights   []float64
	Intercept float64
	Epochs    int
}

func (m *binaryModel) decision(x SparseVector) float64 {
	return x.Dot(m.Weights) + m.Intercept
}

// logLoss returns the logistic loss of margin p for label y in {-1, +1}.
func logLoss(p, y float64) float64 {
	z := p * y
	switch {
	case z > logLossCutoff:
		return math.Exp(-z)
	case z < -logLossCutoff:
		return -z
	default:
		return math.Log1p(math.Exp(-z))
	}
}

// logLossGrad returns d(loss)/d(p).
func logLossGrad(p, y float64) float64 {
	z := p * y
	switch {
	case z > logLossCutoff:
		return -y * math.Exp(-z)
	case z < -logLossCutoff:
		return -y
	default:
		return -y / (math.Exp(z) + 1)
	}
}

type sgdParams struct {
	alpha   float64
	maxIter int
	tol     float64
	seed    int64
}

// fitBinary trains one logistic model with the "optimal" learning rate
// schedule eta = 1 / (alpha * (t0 + t)) and L2 weight decay.
// Training stops once the epoch loss fails to improve by tol*n for
// noChangeEpochs consecutive epochs, or after maxIter epochs.
func fitBinary(xs []SparseVector, ys []float64, dim int, p sgdParams) *binaryModel {
	m := &binaryModel{Weights: make([]float64, dim)}
	n := len(xs)
	if n == 0 {
		return m
	}

	typw := math.Sqrt(1.0 / math.Sqrt(p.alpha))
	eta0 := typw / math.Max(1.0, logLossGrad(-typw, 1.0))
	t0 := 1.0 / (eta0 * p.alpha)

	rng := rand.New(rand.NewSource(p.seed))
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	// Weight decay is applied lazily through wscale so each step only
	// touches the sample's non-zero features.
	wscale := 1.0
	bestLoss := math.Inf(1)
	noImprovement := 0
	t := 1.0

	for epoch := 0; epoch < p.maxIter; epoch++ {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		var sumLoss float64
		for _, i := range order {
			x, y := xs[i], ys[i]
			margin := wscale*x.Dot(m.Weights) + m.Intercept
			sumLoss += logLoss(margin, y)

			eta := 1.0 / (p.alpha * (t0 + t - 1))
			update := -eta * logLossGrad(margin, y)

			wscale *= math.Max(0, 1.0-eta*p.alpha)
			if wscale < 1e-9 {
				for k := range m.Weights {
					m.Weights[k] *= wscale
				}
				wscale = 1.0
			}
			if update != 0 {
				for k, idx := range x.Indices {
					m.Weights[idx] += update * x.Values[k] / wscale
				}
				m.Intercept += update * interceptDecay
			}
			t++
		}
		m.Epochs = epoch + 1

		if p.tol > 0 {
			if sumLoss > bestLoss-p.tol*float64(n) {
				noImprovement++
			} else {
				noImprovement = 0
			}
			if sumLoss < bestLoss {
				bestLoss = sumLoss
			}
			if noImprovement >= noChangeEpochs {
				break
			}
		}
	}

	for k := range m.Weights {
		m.Weights[k] *= wscale
	}
	return m
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
