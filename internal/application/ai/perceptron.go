package ai

import (
	"math"
	"math/rand"

	"github.com/younwookim/spearfall/internal/domain/entity"
)

// Perceptron shape and exploration defaults
const (
	FeatureCount       = 5 // see entity.Observation.Features
	DefaultHiddenSize  = 8
	DefaultExploration = 0.1
	initWeightScale    = 0.1
)

// PerceptronActions maps output neurons to commands
var PerceptronActions = []entity.Command{
	entity.CmdMoveLeft,
	entity.CmdMoveRight,
	entity.CmdJump,
}

// Perceptron is a two-layer feed-forward network: ReLU hidden layer,
// softmax output
type Perceptron struct {
	W1 [][]float64 // [input][hidden]
	B1 []float64
	W2 [][]float64 // [hidden][output]
	B2 []float64
}

// NewPerceptron creates a network with small random weights and zero biases
func NewPerceptron(in, hidden, out int, rng *rand.Rand) *Perceptron {
	return &Perceptron{
		W1: randomMatrix(in, hidden, rng),
		B1: make([]float64, hidden),
		W2: randomMatrix(hidden, out, rng),
		B2: make([]float64, out),
	}
}

func randomMatrix(rows, cols int, rng *rand.Rand) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = rng.NormFloat64() * initWeightScale
		}
	}
	return m
}

// Predict returns the action probabilities for input
func (p *Perceptron) Predict(input []float64) []float64 {
	hidden := make([]float64, len(p.B1))
	for j := range hidden {
		sum := p.B1[j]
		for i, x := range input {
			if i < len(p.W1) {
				sum += x * p.W1[i][j]
			}
		}
		hidden[j] = math.Max(0, sum)
	}

	out := make([]float64, len(p.B2))
	for k := range out {
		sum := p.B2[k]
		for j, h := range hidden {
			sum += h * p.W2[j][k]
		}
		out[k] = sum
	}
	return softmax(out)
}

func softmax(x []float64) []float64 {
	if len(x) == 0 {
		return x
	}
	max := x[0]
	for _, v := range x[1:] {
		if v > max {
			max = v
		}
	}
	var total float64
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v - max)
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

// Mutate perturbs each weight with probability rate by a small gaussian step
func (p *Perceptron) Mutate(rate float64, rng *rand.Rand) {
	for _, m := range [][][]float64{p.W1, p.W2} {
		for i := range m {
			for j := range m[i] {
				if rng.Float64() < rate {
					m[i][j] += rng.NormFloat64() * initWeightScale
				}
			}
		}
	}
}

// PerceptronPolicy picks the most probable action, exploring at random
// with probability Exploration
type PerceptronPolicy struct {
	Brain       *Perceptron
	Exploration float64

	rng        *rand.Rand
	lastAction int
}

// NewPerceptronPolicy wraps a network as a decision source
func NewPerceptronPolicy(brain *Perceptron, rng *rand.Rand) *PerceptronPolicy {
	return &PerceptronPolicy{
		Brain:       brain,
		Exploration: DefaultExploration,
		rng:         rng,
	}
}

// Decide implements entity.DecisionSource
func (p *PerceptronPolicy) Decide(obs entity.Observation) entity.Command {
	probs := p.Brain.Predict(obs.Features())

	action := argmax(probs)
	if p.rng != nil && p.rng.Float64() < p.Exploration {
		action = p.rng.Intn(len(probs))
	}
	if action < 0 || action >= len(PerceptronActions) {
		return entity.CmdNone
	}

	p.lastAction = action
	return PerceptronActions[action]
}

// LastAction returns the index of the most recent action
func (p *PerceptronPolicy) LastAction() int {
	return p.lastAction
}

func argmax(x []float64) int {
	best := -1
	for i, v := range x {
		if best < 0 || v > x[best] {
			best = i
		}
	}
	return best
}
