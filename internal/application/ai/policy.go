// Package ai provides decision sources for non-player actors.
//
// Every source implements entity.DecisionSource: it looks at one
// Observation and returns one command from the shared vocabulary. The
// physics core does not care which source drives an enemy.
package ai

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/spearfall/internal/domain/entity"
)

// Policy names accepted by New (stage files refer to these)
const (
	PolicyIdle       = "idle"
	PolicyChase      = "chase"
	PolicyPerceptron = "perceptron"
	PolicyScripted   = "scripted"
)

// New creates a decision source by name. rng seeds stochastic policies.
func New(name string, rng *rand.Rand) (entity.DecisionSource, error) {
	switch name {
	case "", PolicyIdle:
		return IdlePolicy{}, nil
	case PolicyChase:
		return &ChasePolicy{DeadBand: DefaultChaseDeadBand}, nil
	case PolicyPerceptron:
		return NewPerceptronPolicy(NewPerceptron(FeatureCount, DefaultHiddenSize, len(PerceptronActions), rng), rng), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// IdlePolicy never moves
type IdlePolicy struct{}

// Decide implements entity.DecisionSource
func (IdlePolicy) Decide(entity.Observation) entity.Command {
	return entity.CmdNone
}

// DefaultChaseDeadBand is the horizontal distance (px) inside which a
// chaser stops instead of oscillating around its target
const DefaultChaseDeadBand = 8.0

// ChasePolicy walks toward the target and hops when blocked by a wall
type ChasePolicy struct {
	DeadBand float64
}

// Decide implements entity.DecisionSource
func (p *ChasePolicy) Decide(obs entity.Observation) entity.Command {
	if !obs.HasTarget {
		return entity.CmdNone
	}

	if obs.Grounded && obs.HitWall {
		return entity.CmdJump
	}

	dx := obs.Target.Center().X - obs.Self.Center().X
	switch {
	case dx < -p.DeadBand:
		return entity.CmdMoveLeft
	case dx > p.DeadBand:
		return entity.CmdMoveRight
	default:
		return entity.CmdStopHorizontal
	}
}

// ScriptedPolicy replays a fixed command sequence, looping when Loop is set
type ScriptedPolicy struct {
	Commands []entity.Command
	Loop     bool

	next int
}

// Decide implements entity.DecisionSource
func (p *ScriptedPolicy) Decide(entity.Observation) entity.Command {
	if len(p.Commands) == 0 {
		return entity.CmdNone
	}
	if p.next >= len(p.Commands) {
		if !p.Loop {
			return entity.CmdNone
		}
		p.next = 0
	}
	cmd := p.Commands[p.next]
	p.next++
	return cmd
}
