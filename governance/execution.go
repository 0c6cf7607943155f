// Copyright 2025 The govcore Authors
// This file is part of the govcore library.
//
// The govcore library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The govcore library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the govcore library. If not, see <http://www.gnu.org/licenses/>.

package governance

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Outcome reports what a successful ExecuteProposal call achieved
type Outcome uint8

const (
	OutcomeNone     Outcome = 0x00 // the call failed, nothing changed
	OutcomeDefeated Outcome = 0x01 // finalized as lost; terminal, not an error
	OutcomeQueued   Outcome = 0x02 // finalized as passed, timelock started
	OutcomeExecuted Outcome = 0x03 // target call performed successfully
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeDefeated:
		return "Defeated"
	case OutcomeQueued:
		return "Queued"
	case OutcomeExecuted:
		return "Executed"
	default:
		return "None"
	}
}

// ExecutionEngine drives the two-call finalize/run protocol. The first call
// after the voting window tallies the outcome and queues or defeats the
// proposal; the second call, after the timelock, performs the target call.
type ExecutionEngine struct {
	registry   *Registry
	config     *ConfigStore
	dispatcher Dispatcher
}

// NewExecutionEngine creates an execution engine over the given registry
func NewExecutionEngine(registry *Registry, config *ConfigStore, dispatcher Dispatcher) *ExecutionEngine {
	return &ExecutionEngine{
		registry:   registry,
		config:     config,
		dispatcher: dispatcher,
	}
}

// RequiredQuorumVotes returns the minimum combined for+against vote count
// for an outcome to stand: ceil(totalVoters * percent / 100).
func RequiredQuorumVotes(totalVoters, percent uint64) uint64 {
	return (totalVoters*percent + 99) / 100
}

// Execute advances the proposal's state machine by exactly one step,
// dispatched on its current state. On a quorum-met, strict-majority pass
// the proposal is queued; an exact tie defeats it. A dispatch failure
// transitions the proposal to ExecutionFailed permanently and returns
// ErrExecutionFailed wrapped with the decoded revert reason.
func (e *ExecutionEngine) Execute(id uint64, now uint64) (Outcome, error) {
	outcome := OutcomeNone
	var execErr error

	err := e.registry.Mutate(id, func(p *Proposal) error {
		switch p.State {
		case StateActive:
			if now < p.VoteEnd {
				return ErrVotingNotEnded
			}
			cfg := e.config.Snapshot()
			required := RequiredQuorumVotes(cfg.TotalVoters, cfg.QuorumPercentage)
			quorumReached := p.VotesFor+p.VotesAgainst >= required
			if quorumReached && p.VotesFor > p.VotesAgainst {
				p.State = StateQueued
				p.QueuedAt = now
				outcome = OutcomeQueued
			} else {
				p.State = StateDefeated
				outcome = OutcomeDefeated
			}
			return nil

		case StateQueued:
			if now < p.QueuedAt+TimelockDelay {
				return ErrTimelockNotExpired
			}
			ret, ok := e.dispatcher.Call(p.Target, p.CallData)
			if !ok {
				// The transition persists even though the call is
				// reported as failed.
				p.State = StateExecutionFailed
				execErr = fmt.Errorf("%w: %s", ErrExecutionFailed, RevertReason(ret))
				return nil
			}
			p.State = StateExecuted
			outcome = OutcomeExecuted
			return nil

		case StateExecuted:
			return ErrAlreadyExecuted
		case StateExecutionFailed:
			return ErrExecutionFailed
		case StateDefeated:
			return ErrProposalDefeated
		default:
			return fmt.Errorf("proposal %d has unknown state %d", p.ID, p.State)
		}
	})
	if err != nil {
		return OutcomeNone, err
	}
	return outcome, execErr
}

// RevertReason decodes a standard reason string from a failed call's return
// bytes, falling back to a generic reason when the bytes do not carry one.
func RevertReason(ret []byte) string {
	if reason, err := abi.UnpackRevert(ret); err == nil {
		return reason
	}
	return "execution reverted"
}
