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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalState represents the lifecycle state of a proposal
type ProposalState uint8

const (
	StateActive          ProposalState = 0x00 // voting open or awaiting finalization
	StateQueued          ProposalState = 0x01 // passed, waiting out the timelock
	StateExecuted        ProposalState = 0x02 // target call succeeded, terminal
	StateExecutionFailed ProposalState = 0x03 // target call reverted, terminal
	StateDefeated        ProposalState = 0x04 // quorum or majority not reached, terminal
)

// String returns a human-readable name for the state
func (s ProposalState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateQueued:
		return "Queued"
	case StateExecuted:
		return "Executed"
	case StateExecutionFailed:
		return "ExecutionFailed"
	case StateDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// FirstProposalID is the identifier assigned to the first proposal.
// Identifiers are sequential with no gaps or reuse.
const FirstProposalID uint64 = 1

// TimelockDelay is the mandatory delay in seconds between a proposal being
// queued and becoming eligible for execution. It is a protocol constant,
// independent of the configurable voting period.
const TimelockDelay uint64 = 2 * 24 * 60 * 60 // 2 days

// Proposal represents a governance proposal
type Proposal struct {
	ID            uint64         // sequential identifier
	Description   string         // non-empty description
	Target        common.Address // call target
	CallData      []byte         // call payload
	Proposer      common.Address // proposal author
	VoteStart     uint64         // creation timestamp (unix seconds)
	VoteEnd       uint64         // VoteStart + voting period at creation
	SnapshotBlock uint64         // block height captured at creation
	VotesFor      uint64         // supporting votes, one per address
	VotesAgainst  uint64         // opposing votes, one per address
	State         ProposalState  // current lifecycle state
	QueuedAt      uint64         // set once on the Active->Queued transition
}

// VoteReceipt records a single vote on a proposal. Its existence means the
// voter has voted; receipts are never mutated after creation.
type VoteReceipt struct {
	Voter   common.Address // voting address
	Support bool           // true = for, false = against
	CastAt  uint64         // timestamp the vote was cast
}

// Config holds the admin-mutable governance parameters
type Config struct {
	VotingPeriod     uint64   // voting window length in seconds
	QuorumPercentage uint64   // required participation, 0-100
	TotalVoters      uint64   // size of the eligible voter population
	MaxProposalValue *big.Int // cap on the value a proposal may move
}

// DefaultConfig returns the default governance configuration
func DefaultConfig() *Config {
	return &Config{
		VotingPeriod:     7 * 24 * 60 * 60, // 7 days
		QuorumPercentage: 50,
		TotalVoters:      100,
		MaxProposalValue: new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18)),
	}
}
