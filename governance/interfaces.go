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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifiers checked through the Authorizer capability.
var (
	RoleAdmin    = crypto.Keccak256Hash([]byte("ADMIN_ROLE"))
	RoleProposer = crypto.Keccak256Hash([]byte("PROPOSER_ROLE"))
	RoleExecutor = crypto.Keccak256Hash([]byte("EXECUTOR_ROLE"))
)

// Authorizer is the external role/permission primitive. The engine never
// stores role membership itself, it only queries the capability.
type Authorizer interface {
	// HasRole reports whether addr holds the given role
	HasRole(role common.Hash, addr common.Address) bool
}

// Pauser is the external pause primitive gating state-changing entry points
type Pauser interface {
	// Paused reports whether governance operations are suspended
	Paused() bool
}

// Dispatcher is the external call-dispatch primitive used to invoke a
// proposal's target. The raw return bytes are surfaced either way; on
// failure they may carry an encoded revert reason.
type Dispatcher interface {
	// Call invokes target with the given payload
	Call(target common.Address, data []byte) (ret []byte, ok bool)
}

// ChainContext supplies the current time and block height. It is injected so
// the time- and block-indexed transitions are deterministic under test.
type ChainContext interface {
	// Now returns the current unix timestamp in seconds
	Now() uint64

	// BlockNumber returns the current block height
	BlockNumber() uint64
}

// ProposalStore is the persistence boundary for proposals and vote receipts.
// Implementations must be safe for concurrent use.
type ProposalStore interface {
	// PutProposal inserts or overwrites a proposal record
	PutProposal(p *Proposal) error

	// GetProposal returns the proposal with the given id, or
	// ErrProposalNotFound
	GetProposal(id uint64) (*Proposal, error)

	// LastProposalID returns the highest assigned proposal id, or zero if
	// no proposal exists
	LastProposalID() (uint64, error)

	// PutReceipt records a vote receipt for a proposal
	PutReceipt(id uint64, r *VoteReceipt) error

	// GetReceipt returns the receipt of voter on proposal id, or nil if
	// the voter has not voted
	GetReceipt(id uint64, voter common.Address) (*VoteReceipt, error)

	// Close releases any underlying resources
	Close() error
}
