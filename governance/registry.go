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
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Registry is the authoritative table of proposals and vote receipts. It
// owns id assignment and serializes every record mutation, so tallies and
// state transitions are applied in a total order.
type Registry struct {
	mu     sync.Mutex
	store  ProposalStore
	nextID uint64
}

// NewRegistry creates a registry over the given store. The id sequence
// resumes after the store's highest assigned id.
func NewRegistry(store ProposalStore) (*Registry, error) {
	last, err := store.LastProposalID()
	if err != nil {
		return nil, err
	}
	nextID := FirstProposalID
	if last >= FirstProposalID {
		nextID = last + 1
	}
	return &Registry{store: store, nextID: nextID}, nil
}

// Create admits a validated proposal, assigning the next sequential id and
// snapshotting the voting window from the period in effect right now.
func (r *Registry) Create(description string, target common.Address, callData []byte, proposer common.Address, votingPeriod, now, block uint64) (*Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &Proposal{
		ID:            r.nextID,
		Description:   description,
		Target:        target,
		CallData:      append([]byte(nil), callData...),
		Proposer:      proposer,
		VoteStart:     now,
		VoteEnd:       now + votingPeriod,
		SnapshotBlock: block,
		State:         StateActive,
	}
	if err := r.store.PutProposal(p); err != nil {
		return nil, err
	}
	r.nextID++

	cp := *p
	return &cp, nil
}

// Get returns a copy of the proposal with the given id
func (r *Registry) Get(id uint64) (*Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetProposal(id)
}

// Receipt returns the vote receipt of voter on the given proposal, or nil
// if the voter has not voted. The proposal must exist.
func (r *Registry) Receipt(id uint64, voter common.Address) (*VoteReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.store.GetProposal(id); err != nil {
		return nil, err
	}
	return r.store.GetReceipt(id, voter)
}

// Mutate applies fn to the proposal with the given id under the registry
// lock and persists the result. If fn returns an error nothing is written.
func (r *Registry) Mutate(id uint64, fn func(p *Proposal) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.GetProposal(id)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	return r.store.PutProposal(p)
}
