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

// MemoryStore implements ProposalStore with in-memory maps
type MemoryStore struct {
	mu        sync.RWMutex
	proposals map[uint64]*Proposal
	receipts  map[uint64]map[common.Address]*VoteReceipt
	lastID    uint64
}

// NewMemoryStore creates an empty in-memory proposal store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		proposals: make(map[uint64]*Proposal),
		receipts:  make(map[uint64]map[common.Address]*VoteReceipt),
	}
}

// PutProposal inserts or overwrites a proposal record
func (s *MemoryStore) PutProposal(p *Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	cp.CallData = append([]byte(nil), p.CallData...)
	s.proposals[p.ID] = &cp
	if p.ID > s.lastID {
		s.lastID = p.ID
	}
	return nil
}

// GetProposal returns a copy of the proposal with the given id
func (s *MemoryStore) GetProposal(id uint64) (*Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.proposals[id]
	if !exists {
		return nil, ErrProposalNotFound
	}
	cp := *p
	cp.CallData = append([]byte(nil), p.CallData...)
	return &cp, nil
}

// LastProposalID returns the highest assigned proposal id
func (s *MemoryStore) LastProposalID() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastID, nil
}

// PutReceipt records a vote receipt for a proposal
func (s *MemoryStore) PutReceipt(id uint64, r *VoteReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receipts[id] == nil {
		s.receipts[id] = make(map[common.Address]*VoteReceipt)
	}
	cp := *r
	s.receipts[id][r.Voter] = &cp
	return nil
}

// GetReceipt returns the receipt of voter on proposal id, or nil
func (s *MemoryStore) GetReceipt(id uint64, voter common.Address) (*VoteReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.receipts[id][voter]
	if !exists {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
