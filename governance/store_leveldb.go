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
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/syndtr/goleveldb/leveldb"
)

// Storage key prefixes
var (
	proposalPrefix = []byte("gov-p")
	receiptPrefix  = []byte("gov-r")
	lastIDKey      = []byte("gov-lastid")
)

// LevelDBStore implements ProposalStore on a goleveldb database. Records
// are RLP-encoded under prefixed keys, so a reopened store resumes the
// proposal sequence where it left off.
type LevelDBStore struct {
	db *leveldb.DB
}

// NewLevelDBStore opens (or creates) a proposal store at path
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open proposal store: %w", err)
	}
	return &LevelDBStore{db: db}, nil
}

// PutProposal inserts or overwrites a proposal record
func (s *LevelDBStore) PutProposal(p *Proposal) error {
	encoded, err := rlp.EncodeToBytes(p)
	if err != nil {
		return fmt.Errorf("failed to encode proposal %d: %w", p.ID, err)
	}
	if err := s.db.Put(proposalKey(p.ID), encoded, nil); err != nil {
		return err
	}

	last, err := s.LastProposalID()
	if err != nil {
		return err
	}
	if p.ID > last {
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, p.ID)
		return s.db.Put(lastIDKey, buf, nil)
	}
	return nil
}

// GetProposal returns the proposal with the given id
func (s *LevelDBStore) GetProposal(id uint64) (*Proposal, error) {
	data, err := s.db.Get(proposalKey(id), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, err
	}
	p := new(Proposal)
	if err := rlp.DecodeBytes(data, p); err != nil {
		return nil, fmt.Errorf("failed to decode proposal %d: %w", id, err)
	}
	return p, nil
}

// LastProposalID returns the highest assigned proposal id
func (s *LevelDBStore) LastProposalID() (uint64, error) {
	data, err := s.db.Get(lastIDKey, nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(data), nil
}

// PutReceipt records a vote receipt for a proposal
func (s *LevelDBStore) PutReceipt(id uint64, r *VoteReceipt) error {
	encoded, err := rlp.EncodeToBytes(r)
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}
	return s.db.Put(receiptKey(id, r.Voter), encoded, nil)
}

// GetReceipt returns the receipt of voter on proposal id, or nil
func (s *LevelDBStore) GetReceipt(id uint64, voter common.Address) (*VoteReceipt, error) {
	data, err := s.db.Get(receiptKey(id, voter), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r := new(VoteReceipt)
	if err := rlp.DecodeBytes(data, r); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return r, nil
}

// Close closes the underlying database
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}

func proposalKey(id uint64) []byte {
	key := make([]byte, len(proposalPrefix)+8)
	copy(key, proposalPrefix)
	binary.BigEndian.PutUint64(key[len(proposalPrefix):], id)
	return key
}

func receiptKey(id uint64, voter common.Address) []byte {
	key := make([]byte, len(receiptPrefix)+8+common.AddressLength)
	copy(key, receiptPrefix)
	binary.BigEndian.PutUint64(key[len(receiptPrefix):], id)
	copy(key[len(receiptPrefix)+8:], voter.Bytes())
	return key
}
