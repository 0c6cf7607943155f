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
)

// CastVote records one unweighted vote by voter on the given proposal. The
// receipt and the tally increment are written atomically: a rejected vote
// leaves both untouched. Outcome evaluation is deferred to the execution
// engine so it happens once, from the canonical tally, at finalization.
func (r *Registry) CastVote(id uint64, voter common.Address, support bool, now uint64) (*VoteReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.GetProposal(id)
	if err != nil {
		return nil, err
	}
	if now < p.VoteStart || now >= p.VoteEnd {
		return nil, ErrVotingClosed
	}
	existing, err := r.store.GetReceipt(id, voter)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyVoted
	}

	receipt := &VoteReceipt{Voter: voter, Support: support, CastAt: now}
	if err := r.store.PutReceipt(id, receipt); err != nil {
		return nil, err
	}
	if support {
		p.VotesFor++
	} else {
		p.VotesAgainst++
	}
	if err := r.store.PutProposal(p); err != nil {
		return nil, err
	}

	cp := *receipt
	return &cp, nil
}
