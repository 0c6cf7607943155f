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

// EventType identifies the kind of governance notification
type EventType uint8

const (
	EvtProposalCreated  EventType = 0x01
	EvtVoteCast         EventType = 0x02
	EvtProposalQueued   EventType = 0x03
	EvtProposalExecuted EventType = 0x04

	EvtVotingPeriodUpdated     EventType = 0x10
	EvtQuorumPercentageUpdated EventType = 0x11
	EvtTotalVotersUpdated      EventType = 0x12
	EvtMaxProposalValueUpdated EventType = 0x13
	EvtBlacklistUpdated        EventType = 0x14
)

// String returns a human-readable name for the event type
func (t EventType) String() string {
	switch t {
	case EvtProposalCreated:
		return "ProposalCreated"
	case EvtVoteCast:
		return "VoteCast"
	case EvtProposalQueued:
		return "ProposalQueued"
	case EvtProposalExecuted:
		return "ProposalExecuted"
	case EvtVotingPeriodUpdated:
		return "VotingPeriodUpdated"
	case EvtQuorumPercentageUpdated:
		return "QuorumPercentageUpdated"
	case EvtTotalVotersUpdated:
		return "TotalVotersUpdated"
	case EvtMaxProposalValueUpdated:
		return "MaxProposalValueUpdated"
	case EvtBlacklistUpdated:
		return "BlacklistUpdated"
	default:
		return "Unknown"
	}
}

// Event is the notification record delivered to subscribers. Fields are
// populated according to Type: proposal events carry ProposalID and Actor,
// vote events additionally carry Support, configuration events carry the
// old and new values, and blacklist updates carry Target and Flag.
type Event struct {
	Type       EventType
	ProposalID uint64
	Actor      common.Address // proposer or voter
	Support    bool           // vote direction on EvtVoteCast
	Target     common.Address // blacklist subject on EvtBlacklistUpdated
	Flag       bool           // blacklist flag on EvtBlacklistUpdated
	OldValue   *big.Int       // previous value on configuration updates
	NewValue   *big.Int       // new value on configuration updates
}
