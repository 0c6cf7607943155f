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
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

func TestConfigStore_SettersEmitOldAndNew(t *testing.T) {
	feed := new(event.Feed)
	store := NewConfigStore(DefaultConfig(), feed)

	ch := make(chan Event, 8)
	sub := feed.Subscribe(ch)
	defer sub.Unsubscribe()

	oldPeriod := store.VotingPeriod()
	if err := store.SetVotingPeriod(1234); err != nil {
		t.Fatalf("SetVotingPeriod failed: %v", err)
	}
	evt := <-ch
	if evt.Type != EvtVotingPeriodUpdated {
		t.Errorf("expected VotingPeriodUpdated, got %v", evt.Type)
	}
	if evt.OldValue.Uint64() != oldPeriod || evt.NewValue.Uint64() != 1234 {
		t.Errorf("unexpected old/new: %v -> %v", evt.OldValue, evt.NewValue)
	}
	if store.VotingPeriod() != 1234 {
		t.Errorf("new value not observable: %d", store.VotingPeriod())
	}

	if err := store.SetMaxProposalValue(big.NewInt(42)); err != nil {
		t.Fatalf("SetMaxProposalValue failed: %v", err)
	}
	evt = <-ch
	if evt.Type != EvtMaxProposalValueUpdated || evt.NewValue.Int64() != 42 {
		t.Errorf("unexpected max value event: %+v", evt)
	}
}

func TestConfigStore_QuorumUpperBound(t *testing.T) {
	store := NewConfigStore(DefaultConfig(), new(event.Feed))

	if err := store.SetQuorumPercentage(101); !errors.Is(err, ErrInvalidQuorumPercentage) {
		t.Errorf("expected ErrInvalidQuorumPercentage, got %v", err)
	}
	if got := store.QuorumPercentage(); got != DefaultConfig().QuorumPercentage {
		t.Errorf("rejected setter mutated value: %d", got)
	}
	if err := store.SetQuorumPercentage(100); err != nil {
		t.Errorf("expected 100 to be accepted, got %v", err)
	}
}

func TestConfigStore_RejectsZeroValues(t *testing.T) {
	store := NewConfigStore(DefaultConfig(), new(event.Feed))

	if err := store.SetVotingPeriod(0); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected ErrInvalidConfigValue for zero period, got %v", err)
	}
	if err := store.SetTotalVoters(0); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected ErrInvalidConfigValue for zero voters, got %v", err)
	}
	if err := store.SetMaxProposalValue(nil); !errors.Is(err, ErrInvalidConfigValue) {
		t.Errorf("expected ErrInvalidConfigValue for nil cap, got %v", err)
	}
	// Zero is a legal cap: it forbids any decodable value transfer
	if err := store.SetMaxProposalValue(big.NewInt(0)); err != nil {
		t.Errorf("expected zero cap to be accepted, got %v", err)
	}
}

func TestConfigStore_Blacklist(t *testing.T) {
	feed := new(event.Feed)
	store := NewConfigStore(DefaultConfig(), feed)

	ch := make(chan Event, 4)
	sub := feed.Subscribe(ch)
	defer sub.Unsubscribe()

	addr := common.HexToAddress("0xEE")
	if store.IsBlacklisted(addr) {
		t.Fatal("fresh store should not blacklist anything")
	}

	if err := store.SetBlacklistedTarget(addr, true); err != nil {
		t.Fatalf("SetBlacklistedTarget failed: %v", err)
	}
	if !store.IsBlacklisted(addr) {
		t.Error("flag not observable after set")
	}
	evt := <-ch
	if evt.Type != EvtBlacklistUpdated || evt.Target != addr || !evt.Flag {
		t.Errorf("unexpected blacklist event: %+v", evt)
	}

	if err := store.SetBlacklistedTarget(addr, false); err != nil {
		t.Fatalf("clearing flag failed: %v", err)
	}
	if store.IsBlacklisted(addr) {
		t.Error("flag still set after clear")
	}
}

func TestConfigStore_SnapshotIsCopy(t *testing.T) {
	store := NewConfigStore(DefaultConfig(), new(event.Feed))

	snap := store.Snapshot()
	snap.MaxProposalValue.SetInt64(7)
	if store.MaxProposalValue().Int64() == 7 {
		t.Error("snapshot shares the stored big.Int")
	}
}
