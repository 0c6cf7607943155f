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
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

// ConfigStore holds the runtime-mutable governance parameters and the
// per-target blacklist. Every mutation is an atomic read-modify-notify
// operation; access control is enforced by the contract facade, not here.
type ConfigStore struct {
	mu               sync.RWMutex
	votingPeriod     uint64
	quorumPercentage uint64
	totalVoters      uint64
	maxProposalValue *big.Int
	blacklist        map[common.Address]bool
	feed             *event.Feed
}

// NewConfigStore creates a configuration store seeded from cfg. A nil cfg
// falls back to DefaultConfig.
func NewConfigStore(cfg *Config, feed *event.Feed) *ConfigStore {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &ConfigStore{
		votingPeriod:     cfg.VotingPeriod,
		quorumPercentage: cfg.QuorumPercentage,
		totalVoters:      cfg.TotalVoters,
		maxProposalValue: new(big.Int).Set(cfg.MaxProposalValue),
		blacklist:        make(map[common.Address]bool),
		feed:             feed,
	}
}

// SetVotingPeriod updates the voting window length in seconds
func (c *ConfigStore) SetVotingPeriod(d uint64) error {
	if d == 0 {
		return ErrInvalidConfigValue
	}
	c.mu.Lock()
	old := c.votingPeriod
	c.votingPeriod = d
	c.mu.Unlock()

	c.feed.Send(Event{
		Type:     EvtVotingPeriodUpdated,
		OldValue: new(big.Int).SetUint64(old),
		NewValue: new(big.Int).SetUint64(d),
	})
	return nil
}

// SetQuorumPercentage updates the required participation percentage.
// Values above 100 are rejected: a quorum no electorate can reach is
// configuration damage, not policy.
func (c *ConfigStore) SetQuorumPercentage(p uint64) error {
	if p > 100 {
		return ErrInvalidQuorumPercentage
	}
	c.mu.Lock()
	old := c.quorumPercentage
	c.quorumPercentage = p
	c.mu.Unlock()

	c.feed.Send(Event{
		Type:     EvtQuorumPercentageUpdated,
		OldValue: new(big.Int).SetUint64(old),
		NewValue: new(big.Int).SetUint64(p),
	})
	return nil
}

// SetTotalVoters updates the size of the eligible voter population
func (c *ConfigStore) SetTotalVoters(n uint64) error {
	if n == 0 {
		return ErrInvalidConfigValue
	}
	c.mu.Lock()
	old := c.totalVoters
	c.totalVoters = n
	c.mu.Unlock()

	c.feed.Send(Event{
		Type:     EvtTotalVotersUpdated,
		OldValue: new(big.Int).SetUint64(old),
		NewValue: new(big.Int).SetUint64(n),
	})
	return nil
}

// SetMaxProposalValue updates the cap on the value a proposal may move
func (c *ConfigStore) SetMaxProposalValue(v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return ErrInvalidConfigValue
	}
	c.mu.Lock()
	old := c.maxProposalValue
	c.maxProposalValue = new(big.Int).Set(v)
	c.mu.Unlock()

	c.feed.Send(Event{
		Type:     EvtMaxProposalValueUpdated,
		OldValue: old,
		NewValue: new(big.Int).Set(v),
	})
	return nil
}

// SetBlacklistedTarget sets or clears the blacklist flag for an address
func (c *ConfigStore) SetBlacklistedTarget(addr common.Address, flag bool) error {
	c.mu.Lock()
	if flag {
		c.blacklist[addr] = true
	} else {
		delete(c.blacklist, addr)
	}
	c.mu.Unlock()

	c.feed.Send(Event{
		Type:   EvtBlacklistUpdated,
		Target: addr,
		Flag:   flag,
	})
	return nil
}

// VotingPeriod returns the current voting window length in seconds
func (c *ConfigStore) VotingPeriod() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.votingPeriod
}

// QuorumPercentage returns the current quorum percentage
func (c *ConfigStore) QuorumPercentage() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quorumPercentage
}

// TotalVoters returns the current eligible voter count
func (c *ConfigStore) TotalVoters() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalVoters
}

// MaxProposalValue returns a copy of the current proposal value cap
func (c *ConfigStore) MaxProposalValue() *big.Int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return new(big.Int).Set(c.maxProposalValue)
}

// IsBlacklisted reports whether addr carries the blacklist flag
func (c *ConfigStore) IsBlacklisted(addr common.Address) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blacklist[addr]
}

// Snapshot returns a consistent copy of the scalar configuration
func (c *ConfigStore) Snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Config{
		VotingPeriod:     c.votingPeriod,
		QuorumPercentage: c.quorumPercentage,
		TotalVoters:      c.totalVoters,
		MaxProposalValue: new(big.Int).Set(c.maxProposalValue),
	}
}
