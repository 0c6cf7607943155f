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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

// GovernanceContract is the facade aggregating the configuration store,
// proposal registry, guard and execution engines behind role-gated entry
// points. It is the interface boundary for the external role, pause and
// call-dispatch primitives.
//
// Every mutating entry point checks all of its preconditions before the
// first write, so a failed call leaves no partial state behind.
type GovernanceContract struct {
	address  common.Address
	auth     Authorizer
	pauser   Pauser
	chain    ChainContext
	config   *ConfigStore
	registry *Registry
	guard    *Guard
	exec     *ExecutionEngine
	feed     event.Feed
}

// NewGovernanceContract wires a governance instance at the given address.
// A nil cfg falls back to DefaultConfig; a nil store falls back to an
// in-memory store.
func NewGovernanceContract(address common.Address, auth Authorizer, pauser Pauser, chain ChainContext, dispatcher Dispatcher, cfg *Config, store ProposalStore) (*GovernanceContract, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	registry, err := NewRegistry(store)
	if err != nil {
		return nil, err
	}

	g := &GovernanceContract{
		address:  address,
		auth:     auth,
		pauser:   pauser,
		chain:    chain,
		registry: registry,
	}
	g.config = NewConfigStore(cfg, &g.feed)
	g.guard = NewGuard(g.config, address)
	g.exec = NewExecutionEngine(registry, g.config, dispatcher)
	return g, nil
}

// Address returns the governance instance's own address, the one the guard
// protects against critical self-calls.
func (g *GovernanceContract) Address() common.Address {
	return g.address
}

// SubscribeEvents subscribes ch to all governance notifications
func (g *GovernanceContract) SubscribeEvents(ch chan<- Event) event.Subscription {
	return g.feed.Subscribe(ch)
}

// Propose validates and registers a new proposal. The caller needs the
// proposer role; the voting window is snapshotted from the configuration
// in effect now.
func (g *GovernanceContract) Propose(caller common.Address, description string, target common.Address, callData []byte) (uint64, error) {
	if g.pauser.Paused() {
		return 0, ErrPaused
	}
	if !g.auth.HasRole(RoleProposer, caller) {
		return 0, ErrUnauthorized
	}
	if err := g.guard.Validate(description, target, callData); err != nil {
		return 0, err
	}

	p, err := g.registry.Create(description, target, callData, caller, g.config.VotingPeriod(), g.chain.Now(), g.chain.BlockNumber())
	if err != nil {
		return 0, err
	}

	g.feed.Send(Event{Type: EvtProposalCreated, ProposalID: p.ID, Actor: caller, Target: target})
	log.Info("Governance proposal created", "id", p.ID, "proposer", caller, "target", target, "voteEnd", p.VoteEnd)
	return p.ID, nil
}

// Vote casts one vote by caller on the given proposal. Any address may
// vote; the registry enforces the one-vote-per-address rule.
func (g *GovernanceContract) Vote(caller common.Address, id uint64, support bool) error {
	if g.pauser.Paused() {
		return ErrPaused
	}

	receipt, err := g.registry.CastVote(id, caller, support, g.chain.Now())
	if err != nil {
		return err
	}

	g.feed.Send(Event{Type: EvtVoteCast, ProposalID: id, Actor: caller, Support: support})
	log.Debug("Governance vote cast", "id", id, "voter", caller, "support", receipt.Support)
	return nil
}

// ExecuteProposal advances the proposal by one step of the finalize/run
// protocol. The caller needs the executor role. A Defeated outcome is a
// successful call: the proposal lost, nothing failed.
func (g *GovernanceContract) ExecuteProposal(caller common.Address, id uint64) (Outcome, error) {
	if g.pauser.Paused() {
		return OutcomeNone, ErrPaused
	}
	if !g.auth.HasRole(RoleExecutor, caller) {
		return OutcomeNone, ErrUnauthorized
	}

	outcome, err := g.exec.Execute(id, g.chain.Now())
	switch outcome {
	case OutcomeQueued:
		g.feed.Send(Event{Type: EvtProposalQueued, ProposalID: id, Actor: caller})
		log.Info("Governance proposal queued", "id", id, "timelock", TimelockDelay)
	case OutcomeExecuted:
		g.feed.Send(Event{Type: EvtProposalExecuted, ProposalID: id, Actor: caller})
		log.Info("Governance proposal executed", "id", id)
	case OutcomeDefeated:
		log.Info("Governance proposal defeated", "id", id)
	}
	if errors.Is(err, ErrExecutionFailed) {
		log.Warn("Governance proposal execution failed", "id", id, "err", err)
	}
	return outcome, err
}

// SetVotingPeriodDuration updates the voting window length. Admin only.
func (g *GovernanceContract) SetVotingPeriodDuration(caller common.Address, d uint64) error {
	if !g.auth.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	return g.config.SetVotingPeriod(d)
}

// SetQuorumPercentage updates the quorum percentage. Admin only.
func (g *GovernanceContract) SetQuorumPercentage(caller common.Address, p uint64) error {
	if !g.auth.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	return g.config.SetQuorumPercentage(p)
}

// SetTotalVoters updates the eligible voter count. Admin only.
func (g *GovernanceContract) SetTotalVoters(caller common.Address, n uint64) error {
	if !g.auth.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	return g.config.SetTotalVoters(n)
}

// SetMaxProposalValue updates the proposal value cap. Admin only.
func (g *GovernanceContract) SetMaxProposalValue(caller common.Address, v *big.Int) error {
	if !g.auth.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	return g.config.SetMaxProposalValue(v)
}

// SetBlacklistedTarget sets or clears the blacklist flag for an address.
// Admin only.
func (g *GovernanceContract) SetBlacklistedTarget(caller common.Address, addr common.Address, flag bool) error {
	if !g.auth.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	return g.config.SetBlacklistedTarget(addr, flag)
}

// GetProposal returns a copy of the proposal with the given id
func (g *GovernanceContract) GetProposal(id uint64) (*Proposal, error) {
	return g.registry.Get(id)
}

// GetReceipt returns the vote receipt of voter on the given proposal, or
// nil if the voter has not voted
func (g *GovernanceContract) GetReceipt(id uint64, voter common.Address) (*VoteReceipt, error) {
	return g.registry.Receipt(id, voter)
}

// ConfigSnapshot returns a consistent copy of the scalar configuration
func (g *GovernanceContract) ConfigSnapshot() Config {
	return g.config.Snapshot()
}

// IsBlacklisted reports whether addr carries the blacklist flag
func (g *GovernanceContract) IsBlacklisted(addr common.Address) bool {
	return g.config.IsBlacklisted(addr)
}
