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
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// mockAuthorizer is a role matrix for testing
type mockAuthorizer struct {
	roles map[common.Hash]map[common.Address]bool
}

func newMockAuthorizer() *mockAuthorizer {
	return &mockAuthorizer{roles: make(map[common.Hash]map[common.Address]bool)}
}

func (m *mockAuthorizer) grant(role common.Hash, addr common.Address) {
	if m.roles[role] == nil {
		m.roles[role] = make(map[common.Address]bool)
	}
	m.roles[role][addr] = true
}

func (m *mockAuthorizer) HasRole(role common.Hash, addr common.Address) bool {
	return m.roles[role][addr]
}

// mockPauser is a settable pause flag
type mockPauser struct {
	paused bool
}

func (m *mockPauser) Paused() bool {
	return m.paused
}

// fakeChain is a manually advanced time and block source
type fakeChain struct {
	now   uint64
	block uint64
}

func (c *fakeChain) Now() uint64         { return c.now }
func (c *fakeChain) BlockNumber() uint64 { return c.block }

func (c *fakeChain) advance(seconds uint64) {
	c.now += seconds
	c.block += seconds / 12
}

// mockDispatcher records target calls and returns a scripted result
type mockDispatcher struct {
	ret   []byte
	ok    bool
	calls int
	last  struct {
		target common.Address
		data   []byte
	}
}

func (m *mockDispatcher) Call(target common.Address, data []byte) ([]byte, bool) {
	m.calls++
	m.last.target = target
	m.last.data = data
	return m.ret, m.ok
}

type testEnv struct {
	contract   *GovernanceContract
	auth       *mockAuthorizer
	pauser     *mockPauser
	chain      *fakeChain
	dispatcher *mockDispatcher
}

var (
	govAddress = common.HexToAddress("0x00000000000000000000000000000000000000AA")
	proposer   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	executor   = common.HexToAddress("0x0000000000000000000000000000000000000002")
	admin      = common.HexToAddress("0x0000000000000000000000000000000000000003")
)

// newTestEnv builds a contract with a 1000s voting period, 20 voters and an
// 11% quorum, with the three roles granted to fixed addresses.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	auth := newMockAuthorizer()
	auth.grant(RoleProposer, proposer)
	auth.grant(RoleExecutor, executor)
	auth.grant(RoleAdmin, admin)

	pauser := &mockPauser{}
	chain := &fakeChain{now: 100000, block: 500}
	dispatcher := &mockDispatcher{ok: true}

	cfg := &Config{
		VotingPeriod:     1000,
		QuorumPercentage: 11,
		TotalVoters:      20,
		MaxProposalValue: big.NewInt(1e18),
	}
	contract, err := NewGovernanceContract(govAddress, auth, pauser, chain, dispatcher, cfg, nil)
	if err != nil {
		t.Fatalf("failed to build contract: %v", err)
	}
	return &testEnv{
		contract:   contract,
		auth:       auth,
		pauser:     pauser,
		chain:      chain,
		dispatcher: dispatcher,
	}
}

// propose submits a plain valid proposal and fails the test on error
func (e *testEnv) propose(t *testing.T) uint64 {
	t.Helper()
	target := common.HexToAddress("0x00000000000000000000000000000000000000BB")
	id, err := e.contract.Propose(proposer, "test proposal", target, []byte{0x01, 0x02, 0x03, 0x04})
	if err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	return id
}

// voter returns a distinct address for the nth test voter
func voter(n int) common.Address {
	return common.BytesToAddress([]byte{0x10, byte(n)})
}

func selectorFor(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:selectorLength]
}

// transferPayload encodes a transfer(address,uint256)-shaped payload
func transferPayload(t *testing.T, to common.Address, amount *big.Int) []byte {
	t.Helper()
	packed, err := valueTransferArgs.Pack(to, amount)
	if err != nil {
		t.Fatalf("failed to pack transfer args: %v", err)
	}
	return append(selectorFor("transfer(address,uint256)"), packed...)
}

// revertPayload encodes a solidity Error(string) revert result
func revertPayload(t *testing.T, reason string) []byte {
	t.Helper()
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		t.Fatalf("failed to build string type: %v", err)
	}
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	if err != nil {
		t.Fatalf("failed to pack revert reason: %v", err)
	}
	return append(selectorFor("Error(string)"), packed...)
}
