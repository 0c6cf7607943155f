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
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// selectorLength is the number of leading payload bytes identifying the
// called function.
const selectorLength = 4

// criticalSignatures are the self-administration functions a proposal must
// never target directly. Configuration changes go through the admin path,
// not the execution pipeline.
var criticalSignatures = []string{
	"setVotingPeriodDuration(uint256)",
	"setQuorumPercentage(uint256)",
	"setTotalVoters(uint256)",
	"setMaxProposalValue(uint256)",
	"setBlacklistedTarget(address,bool)",
}

var criticalSelectors = func() map[[selectorLength]byte]string {
	m := make(map[[selectorLength]byte]string, len(criticalSignatures))
	for _, sig := range criticalSignatures {
		var sel [selectorLength]byte
		copy(sel[:], crypto.Keccak256([]byte(sig)))
		m[sel] = sig
	}
	return m
}()

// valueTransferArgs describes the (recipient, amount) call shape the value
// cap is able to decode.
var valueTransferArgs = func() abi.Arguments {
	addrType, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}
	uintType, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: addrType}, {Type: uintType}}
}()

// ProtectedFunction describes one entry of the critical-function set
type ProtectedFunction struct {
	Signature string
	Selector  [selectorLength]byte
}

// ProtectedFunctions returns the critical-function set, sorted by signature
func ProtectedFunctions() []ProtectedFunction {
	out := make([]ProtectedFunction, 0, len(criticalSelectors))
	for sel, sig := range criticalSelectors {
		out = append(out, ProtectedFunction{Signature: sig, Selector: sel})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Signature < out[j].Signature })
	return out
}

// Guard validates proposals before they are admitted to the registry. It is
// pure: no call mutates any state.
type Guard struct {
	config *ConfigStore
	self   common.Address // the governance contract's own address
}

// NewGuard creates a proposal guard protecting the governance instance at self
func NewGuard(config *ConfigStore, self common.Address) *Guard {
	return &Guard{config: config, self: self}
}

// Validate checks a proposed action against the admission policy. It returns
// nil if the proposal may be created, or the first violated rule.
func (g *Guard) Validate(description string, target common.Address, callData []byte) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if target == (common.Address{}) {
		return ErrZeroAddressTarget
	}
	if len(callData) == 0 {
		return ErrEmptyCallData
	}
	if g.config.IsBlacklisted(target) {
		return ErrBlacklistedTarget
	}
	if target == g.self && isCriticalCall(callData) {
		return ErrCriticalFunctionCall
	}
	// Best-effort value cap. Only the (address,uint256) transfer shape is
	// recognized; arbitrary payloads cannot be generically decoded, so
	// anything else skips the check.
	if value := decodeTransferValue(callData); value != nil {
		if value.Cmp(g.config.MaxProposalValue()) > 0 {
			return ErrValueExceedsMaximum
		}
	}
	return nil
}

// isCriticalCall reports whether the payload selects a protected function
func isCriticalCall(callData []byte) bool {
	if len(callData) < selectorLength {
		return false
	}
	var sel [selectorLength]byte
	copy(sel[:], callData[:selectorLength])
	_, ok := criticalSelectors[sel]
	return ok
}

// decodeTransferValue extracts the amount from a payload shaped like a
// two-argument (address,uint256) call. It returns nil when the payload does
// not match that shape.
func decodeTransferValue(callData []byte) *big.Int {
	if len(callData) != selectorLength+2*32 {
		return nil
	}
	values, err := valueTransferArgs.Unpack(callData[selectorLength:])
	if err != nil {
		return nil
	}
	amount, ok := values[1].(*big.Int)
	if !ok {
		return nil
	}
	return amount
}
