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

import "errors"

// Authorization errors
var (
	ErrUnauthorized = errors.New("caller is missing the required role")
	ErrPaused       = errors.New("governance is paused")
)

// Proposal validation errors
var (
	ErrEmptyDescription        = errors.New("proposal description is empty")
	ErrZeroAddressTarget       = errors.New("proposal target is the zero address")
	ErrEmptyCallData           = errors.New("proposal call data is empty")
	ErrBlacklistedTarget       = errors.New("proposal target is blacklisted")
	ErrCriticalFunctionCall    = errors.New("proposal targets a protected governance function")
	ErrValueExceedsMaximum     = errors.New("proposal value exceeds the configured maximum")
	ErrInvalidQuorumPercentage = errors.New("quorum percentage must not exceed 100")
	ErrInvalidConfigValue      = errors.New("configuration value must be positive")
)

// Voting errors
var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrVotingClosed     = errors.New("voting window is not open")
	ErrAlreadyVoted     = errors.New("voter has already voted on this proposal")
)

// Execution errors
var (
	ErrVotingNotEnded     = errors.New("voting period has not ended")
	ErrTimelockNotExpired = errors.New("timelock has not expired")
	ErrAlreadyExecuted    = errors.New("proposal already executed")
	ErrExecutionFailed    = errors.New("proposal execution failed")
	ErrProposalDefeated   = errors.New("proposal was defeated")
)
