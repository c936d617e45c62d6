// Copyright akinovak
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package plonk

import "errors"

// ErrSynthesis is the generic synthesis error.  Chips signal this (typically
// wrapped with a descriptive annotation) whenever witness assignment cannot
// proceed, for example because a witness value is missing during proving.
// Chips never recover from it; the error propagates to the circuit's
// synthesize step.
var ErrSynthesis = errors.New("synthesis error")

// Failure embodies structured information about a failing constraint, as
// reported by the mock prover.
type Failure interface {
	// Provides a suitable error message
	Message() string
}
