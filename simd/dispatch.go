// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// DispatchLevel identifies a vector instruction set. The backend behind
// Float32x4 is fixed when the binary is built; DispatchLevel only reports
// which one that is and what the host could run.
type DispatchLevel int

const (
	// DispatchFallback indicates the portable per-lane loops.
	DispatchFallback DispatchLevel = iota

	// DispatchSSE indicates 128-bit XMM registers on amd64, through
	// simd/archsimd (VEX encoded, so AVX is required at run time).
	DispatchSSE

	// DispatchNEON indicates ARM NEON (128-bit). It is reported for arm64
	// hosts but no backend is built on it yet.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchFallback:
		return "fallback"
	case DispatchSSE:
		return "sse"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// CurrentLevel returns the level of the backend compiled into this binary.
func CurrentLevel() DispatchLevel {
	return compiledLevel
}

// CurrentName returns the name of the compiled backend, e.g. "sse" or
// "fallback".
func CurrentName() string {
	return compiledLevel.String()
}

// CurrentWidth returns the register width in bytes of the default backend.
func CurrentWidth() int {
	var b Native
	return int(b.Alignment())
}

// HostLevel returns the best level the running CPU supports, whether or not
// this build uses it.
func HostLevel() DispatchLevel {
	return hostLevel()
}

// HardwareSupported reports whether the running CPU can execute the
// compiled backend. It is always true for the fallback.
func HardwareSupported() bool {
	return compiledLevel == DispatchFallback || compiledLevel == hostLevel()
}
