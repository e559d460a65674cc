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

import (
	"runtime"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	for level, want := range map[DispatchLevel]string{
		DispatchFallback:  "fallback",
		DispatchSSE:       "sse",
		DispatchNEON:      "neon",
		DispatchLevel(99): "unknown",
	} {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	level := CurrentLevel()
	if level != DispatchFallback && level != DispatchSSE {
		t.Errorf("CurrentLevel() = %v, want fallback or sse", level)
	}
	if level == DispatchSSE && runtime.GOARCH != "amd64" {
		t.Errorf("sse backend compiled for %s", runtime.GOARCH)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}
	if CurrentWidth() != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", CurrentWidth())
	}
	if !HardwareSupported() {
		t.Errorf("HardwareSupported() = false for %v on host %v", level, HostLevel())
	}
	t.Logf("compiled=%v host=%v", level, HostLevel())
}

func TestHostLevel(t *testing.T) {
	host := HostLevel()
	switch runtime.GOARCH {
	case "amd64":
		if host != DispatchSSE && host != DispatchFallback {
			t.Errorf("HostLevel() = %v on amd64", host)
		}
	case "arm64":
		if host != DispatchNEON && host != DispatchFallback {
			t.Errorf("HostLevel() = %v on arm64", host)
		}
	default:
		if host != DispatchFallback {
			t.Errorf("HostLevel() = %v on %s", host, runtime.GOARCH)
		}
	}
}
