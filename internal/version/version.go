// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

// Package version reports the version control state a binary was built from.
package version

import (
	"runtime/debug"
	"time"

	"github.com/openethereum/go-chainspec/params"
)

const ourPath = "github.com/openethereum/go-chainspec" // Path to our module

// These variables are set at build-time by the linker.
var gitCommit, gitDate string

// VCSInfo represents the git repository state.
type VCSInfo struct {
	Commit string // head commit hash
	Date   string // commit time in YYYYMMDD format
	Dirty  bool
}

// VCS returns version control information of the current executable.
func VCS() (VCSInfo, bool) {
	if gitCommit != "" {
		// Use information set by the build script if present.
		return VCSInfo{Commit: gitCommit, Date: gitDate}, true
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Path == ourPath {
		return buildInfoVCS(buildInfo)
	}
	return VCSInfo{}, false
}

// buildInfoVCS returns VCS information embedded by the go tool.
func buildInfoVCS(info *debug.BuildInfo) (s VCSInfo, ok bool) {
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			s.Commit = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				s.Dirty = true
			}
		case "vcs.time":
			t, err := time.Parse(time.RFC3339, v.Value)
			if err == nil {
				s.Date = t.Format("20060102")
			}
		}
	}
	if s.Commit != "" && s.Date != "" {
		ok = true
	}
	return
}

// String returns the version of the binary including commit and dirty state.
func String() string {
	vcs, _ := VCS()
	v := params.VersionWithCommit(vcs.Commit)
	if vcs.Date != "" {
		v += "-" + vcs.Date
	}
	if vcs.Dirty {
		v += " (dirty)"
	}
	return v
}
