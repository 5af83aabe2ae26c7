// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"os/exec"
	"runtime"
)

// A MissingDependencyError reports that the platform has no viewer to
// display a rendered chart with.
type MissingDependencyError struct {
	Viewer string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("cannot display chart: no %q available on this system", e.Viewer)
}

// viewers returns the candidate opener commands for the current
// platform, in preference order.
func viewers() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"open"}}
	case "windows":
		return [][]string{{"rundll32", "url.dll,FileProtocolHandler"}}
	default:
		return [][]string{{"xdg-open"}, {"open"}}
	}
}

// Show opens the chart written at path in the platform viewer. The
// viewer is detached; Show does not wait for it to exit.
func Show(path string) error {
	var name string
	for _, v := range viewers() {
		name = v[0]
		bin, err := exec.LookPath(v[0])
		if err != nil {
			continue
		}
		args := append(v[1:], path)
		return exec.Command(bin, args...).Start()
	}
	return &MissingDependencyError{Viewer: name}
}
