// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// SurfaceThresholdMM is the depth above which a sample counts as "at the surface".
const SurfaceThresholdMM = 750
