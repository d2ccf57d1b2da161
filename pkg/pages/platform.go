package pages

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is an operating-system tag used to select OS-specific
// command variants. Pages that apply everywhere live under
// PlatformCommon.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformOsx     Platform = "osx"
	PlatformSunOs   Platform = "sunos"
	PlatformWindows Platform = "windows"
	PlatformAndroid Platform = "android"
	PlatformFreeBsd Platform = "freebsd"
	PlatformNetBsd  Platform = "netbsd"
	PlatformOpenBsd Platform = "openbsd"
	PlatformCommon  Platform = "common"
)

// ParsePlatform converts a user-supplied platform name to a Platform.
// "macos" is accepted as an alias for "osx".
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "linux":
		return PlatformLinux, nil
	case "osx", "macos":
		return PlatformOsx, nil
	case "sunos":
		return PlatformSunOs, nil
	case "windows":
		return PlatformWindows, nil
	case "android":
		return PlatformAndroid, nil
	case "freebsd":
		return PlatformFreeBsd, nil
	case "netbsd":
		return PlatformNetBsd, nil
	case "openbsd":
		return PlatformOpenBsd, nil
	case "common":
		return PlatformCommon, nil
	default:
		return "", fmt.Errorf("unknown platform: %q", s)
	}
}

// DetectPlatform returns the platform matching the running OS, or
// PlatformCommon when the OS has no page directory of its own.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformOsx
	case "windows":
		return PlatformWindows
	case "android":
		return PlatformAndroid
	case "freebsd":
		return PlatformFreeBsd
	case "netbsd":
		return PlatformNetBsd
	case "openbsd":
		return PlatformOpenBsd
	case "solaris", "illumos":
		return PlatformSunOs
	default:
		return PlatformCommon
	}
}
