package config

import (
	"errors"
	"fmt"
	"runtime"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// CheckPlatform fails fast on an operating system the desktop build does not target.
func CheckPlatform() (string, error) {
	return checkPlatform(runtime.GOOS)
}

func checkPlatform(goos string) (string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "Linux", nil
	case "windows":
		return "Windows", nil
	case "darwin":
		return "macOS", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
