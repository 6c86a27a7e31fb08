package platform

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"digitime/internal/errors"
)

// xprintidleProvider reads the X11 idle time through the xprintidle helper.
type xprintidleProvider struct {
	path string
	run  func(path string) ([]byte, error)
}

func newIdleProvider() IdleProvider {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") && os.Getenv("DISPLAY") == "" {
		return unsupportedIdleProvider{}
	}
	path, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedIdleProvider{}
	}
	return &xprintidleProvider{path: path, run: runCommand}
}

func runCommand(path string) ([]byte, error) {
	return exec.Command(path).Output()
}

func (provider *xprintidleProvider) IdleDuration() (time.Duration, error) {
	output, err := provider.run(provider.path)
	if err != nil {
		return 0, errors.Wrap(err, "xprintidle")
	}
	return parseIdleMillis(string(output))
}

func parseIdleMillis(value string) (time.Duration, error) {
	idleMillis, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse idle milliseconds")
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}
