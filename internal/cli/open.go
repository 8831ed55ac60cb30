package cli

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openTarget launches the platform opener for a file path or URL. The child
// process is not waited on.
func openTarget(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching opener: %w", err)
	}
	return nil
}
