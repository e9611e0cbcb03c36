package cli

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openBrowser opens a reference URL in the system browser. Failure is
// only reported, never fatal: the link is purely supplementary.
func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform")
	}
	if err != nil {
		fmt.Printf("❌ Failed to open browser: %v\n", err)
	}
}
