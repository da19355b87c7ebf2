package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser 打开默认浏览器
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// rundll32 比 cmd /c start 在 Windows 7 上更稳定
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}

// OpenBrowserWithFallback 带降级方案的浏览器打开
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}
