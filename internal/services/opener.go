package services

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// openMethod is one way of handing a file to the desktop
type openMethod struct {
	name string
	cmd  string
	args []string
}

// Opener shows a result file in the default application of the desktop
type Opener struct {
	goos   string
	start  func(name string, args ...string) error
	logger *slog.Logger
}

// NewOpener creates an opener for the current platform
func NewOpener(logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		goos:   runtime.GOOS,
		start:  startCommand,
		logger: logger.With(slog.String("component", "opener")),
	}
}

// Open tries each platform method in turn and returns the last error when
// none of them could be started
func (o *Opener) Open(ctx context.Context, path string) error {
	var lastErr error

	for _, method := range openMethods(o.goos, path) {
		if err := ctx.Err(); err != nil {
			return err
		}

		o.logger.Debug("Attempting to open file",
			slog.String("method", method.name),
			slog.String("command", method.cmd),
			slog.String("path", path))

		if err := o.start(method.cmd, method.args...); err != nil {
			lastErr = err
			o.logger.Warn("Open method failed",
				slog.String("method", method.name),
				slog.String("error", err.Error()))
			continue
		}

		o.logger.Info("Result opened",
			slog.String("method", method.name),
			slog.String("path", path))
		return nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no open method for %s", o.goos)
	}
	return fmt.Errorf("failed to open %s: %w", path, lastErr)
}

// startCommand launches the command without waiting for the viewer to exit
func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// openMethods returns platform-specific file opening methods
func openMethods(goos, path string) []openMethod {
	switch goos {
	case "windows":
		return []openMethod{
			{name: "start_command", cmd: "cmd", args: []string{"/c", "start", "", path}},
			{name: "rundll32", cmd: "rundll32", args: []string{"url.dll,FileProtocolHandler", path}},
			{name: "explorer", cmd: "explorer", args: []string{path}},
		}
	case "darwin":
		return []openMethod{
			{name: "open", cmd: "open", args: []string{path}},
		}
	default:
		return []openMethod{
			{name: "xdg-open", cmd: "xdg-open", args: []string{path}},
			{name: "gio", cmd: "gio", args: []string{"open", path}},
		}
	}
}
