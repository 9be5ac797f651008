package transpile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
)

// missingToolExit mirrors the shell convention for command-not-found.
const missingToolExit = 127

// runSegment compiles (where the language needs it) and executes the
// generated source, returning captured output and the exit code. A
// missing toolchain is reported as exit 127 with the tool named in the
// error, not as a hard failure.
func runSegment(ctx context.Context, lang, dir, path string) (stdout, stderr string, exit int, err error) {
	switch lang {
	case "go":
		return runCommand(ctx, dir, "go", "run", path)
	case "cpp":
		bin := filepath.Join(dir, "segment")
		out, errOut, code, cerr := runCommand(ctx, dir, "g++", "-o", bin, path)
		if cerr != nil || code != 0 {
			return out, errOut, code, cerr
		}
		return runCommand(ctx, dir, bin)
	case "rust":
		bin := filepath.Join(dir, "segment")
		out, errOut, code, cerr := runCommand(ctx, dir, "rustc", "-o", bin, path)
		if cerr != nil || code != 0 {
			return out, errOut, code, cerr
		}
		return runCommand(ctx, dir, bin)
	case "java":
		out, errOut, code, cerr := runCommand(ctx, dir, "javac", path)
		if cerr != nil || code != 0 {
			return out, errOut, code, cerr
		}
		return runCommand(ctx, dir, "java", "-cp", dir, JavaClassName)
	default:
		return "", "", 0, fmt.Errorf("no runner for language %q", lang)
	}
}

func runCommand(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, exit int, err error) {
	if _, lookErr := exec.LookPath(name); lookErr != nil {
		return "", "", missingToolExit, fmt.Errorf("toolchain %q not found: %w", name, lookErr)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return stdout, stderr, exitErr.ExitCode(), nil
		}
		return stdout, stderr, -1, runErr
	}
	return stdout, stderr, 0, nil
}
