package cmdtest

import (
	"bytes"
	"io"
	"os"
)

type result struct {
	stdout   string
	stderr   string
	exitCode int
	panicked any
}

// capture runs fn with os.Args, the given environment and stdin in place,
// collecting everything written to os.Stdout and os.Stderr. Process state is
// restored before it returns.
func capture(args []string, env map[string]string, stdin string, fn func() int) (result, error) {
	var res result

	rIn, wIn, err := os.Pipe()
	if err != nil {
		return res, err
	}
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return res, err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return res, err
	}

	// 保存现场
	oldArgs, oldStdin, oldStdout, oldStderr := os.Args, os.Stdin, os.Stdout, os.Stderr
	type envSnapshot struct {
		value  string
		exists bool
	}
	oldEnv := make(map[string]envSnapshot, len(env))
	for k, v := range env {
		val, exists := os.LookupEnv(k)
		oldEnv[k] = envSnapshot{value: val, exists: exists}
		os.Setenv(k, v)
	}
	os.Args, os.Stdin, os.Stdout, os.Stderr = args, rIn, wOut, wErr

	go func() {
		_, _ = io.WriteString(wIn, stdin)
		_ = wIn.Close()
	}()
	done := make(chan struct{}, 2)
	drain := func(r io.Reader, dst *string) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
		done <- struct{}{}
	}
	go drain(rOut, &res.stdout)
	go drain(rErr, &res.stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				res.panicked = r
				res.exitCode = -1
			}
		}()
		res.exitCode = fn()
	}()

	// 恢复现场
	_ = wOut.Close()
	_ = wErr.Close()
	<-done
	<-done
	_ = rOut.Close()
	_ = rErr.Close()
	_ = rIn.Close()

	os.Args, os.Stdin, os.Stdout, os.Stderr = oldArgs, oldStdin, oldStdout, oldStderr
	for k, snap := range oldEnv {
		if snap.exists {
			os.Setenv(k, snap.value)
		} else {
			os.Unsetenv(k)
		}
	}
	return res, nil
}
