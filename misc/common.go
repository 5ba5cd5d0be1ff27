package misc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Loggers shared by every package of glowquad.
//
// Tests silence them with SetOutput(io.Discard).
var (
	ErrLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	WarnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	InfoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

// SilenceLoggers sends every logger to w and returns a function
// that restores the previous outputs.
func SilenceLoggers(w io.Writer) (restore func()) {
	errOut := ErrLogger.Writer()
	warnOut := WarnLogger.Writer()
	infoOut := InfoLogger.Writer()

	ErrLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	InfoLogger.SetOutput(w)

	return func() {
		ErrLogger.SetOutput(errOut)
		WarnLogger.SetOutput(warnOut)
		InfoLogger.SetOutput(infoOut)
	}
}

func GetScriptName() string {
	_, scriptName := filepath.Split(os.Args[0])
	if _, scriptFile, _, ok := runtime.Caller(1); ok {
		_, scriptName = filepath.Split(scriptFile)
	}

	return scriptName
}

func CheckFileExists(path string) (bool, error) {
	info, err := os.Stat(path)

	if err == nil {
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}

// Checks if executable is in PATH.
//
// Executables sitting next to the program but not in PATH are not found.
func CheckExeExists(exe string) bool {
	_, err := exec.LookPath(exe)
	return err == nil
}

func CopyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
