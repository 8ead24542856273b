package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestRealMainReturnsExitCode(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	defer log.SetOutput(os.Stderr)

	*configFlag = filepath.Join(dir, "missing.json")
	*debugFlag = true
	defer func() {
		*configFlag = ""
		*debugFlag = false
	}()

	// A bad config fails before the terminal is touched
	if code := realMain(); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, logDir, logFileName)); err != nil {
		t.Errorf("Expected debug log file: %v", err)
	}
}
