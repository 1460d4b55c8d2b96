package main

import (
	"os"
	"path/filepath"
	"testing"

	"cssel/misc"
)

func TestRemoveEmptyPanicLog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		keep    bool
	}{
		{name: "empty", content: "", keep: false},
		{name: "with crash", content: "panic: boom\n", keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			fname := filepath.Join(dir, misc.GetAppName()+"-panic.log")
			if err := os.WriteFile(fname, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			if err := removeEmptyPanicLog(filepath.Join(dir, "cssel.log")); err != nil {
				t.Fatalf("removeEmptyPanicLog() error = %v", err)
			}
			_, err := os.Stat(fname)
			if tt.keep && err != nil {
				t.Errorf("panic log removed: %v", err)
			}
			if !tt.keep && !os.IsNotExist(err) {
				t.Errorf("empty panic log kept, stat error = %v", err)
			}
		})
	}
}

func TestRemoveEmptyPanicLog_NoDestination(t *testing.T) {
	if err := removeEmptyPanicLog(""); err != nil {
		t.Errorf("removeEmptyPanicLog(\"\") error = %v", err)
	}
	if err := removeEmptyPanicLog(filepath.Join(t.TempDir(), "cssel.log")); err != nil {
		t.Errorf("missing panic log should not fail: %v", err)
	}
}

func TestHelpTemplates(t *testing.T) {
	for name, text := range map[string]string{
		"build":      buildHelp,
		"render":     renderHelp,
		"dumpconfig": dumpconfigHelp,
	} {
		if len(text) == 0 {
			t.Errorf("%s help is empty", name)
		}
	}
}
