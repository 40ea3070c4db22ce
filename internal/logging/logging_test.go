package logging

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupDisabledUsesFallback(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f := Setup(false, io.Discard)
	if f != nil {
		t.Error("Expected nil log file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}

	var buf bytes.Buffer
	Setup(false, &buf)
	log.Print("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("fallback did not receive output: %q", buf.String())
	}
}

func TestSetupDebugWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFlags(log.LstdFlags)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	f := Setup(true, io.Discard)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, Dir, FileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}
