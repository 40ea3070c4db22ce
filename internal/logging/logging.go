package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	Dir      = "logs"
	FileName = "bounce.log"
)

// Setup points the standard logger at logs/bounce.log when debug is set,
// otherwise at fallback. The returned file, if any, must be closed by the caller.
func Setup(debug bool, fallback io.Writer) *os.File {
	if !debug {
		log.SetOutput(fallback)
		return nil
	}

	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.SetOutput(fallback)
		log.Printf("Failed to create log directory: %v", err)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(Dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(fallback)
		log.Printf("Failed to open log file: %v", err)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
