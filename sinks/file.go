package sinks

import (
	"fmt"
	"os"
	"sync"
)

// FileOptions configures a File sink.
type FileOptions struct {
	// SyncEach forces an fsync after every emit. Durable but slow; the
	// default trusts the OS page cache.
	SyncEach bool
	// Mode is the permission set for a newly created file; 0 means 0644.
	Mode os.FileMode
}

// File opens (or creates) path in append mode and returns a sink writing to
// it. The caller owns the sink's lifecycle and should Close it on shutdown.
func File(path string, opts FileOptions) (*FileSink, error) {
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &FileSink{f: f, syncEach: opts.SyncEach}, nil
}

// FileSink appends emissions to a single file.
type FileSink struct {
	mu       sync.Mutex
	f        *os.File
	syncEach bool
}

// Emit appends p to the file.
func (s *FileSink) Emit(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.f.Write(p); err != nil {
		return err
	}
	if s.syncEach {
		return s.f.Sync()
	}
	return nil
}

// Sync flushes buffered file data to stable storage.
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Sync()
}

// Close syncs and closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.Sync(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
