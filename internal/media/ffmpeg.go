package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

const maxStderr = 512

// FFmpeg runs the ffmpeg binary.
type FFmpeg struct {
	Path    string
	Bitrate string
}

// ConversionError carries the tail of ffmpeg's output.
type ConversionError struct {
	Err    error
	Output string
}

func (e *ConversionError) Error() string {
	if e.Output == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Output)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Args returns the ffmpeg arguments converting in to out.
func (f FFmpeg) Args(in, out string) []string {
	return []string{"-i", in, "-vn", "-ab", f.Bitrate, out}
}

// Transcode implements Transcoder. The process is killed when ctx ends.
func (f FFmpeg) Transcode(ctx context.Context, in, out string) error {
	cmd := exec.CommandContext(ctx, f.Path, f.Args(in, out)...) //nolint:gosec

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		tail := stderr.Bytes()
		if len(tail) > maxStderr {
			tail = tail[len(tail)-maxStderr:]
		}

		return &ConversionError{Err: err, Output: string(bytes.TrimSpace(tail))}
	}

	return nil
}
