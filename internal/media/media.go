// Package media converts uploaded audio files to mp3 with ffmpeg.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/config"
)

var (
	// ErrUnsupportedType is returned for an extension outside the allow list.
	ErrUnsupportedType = errors.New("invalid file type")
	// ErrNoFile is returned when no upload was given.
	ErrNoFile = errors.New("no file uploaded")
)

// Transcoder turns the audio file in into an mp3 at out.
type Transcoder interface {
	Transcode(ctx context.Context, in, out string) error
}

// Result is a finished conversion. Closing File removes both temporary files.
type Result struct {
	File         io.ReadCloser
	Size         int64
	DownloadName string
}

// Converter stores an upload, transcodes it and hands the output back.
type Converter struct {
	cfg config.Media
	tc  Transcoder
}

// NewConverter returns a converter working in the configured directories.
func NewConverter(cfg config.Media, tc Transcoder) *Converter {
	return &Converter{cfg: cfg, tc: tc}
}

// Extension returns the lower cased extension of filename if it is allowed.
func (c *Converter) Extension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !slices.Contains(c.cfg.AllowedExtensions, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	return ext, nil
}

// DownloadName is the attachment name offered for the converted upload.
func DownloadName(filename string) string {
	base := strings.ToLower(path.Base(strings.ReplaceAll(filename, `\`, "/")))

	return "converted_" + strings.TrimSuffix(base, path.Ext(base)) + ".mp3"
}

// Convert validates filename, writes src below UploadDir and transcodes it into OutputDir.
// On error no temporary file is left behind.
func (c *Converter) Convert(ctx context.Context, filename string, src io.Reader) (*Result, error) {
	if src == nil || filename == "" {
		return nil, ErrNoFile
	}

	ext, err := c.Extension(filename)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{c.cfg.UploadDir, c.cfg.OutputDir} {
		if err = os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	in := filepath.Join(c.cfg.UploadDir, uuid.NewString()+ext)
	out := filepath.Join(c.cfg.OutputDir, uuid.NewString()+".mp3")

	if err = writeFile(in, src); err != nil {
		remove(in, out)

		return nil, err
	}

	if err = c.tc.Transcode(ctx, in, out); err != nil {
		remove(in, out)

		return nil, err
	}

	f, err := os.Open(out) //nolint:gosec
	if err != nil {
		remove(in, out)

		return nil, fmt.Errorf("failed to open converted file: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		remove(in, out)

		return nil, fmt.Errorf("failed to stat converted file: %w", err)
	}

	return &Result{
		File:         &cleanupFile{File: f, paths: []string{in, out}},
		Size:         st.Size(),
		DownloadName: DownloadName(filename),
	}, nil
}

func writeFile(path string, src io.Reader) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600) //nolint:mnd,gosec
	if err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()

		return fmt.Errorf("failed to store upload: %w", err)
	}

	if err = dst.Close(); err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	return nil
}

func remove(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", p).Msg("can't remove temporary file")
		}
	}
}

// cleanupFile removes the temporary files once the response body was written.
type cleanupFile struct {
	*os.File
	paths []string
	done  bool
}

func (f *cleanupFile) Close() error {
	if f.done {
		return nil
	}

	f.done = true
	err := f.File.Close()

	remove(f.paths...)

	return err //nolint:wrapcheck
}
