package media

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/config"
)

var errFFmpeg = errors.New("exit status 1")

// fakeTranscoder copies the input and appends a marker, or fails.
type fakeTranscoder struct {
	fail  bool
	calls int
	in    string
}

func (f *fakeTranscoder) Transcode(_ context.Context, in, out string) error {
	f.calls++
	f.in = in

	if f.fail {
		// a partial output must be removed as well
		_ = os.WriteFile(out, []byte("partial"), 0o600)

		return &ConversionError{Err: errFFmpeg, Output: "Invalid data found when processing input"}
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	return os.WriteFile(out, append(data, []byte("-mp3")...), 0o600)
}

func newTestConverter(t *testing.T, tc Transcoder) (*Converter, config.Media) {
	t.Helper()

	root := t.TempDir()
	cfg := config.Media{
		UploadDir:         filepath.Join(root, "uploads"),
		OutputDir:         filepath.Join(root, "outputs"),
		AllowedExtensions: []string{".m4a", ".wav", ".flac", ".ogg", ".aac", ".wma"},
	}

	return NewConverter(cfg, tc), cfg
}

func entries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()

	list, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	require.NoError(t, err)

	return list
}

func TestConvertSuccess(t *testing.T) {
	tc := &fakeTranscoder{}
	conv, cfg := newTestConverter(t, tc)

	res, err := conv.Convert(context.Background(), "My Song.WAV", strings.NewReader("riff"))
	require.NoError(t, err)

	assert.Equal(t, "converted_my song.mp3", res.DownloadName)
	assert.Equal(t, int64(len("riff-mp3")), res.Size)
	assert.Equal(t, ".wav", filepath.Ext(tc.in))

	body, err := io.ReadAll(res.File)
	require.NoError(t, err)
	assert.Equal(t, "riff-mp3", string(body))

	assert.Len(t, entries(t, cfg.UploadDir), 1)
	assert.Len(t, entries(t, cfg.OutputDir), 1)

	require.NoError(t, res.File.Close())
	require.NoError(t, res.File.Close())

	assert.Empty(t, entries(t, cfg.UploadDir))
	assert.Empty(t, entries(t, cfg.OutputDir))
}

func TestConvertFailureCleansUp(t *testing.T) {
	tc := &fakeTranscoder{fail: true}
	conv, cfg := newTestConverter(t, tc)

	res, err := conv.Convert(context.Background(), "clip.m4a", strings.NewReader("data"))
	require.ErrorIs(t, err, errFFmpeg)
	assert.Contains(t, err.Error(), "Invalid data")
	assert.Nil(t, res)

	assert.Empty(t, entries(t, cfg.UploadDir))
	assert.Empty(t, entries(t, cfg.OutputDir))
}

func TestConvertRejects(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      io.Reader
		wantErr  error
	}{
		{name: "no file", filename: "", src: nil, wantErr: ErrNoFile},
		{name: "mp3 is not accepted", filename: "song.mp3", src: strings.NewReader("x"), wantErr: ErrUnsupportedType},
		{name: "no extension", filename: "song", src: strings.NewReader("x"), wantErr: ErrUnsupportedType},
		{name: "executable", filename: "evil.exe", src: strings.NewReader("x"), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &fakeTranscoder{}
			conv, cfg := newTestConverter(t, tc)

			_, err := conv.Convert(context.Background(), tt.filename, tt.src)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Zero(t, tc.calls, "transcoder must not run")
			assert.Empty(t, entries(t, cfg.UploadDir))
		})
	}
}

func TestExtensionCaseInsensitive(t *testing.T) {
	conv, _ := newTestConverter(t, &fakeTranscoder{})

	for _, name := range []string{"a.FLAC", "b.Ogg", "c.aac", "d.WMA", "e.m4a"} {
		ext, err := conv.Extension(name)
		require.NoError(t, err, name)
		assert.Equal(t, strings.ToLower(filepath.Ext(name)), ext)
	}
}

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "converted_track.mp3", DownloadName("Track.flac"))
	assert.Equal(t, "converted_voice memo.mp3", DownloadName(`C:\Users\me\Voice Memo.m4a`))
	assert.Equal(t, "converted_a.b.mp3", DownloadName("a.b.ogg"))
}

func TestFFmpegArgs(t *testing.T) {
	f := FFmpeg{Path: "ffmpeg", Bitrate: "192k"}
	assert.Equal(t, []string{"-i", "in.wav", "-vn", "-ab", "192k", "out.mp3"}, f.Args("in.wav", "out.mp3"))
}

func TestFFmpegMissingBinary(t *testing.T) {
	f := FFmpeg{Path: filepath.Join(t.TempDir(), "no-ffmpeg"), Bitrate: "192k"}

	err := f.Transcode(context.Background(), "in.wav", "out.mp3")

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
}
