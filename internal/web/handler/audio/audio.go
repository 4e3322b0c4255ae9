// Package audio serves the audio to mp3 converter.
package audio

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/metrics"
	"github.com/KittyCore/portfolio/internal/web/flash"
	"github.com/KittyCore/portfolio/internal/web/handler"
	"github.com/KittyCore/portfolio/internal/web/navigation"
)

const (
	// Path is the converter page.
	Path = "/audio-converter"

	// ConvertPath receives the upload.
	ConvertPath = "/convert"

	// FormField is the multipart field carrying the file.
	FormField = "audio"

	// TemplateName is the name of the converter template.
	TemplateName = "audio"

	msgNoFile      = "No file uploaded!"
	msgInvalidType = "Invalid file type. Please upload an audio file."
)

// ErrNoConverter is returned by Init without a converter.
var ErrNoConverter = errors.New("converter is nil")

// Service is the audio handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the audio handler.
var Handler = Service{}

// Init initializes the audio handler.
func (s *Service) Init(router fiber.Router, deps *handler.Deps) error {
	if err := deps.Check(router); err != nil {
		return err
	}

	if deps.Converter == nil {
		return ErrNoConverter
	}

	s.deps = deps

	router.Get(Path, s.Get)
	router.Post(ConvertPath, s.Convert)

	return nil
}

// Get renders the upload form.
func (s *Service) Get(c *fiber.Ctx) error {
	return handler.Render(c, TemplateName, navigation.Public("audio", "Audio Converter"), fiber.Map{
		"Extensions": s.deps.Cfg.Media.AllowedExtensions,
	})
}

func reject(c *fiber.Ctx, msg string) error {
	metrics.Conversions.WithLabelValues(metrics.ResultRejected).Inc()
	flash.Error(c, msg)

	return c.Redirect(Path)
}

// Convert transcodes the uploaded file and streams the mp3 back as a download.
// The temporary files are removed once the body was written.
func (s *Service) Convert(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil || fh.Filename == "" {
		return reject(c, msgNoFile)
	}

	if _, err = s.deps.Converter.Extension(fh.Filename); err != nil {
		return reject(c, msgInvalidType)
	}

	src, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Msg("can't open upload")
		return reject(c, msgNoFile)
	}

	defer func() { _ = src.Close() }()

	// fasthttp does not cancel on client disconnect, the timeout bounds a stuck ffmpeg
	ctx := c.UserContext()

	if timeout := s.deps.Cfg.Media.Timeout; timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := s.deps.Converter.Convert(ctx, fh.Filename, src)
	metrics.Conversions.WithLabelValues(metrics.Result(err)).Inc()

	if err != nil {
		log.Error().Err(err).Str("file", fh.Filename).Msg("conversion failed")
		flash.Error(c, "Conversion failed: "+err.Error())

		return c.Redirect(Path)
	}

	log.Info().Str("file", fh.Filename).Int64("size", res.Size).Msg("conversion done")

	c.Attachment(res.DownloadName)
	c.Response().SetBodyStream(res.File, int(res.Size))

	return nil
}
