package media

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Kind selects which stream of a video is downloaded.
type Kind int

const (
	// KindVideo is the best muxed audio and video stream.
	KindVideo Kind = iota
	// KindAudio is the best audio-only stream.
	KindAudio
)

// StreamClient is the part of the YouTube stream client used here.
type StreamClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Transcoder converts a downloaded audio file to mp3.
type Transcoder interface {
	ToMP3(ctx context.Context, src, dst string) error
}

// Download is a file written to the output directory.
type Download struct {
	Path  string
	Title string
	Link  string
}

// Downloader stores streams under one output directory.
type Downloader struct {
	client     StreamClient
	transcoder Transcoder
	outputDir  string
	logger     *zerolog.Logger
}

// NewDownloader creates a Downloader. A nil transcoder keeps audio in its
// native container.
func NewDownloader(client StreamClient, transcoder Transcoder, outputDir string, logger *zerolog.Logger) *Downloader {
	return &Downloader{
		client:     client,
		transcoder: transcoder,
		outputDir:  outputDir,
		logger:     logger,
	}
}

// Download fetches the stream of the requested kind for videoID.
func (d *Downloader) Download(ctx context.Context, videoID string, kind Kind) (*Download, error) {
	video, err := d.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, upstream.Wrap(serviceYouTube, err)
	}

	format, ext := pickFormat(video.Formats, kind)
	if format == nil {
		if kind == KindAudio {
			return nil, errors.New("no audio stream found")
		}
		return nil, errors.New("no muxed stream found")
	}

	if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	tmp, err := d.fetch(ctx, video, format)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp)

	if kind == KindAudio && d.transcoder != nil {
		ext = ".mp3"
	}
	dst := filepath.Join(d.outputDir, fileName(video.Title, video.ID, ext))

	if ext == ".mp3" {
		if err := d.transcoder.ToMP3(ctx, tmp, dst); err != nil {
			return nil, errors.Wrap(err, "failed to convert audio to mp3")
		}
	} else if err := os.Rename(tmp, dst); err != nil {
		return nil, errors.Wrap(err, "failed to store download")
	}

	d.logger.Info().
		Str("video_id", video.ID).
		Str("file", dst).
		Int("itag", format.ItagNo).
		Msg("media downloaded")

	return &Download{
		Path:  dst,
		Title: video.Title,
		Link:  WatchURL(video.ID),
	}, nil
}

// fetch copies the stream into a temporary file inside outputDir.
func (d *Downloader) fetch(ctx context.Context, video *youtube.Video, format *youtube.Format) (string, error) {
	stream, _, err := d.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", upstream.Wrap(serviceYouTube, err)
	}
	defer stream.Close()

	f, err := os.CreateTemp(d.outputDir, ".download-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary file")
	}

	if _, err := io.Copy(f, stream); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", upstream.Wrap(serviceYouTube, errors.Wrap(err, "stream interrupted"))
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "failed to write download")
	}
	return f.Name(), nil
}

// pickFormat returns the highest bitrate format of the wanted kind and the
// file extension it is stored with.
func pickFormat(formats youtube.FormatList, kind Kind) (*youtube.Format, string) {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if !matches(f, kind) {
			continue
		}
		if best == nil || f.Bitrate > best.Bitrate {
			best = f
		}
	}
	if best == nil {
		return nil, ""
	}

	if kind == KindVideo {
		return best, ".mp4"
	}
	if strings.HasPrefix(best.MimeType, "audio/webm") {
		return best, ".webm"
	}
	return best, ".m4a"
}

func matches(f *youtube.Format, kind Kind) bool {
	switch kind {
	case KindAudio:
		return strings.HasPrefix(f.MimeType, "audio/")
	default:
		return strings.HasPrefix(f.MimeType, "video/mp4") && f.AudioChannels > 0 && f.QualityLabel != ""
	}
}

// FFmpeg transcodes with an ffmpeg binary.
type FFmpeg struct {
	Path string
}

func (f FFmpeg) ToMP3(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, f.Path,
		"-hide_banner", "-loglevel", "error", "-y",
		"-i", src,
		"-vn", "-codec:a", "libmp3lame", "-q:a", "2",
		dst,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "ffmpeg: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
