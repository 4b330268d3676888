package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains null byte")
)

const thumbnailWidth = 320

func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrInvalidPath
	}
	return nil
}

type Converter struct {
	ffmpegBin  string
	ffprobeBin string
}

func NewConverter(ffmpegBin, ffprobeBin string) *Converter {
	if ffmpegBin == "" {
		ffmpegBin = "ffmpeg"
	}
	if ffprobeBin == "" {
		ffprobeBin = "ffprobe"
	}
	return &Converter{ffmpegBin: ffmpegBin, ffprobeBin: ffprobeBin}
}

// Available reports whether both binaries can be found.
func (c *Converter) Available() error {
	for _, bin := range []string{c.ffmpegBin, c.ffprobeBin} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found: %w", bin, err)
		}
	}
	return nil
}

// Thumbnail writes a scaled JPEG frame of inputPath to outputPath. Videos
// are sampled one second in; images use their only frame.
func (c *Converter) Thumbnail(ctx context.Context, inputPath, outputPath string, isVideo bool) error {
	if err := validatePath(inputPath); err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	err := c.run(ctx, c.ffmpegBin, thumbnailArgs(inputPath, outputPath, isVideo))
	if err != nil && isVideo {
		// Clips shorter than the seek offset produce no frame.
		err = c.run(ctx, c.ffmpegBin, thumbnailArgs(inputPath, outputPath, false))
	}
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	return nil
}

func thumbnailArgs(inputPath, outputPath string, seek bool) []string {
	args := []string{"-v", "error"}
	if seek {
		args = append(args, "-ss", "00:00:01")
	}
	return append(args,
		"-i", inputPath,
		"-vframes", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", thumbnailWidth),
		"-f", "image2",
		"-y",
		outputPath,
	)
}

func (c *Converter) Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error) {
	if err := validatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	}
	cmd := exec.CommandContext(ctx, c.ffprobeBin, args...)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbe(output)
}

func parseProbe(output []byte) (*domain.ProbeResult, error) {
	var probe domain.ProbeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if probe.VideoStream() == nil {
		return nil, fmt.Errorf("no video stream found")
	}
	return &probe, nil
}

func (c *Converter) run(ctx context.Context, bin string, args []string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", bin, err, msg)
		}
		return fmt.Errorf("%s: %w", bin, err)
	}
	return nil
}

var _ port.MediaConverter = (*Converter)(nil)
