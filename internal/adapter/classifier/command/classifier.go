package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/infrastructure/logger"
	"github.com/anicla/anicla/internal/port"
)

var ErrNotConfigured = errors.New("no classifier command configured")

const DefaultTimeout = 2 * time.Minute

// Locator resolves a content hash to the stored original.
type Locator interface {
	OriginalPath(hash string) (string, error)
}

// Classifier runs an external program once per classification:
//
//	<command...> <path to original>
//
// with ANICLA_MEDIA_KIND and ANICLA_MEDIA_HASH set in its environment.
// The first non-empty line of stdout is the label.
type Classifier struct {
	argv    []string
	locator Locator
	timeout time.Duration
}

func NewClassifier(commandLine string, locator Locator, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Classifier{
		argv:    strings.Fields(commandLine),
		locator: locator,
		timeout: timeout,
	}
}

// Available reports whether the configured program can be started.
func (c *Classifier) Available() error {
	if len(c.argv) == 0 {
		return ErrNotConfigured
	}
	if _, err := exec.LookPath(c.argv[0]); err != nil {
		return fmt.Errorf("classifier %s: %w", c.argv[0], err)
	}
	return nil
}

func (c *Classifier) Classify(ctx context.Context, hash string, kind domain.MediaKind) (string, error) {
	if len(c.argv) == 0 {
		return "", domain.NewClassifierError("classify", ErrNotConfigured)
	}

	path, err := c.locator.OriginalPath(hash)
	if err != nil {
		return "", domain.NewClassifierError("classify", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string{}, c.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, c.argv[0], args...)
	cmd.Env = append(os.Environ(),
		"ANICLA_MEDIA_KIND="+string(kind),
		"ANICLA_MEDIA_HASH="+hash,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", domain.NewClassifierError("classify", err)
	}

	label := firstLine(stdout.Bytes())
	if label == "" {
		return "", domain.NewClassifierError("classify", errors.New("classifier printed no label"))
	}

	logger.Debug.Printf("classifier: %s -> %s in %s", hash, logger.SanitizeForLog(label), time.Since(start).Round(time.Millisecond))
	return label, nil
}

func firstLine(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}

var _ port.Classifier = (*Classifier)(nil)
