package dump

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rmrk-indexer/internal/adapter"
	"github.com/feral-file/ff-rmrk-indexer/internal/domain"
	"github.com/feral-file/ff-rmrk-indexer/internal/messaging"
)

// maxLineSize bounds a single extrinsic line, utility batches can carry large remarks
const maxLineSize = 16 * 1024 * 1024

// Config holds the configuration for the extrinsic dump subscriber
type Config struct {
	// Path of the JSON-lines dump, "-" reads stdin
	Path string
}

type subscriber struct {
	config Config
	json   adapter.JSON
	logger *zap.Logger
	file   io.ReadCloser
}

// NewSubscriber opens a JSON-lines extrinsic dump, one domain.Extrinsic per line in chain order
func NewSubscriber(cfg Config, fs adapter.FileSystem, jsonAdapter adapter.JSON, logger *zap.Logger) (messaging.Subscriber, error) {
	file, err := fs.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open extrinsic dump %s: %w", cfg.Path, err)
	}

	return &subscriber{
		config: cfg,
		json:   jsonAdapter,
		logger: logger,
		file:   file,
	}, nil
}

// SubscribeExtrinsics reads the dump line by line, skipping blank lines and blocks before fromBlock
func (s *subscriber) SubscribeExtrinsics(ctx context.Context, fromBlock uint64, handler messaging.ExtrinsicHandler) error {
	scanner := bufio.NewScanner(s.file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	var last domain.Position
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var extrinsic domain.Extrinsic
		if err := s.json.Unmarshal([]byte(text), &extrinsic); err != nil {
			return fmt.Errorf("failed to decode extrinsic at line %d: %w", line, err)
		}

		if extrinsic.BlockNumber < fromBlock {
			continue
		}

		position := extrinsic.Position()
		if !last.IsZero() && !last.Less(position) {
			s.logger.Warn("Extrinsic out of chain order",
				zap.Int("line", line),
				zap.String("position", position.String()),
				zap.String("previous", last.String()),
			)
		}
		last = position

		if err := handler(&extrinsic); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read extrinsic dump: %w", err)
	}

	return nil
}

// Close closes the dump file
func (s *subscriber) Close() {
	if s.file == nil {
		return
	}

	if err := s.file.Close(); err != nil {
		s.logger.Warn("Failed to close extrinsic dump", zap.Error(err))
	}
}
