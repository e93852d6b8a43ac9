package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	minCodeLength = 4
	maxCodeLength = 20
)

// readCouponSet parses a gzipped stream of "CODE,PERCENT" lines.
// Blank lines are ignored; malformed lines are skipped and counted.
func readCouponSet(ctx context.Context, r io.Reader, source string, logger zerolog.Logger) (CouponSet, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	set := NewMapCouponSet(1024).(*mapCouponSet)

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	skipped := 0
	for scanner.Scan() {
		if lineCount%10_000 == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Str("source", source).Msg("coupon loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		set.Add(c)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Str("source", source).Msg("error reading coupon file")
		return nil, fmt.Errorf("error reading coupon file %s: %w", source, err)
	}

	if skipped > 0 {
		logger.Warn().Str("source", source).Int("skipped_lines", skipped).Msg("malformed coupon lines skipped")
	}

	return set, nil
}

func parseLine(line string) (Coupon, bool) {
	code, rawPercent, found := strings.Cut(line, ",")
	if !found {
		return Coupon{}, false
	}

	code = normaliseCode(code)
	if !validCodeLength(code) {
		return Coupon{}, false
	}

	percent, err := strconv.ParseFloat(strings.TrimSpace(rawPercent), 64)
	if err != nil || percent <= 0 || percent > 100 {
		return Coupon{}, false
	}

	return Coupon{Code: code, Percent: percent}, true
}

func normaliseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validCodeLength(code string) bool {
	return len(code) >= minCodeLength && len(code) <= maxCodeLength
}
