package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"product-api/internal/model"

	"github.com/go-playground/validator/v10"
)

// record mirrors model.ProductInput with pointer fields so absent keys are detectable.
type record struct {
	Name     *string  `json:"name" validate:"required"`
	Details  *string  `json:"details" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Stock    *int32   `json:"stock" validate:"required"`
	Image    *string  `json:"image" validate:"required"`
	Category *string  `json:"category" validate:"required"`
}

var validate = validator.New()

// decodeRecords reads gzip-compressed NDJSON from r. source only labels errors.
func decodeRecords(ctx context.Context, r io.Reader, source string) ([]model.ProductInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records []model.ProductInput
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if lineNo%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid product record: %w", source, lineNo, err)
		}
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%s line %d: incomplete product record: %w", source, lineNo, err)
		}

		records = append(records, model.ProductInput{
			Name:     *rec.Name,
			Details:  *rec.Details,
			Price:    *rec.Price,
			Stock:    *rec.Stock,
			Image:    *rec.Image,
			Category: *rec.Category,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file %s: %w", source, err)
	}

	return records, nil
}
