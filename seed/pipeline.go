package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/acksell/ddblocal/internal/fanout"
)

// MaxBatchSize is DynamoDB's per-request item limit for BatchWriteItem.
const MaxBatchSize = 25

const defaultMaxRetries = 5

// ErrMissingTableName marks a source that does not declare a target table.
var ErrMissingTableName = errors.New("seed source has no target table name")

// BatchWriteAPI is the slice of the DynamoDB client the pipeline needs.
type BatchWriteAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Pipeline ingests seed sources into their tables with chunked batch
// writes, re-submitting unprocessed items until a retry ceiling.
type Pipeline struct {
	client BatchWriteAPI
	loader Loader
	logger zerolog.Logger
	opts   pipelineOpts
}

type pipelineOpts struct {
	maxRetries         int
	backoff            BackoffFunc
	convertEmptyValues bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineOpts)

// BackoffFunc returns the duration to wait before retry attempt n.
type BackoffFunc func(attempt int) time.Duration

// WithMaxRetries sets how many times a batch's unprocessed items are
// re-submitted before the source fails.
func WithMaxRetries(n int) PipelineOption {
	return func(o *pipelineOpts) { o.maxRetries = n }
}

// WithBackoff sets the wait between re-submissions. A nil func retries
// immediately.
func WithBackoff(fn BackoffFunc) PipelineOption {
	return func(o *pipelineOpts) { o.backoff = fn }
}

// WithConvertEmptyValues makes document records write empty strings,
// binaries and sets as NULL.
func WithConvertEmptyValues(convert bool) PipelineOption {
	return func(o *pipelineOpts) { o.convertEmptyValues = convert }
}

// ExponentialBackoff returns a capped exponential backoff with full jitter:
// rand(0, min(cap, base * 2^attempt)).
func ExponentialBackoff(base, cap time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		backoff := base << attempt
		if backoff > cap || backoff <= 0 {
			backoff = cap
		}
		return time.Duration(rand.Int64N(int64(backoff)))
	}
}

// DefaultBackoff waits up to 50ms, 100ms, 200ms, ... capped at 1s.
var DefaultBackoff = ExponentialBackoff(50*time.Millisecond, time.Second)

// NewPipeline builds a Pipeline writing through client, loading payloads
// with loader.
func NewPipeline(client BatchWriteAPI, loader Loader, logger zerolog.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		client: client,
		loader: loader,
		logger: logger,
		opts: pipelineOpts{
			maxRetries: defaultMaxRetries,
			backoff:    DefaultBackoff,
		},
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Seed ingests every source concurrently. One source's failure does not
// cancel the others; the returned error joins every source that ultimately
// failed, after all of them settled.
func (p *Pipeline) Seed(ctx context.Context, sources []Source) error {
	return fanout.Run(ctx, sources, p.seedSource)
}

func (p *Pipeline) seedSource(ctx context.Context, src Source) error {
	if src.TableName == "" {
		p.logger.Error().Strs("files", slices.Concat(src.Sources, src.RawSources)).
			Msg("seed source missing table name")
		return ErrMissingTableName
	}

	payloads, err := p.loader(src)
	if err != nil {
		p.logger.Error().Str("table", src.TableName).Err(err).Msg("loading seed payloads failed")
		return fmt.Errorf("load seeds for table %s: %w", src.TableName, err)
	}

	var total int
	for _, payload := range payloads {
		reqs, err := payload.WriteRequests(p.opts.convertEmptyValues)
		if err != nil {
			p.logger.Error().Str("table", src.TableName).Err(err).Msg("encoding seed records failed")
			return fmt.Errorf("encode seeds for table %s: %w", src.TableName, err)
		}
		for _, batch := range chunkRequests(reqs, MaxBatchSize) {
			if err := p.writeBatch(ctx, src.TableName, batch); err != nil {
				p.logger.Error().Str("table", src.TableName).Err(err).Msg("seeding failed")
				return err
			}
		}
		total += payload.Len()
	}

	p.logger.Info().Str("table", src.TableName).Int("records", total).Msg("table seeded")
	return nil
}

// writeBatch sends one batch and re-submits only the unprocessed subset
// until either nothing remains or the retry ceiling is reached.
func (p *Pipeline) writeBatch(ctx context.Context, table string, batch []types.WriteRequest) error {
	pending := batch
	for retries := 0; ; retries++ {
		out, err := p.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: pending},
		})
		if err != nil {
			return fmt.Errorf("batch write to table %s: %w", table, err)
		}

		pending = out.UnprocessedItems[table]
		if len(pending) == 0 {
			return nil
		}
		if retries >= p.opts.maxRetries {
			return fmt.Errorf("table %s: %d items still unprocessed after %d retries", table, len(pending), retries)
		}

		p.logger.Warn().Str("table", table).Int("unprocessed", len(pending)).
			Msg("re-submitting unprocessed items")
		if p.opts.backoff != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.opts.backoff(retries)):
			}
		}
	}
}

func chunkRequests(reqs []types.WriteRequest, size int) [][]types.WriteRequest {
	var chunks [][]types.WriteRequest
	for len(reqs) > size {
		chunks = append(chunks, reqs[:size])
		reqs = reqs[size:]
	}
	if len(reqs) > 0 {
		chunks = append(chunks, reqs)
	}
	return chunks
}
