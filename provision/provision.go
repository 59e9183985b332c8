// Package provision creates DynamoDB Local tables from cloud-native table
// definitions. Creation is idempotent: a table that already exists is a
// benign no-op, never an error and never touched.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/acksell/ddblocal/internal/fanout"
	"github.com/acksell/ddblocal/tabledef"
)

// CreateTableAPI is the slice of the DynamoDB client the provisioner needs.
type CreateTableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Provisioner drives concurrent table creation.
type Provisioner struct {
	client CreateTableAPI
	logger zerolog.Logger
}

func New(client CreateTableAPI, logger zerolog.Logger) *Provisioner {
	return &Provisioner{client: client, logger: logger}
}

// Provision normalizes every definition and issues all create-table calls
// concurrently. Table counts are bounded by a single service's resource
// declarations, so the fan-out is unbounded. A failure on one table does
// not stop the others; the returned error joins every non-benign failure
// once all calls have settled.
func (p *Provisioner) Provision(ctx context.Context, defs []tabledef.TableDefinition) error {
	return fanout.Run(ctx, defs, p.createTable)
}

func (p *Provisioner) createTable(ctx context.Context, def tabledef.TableDefinition) error {
	if _, err := p.client.CreateTable(ctx, tabledef.Normalize(def)); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			p.logger.Warn().Str("table", def.TableName).Msg("table already exists, skipping creation")
			return nil
		}
		p.logger.Error().Str("table", def.TableName).Err(err).Msg("table creation failed")
		return fmt.Errorf("create table %s: %w", def.TableName, err)
	}
	p.logger.Info().Str("table", def.TableName).Msg("table created")
	return nil
}
