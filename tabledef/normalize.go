package tabledef

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Capacity synthesized for on-demand tables. DynamoDB Local has no
// pay-per-request mode, so billing collapses to fixed throughput.
const (
	DefaultReadCapacityUnits  int64 = 5
	DefaultWriteCapacityUnits int64 = 5
)

// Normalize rewrites one cloud-native table definition into a create-table
// request DynamoDB Local accepts. It is total: no definition value fails,
// unsupported declarations are degraded or elided rather than rejected.
//
// The rules, matching what a production-authored definition needs to deploy
// locally without modification:
//
//   - a stream specification with a view type gets StreamEnabled forced true
//   - TTL, point-in-time recovery, tags, contributor insights (table and
//     per-index) and Kinesis stream routing are dropped
//   - SSEEnabled is renamed to the service API's Enabled
//   - PAY_PER_REQUEST billing is replaced with explicit 5/5 throughput at
//     the table level and on every index lacking its own
//
// Everything else passes through unchanged. The input is never mutated.
func Normalize(def TableDefinition) *dynamodb.CreateTableInput {
	onDemand := def.BillingMode == BillingModePayPerRequest

	in := &dynamodb.CreateTableInput{
		TableName:              aws.String(def.TableName),
		AttributeDefinitions:   attributeDefinitions(def.AttributeDefinitions),
		KeySchema:              keySchema(def.KeySchema),
		GlobalSecondaryIndexes: globalSecondaryIndexes(def.GlobalSecondaryIndexes, onDemand),
		LocalSecondaryIndexes:  localSecondaryIndexes(def.LocalSecondaryIndexes),
		StreamSpecification:    streamSpecification(def.StreamSpecification),
		SSESpecification:       sseSpecification(def.SSESpecification),
	}

	switch {
	case onDemand:
		in.ProvisionedThroughput = defaultThroughput()
	default:
		if def.BillingMode != "" {
			in.BillingMode = types.BillingMode(def.BillingMode)
		}
		in.ProvisionedThroughput = throughput(def.ProvisionedThroughput)
	}
	return in
}

func attributeDefinitions(defs []AttributeDefinition) []types.AttributeDefinition {
	if len(defs) == 0 {
		return nil
	}
	out := make([]types.AttributeDefinition, 0, len(defs))
	for _, d := range defs {
		out = append(out, types.AttributeDefinition{
			AttributeName: aws.String(d.AttributeName),
			AttributeType: types.ScalarAttributeType(d.AttributeType),
		})
	}
	return out
}

func keySchema(elems []KeySchemaElement) []types.KeySchemaElement {
	if len(elems) == 0 {
		return nil
	}
	out := make([]types.KeySchemaElement, 0, len(elems))
	for _, e := range elems {
		out = append(out, types.KeySchemaElement{
			AttributeName: aws.String(e.AttributeName),
			KeyType:       types.KeyType(e.KeyType),
		})
	}
	return out
}

func globalSecondaryIndexes(gsis []GlobalSecondaryIndex, onDemand bool) []types.GlobalSecondaryIndex {
	if len(gsis) == 0 {
		return nil
	}
	out := make([]types.GlobalSecondaryIndex, 0, len(gsis))
	for _, gsi := range gsis {
		idx := types.GlobalSecondaryIndex{
			IndexName:             aws.String(gsi.IndexName),
			KeySchema:             keySchema(gsi.KeySchema),
			Projection:            projection(gsi.Projection),
			ProvisionedThroughput: throughput(gsi.ProvisionedThroughput),
		}
		if onDemand && idx.ProvisionedThroughput == nil {
			idx.ProvisionedThroughput = defaultThroughput()
		}
		out = append(out, idx)
	}
	return out
}

func localSecondaryIndexes(lsis []LocalSecondaryIndex) []types.LocalSecondaryIndex {
	if len(lsis) == 0 {
		return nil
	}
	out := make([]types.LocalSecondaryIndex, 0, len(lsis))
	for _, lsi := range lsis {
		out = append(out, types.LocalSecondaryIndex{
			IndexName:  aws.String(lsi.IndexName),
			KeySchema:  keySchema(lsi.KeySchema),
			Projection: projection(lsi.Projection),
		})
	}
	return out
}

func projection(p Projection) *types.Projection {
	out := &types.Projection{}
	if p.ProjectionType != "" {
		out.ProjectionType = types.ProjectionType(p.ProjectionType)
	}
	if len(p.NonKeyAttributes) > 0 {
		out.NonKeyAttributes = p.NonKeyAttributes
	}
	return out
}

func streamSpecification(s *StreamSpecification) *types.StreamSpecification {
	if s == nil {
		return nil
	}
	out := &types.StreamSpecification{
		StreamEnabled: s.StreamEnabled,
	}
	if s.StreamViewType != "" {
		out.StreamViewType = types.StreamViewType(s.StreamViewType)
		// DynamoDB Local rejects a view type without an explicit enable.
		out.StreamEnabled = aws.Bool(true)
	}
	return out
}

func sseSpecification(s *SSESpecification) *types.SSESpecification {
	if s == nil {
		return nil
	}
	out := &types.SSESpecification{
		Enabled: s.SSEEnabled,
	}
	if s.SSEType != "" {
		out.SSEType = types.SSEType(s.SSEType)
	}
	if s.KMSMasterKeyID != "" {
		out.KMSMasterKeyId = aws.String(s.KMSMasterKeyID)
	}
	return out
}

func throughput(t *ProvisionedThroughput) *types.ProvisionedThroughput {
	if t == nil {
		return nil
	}
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(t.ReadCapacityUnits),
		WriteCapacityUnits: aws.Int64(t.WriteCapacityUnits),
	}
}

func defaultThroughput() *types.ProvisionedThroughput {
	return &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(DefaultReadCapacityUnits),
		WriteCapacityUnits: aws.Int64(DefaultWriteCapacityUnits),
	}
}
