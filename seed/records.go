package seed

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Records is one decoded seed payload. The two variants carry their own
// write path: documents are marshaled to attribute values on demand, raw
// records already are attribute values.
type Records interface {
	// WriteRequests renders every record as a batch put request.
	WriteRequests(convertEmptyValues bool) ([]types.WriteRequest, error)
	// Len is the number of records in the payload.
	Len() int
}

// DocumentRecords are records in native form, as decoded from a JSON
// document file.
type DocumentRecords []map[string]any

func (r DocumentRecords) Len() int { return len(r) }

func (r DocumentRecords) WriteRequests(convertEmptyValues bool) ([]types.WriteRequest, error) {
	reqs := make([]types.WriteRequest, 0, len(r))
	for i, record := range r {
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, fmt.Errorf("marshal record %d: %w", i, err)
		}
		if convertEmptyValues {
			item = nullifyEmptyValues(item)
		}
		reqs = append(reqs, putRequest(item))
	}
	return reqs, nil
}

// RawRecords are records already in the wire attribute-value format.
type RawRecords []map[string]types.AttributeValue

func (r RawRecords) Len() int { return len(r) }

func (r RawRecords) WriteRequests(bool) ([]types.WriteRequest, error) {
	reqs := make([]types.WriteRequest, 0, len(r))
	for _, item := range r {
		reqs = append(reqs, putRequest(item))
	}
	return reqs, nil
}

func putRequest(item map[string]types.AttributeValue) types.WriteRequest {
	return types.WriteRequest{PutRequest: &types.PutRequest{Item: item}}
}

// nullifyEmptyValues replaces empty strings, binaries and sets with NULL,
// recursing into maps and lists. This mirrors the document-client behavior
// seed files authored for the JavaScript tooling rely on.
func nullifyEmptyValues(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = nullifyEmptyValue(v)
	}
	return out
}

func nullifyEmptyValue(av types.AttributeValue) types.AttributeValue {
	null := &types.AttributeValueMemberNULL{Value: true}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		if v.Value == "" {
			return null
		}
	case *types.AttributeValueMemberB:
		if len(v.Value) == 0 {
			return null
		}
	case *types.AttributeValueMemberSS:
		if len(v.Value) == 0 {
			return null
		}
	case *types.AttributeValueMemberNS:
		if len(v.Value) == 0 {
			return null
		}
	case *types.AttributeValueMemberBS:
		if len(v.Value) == 0 {
			return null
		}
	case *types.AttributeValueMemberM:
		return &types.AttributeValueMemberM{Value: nullifyEmptyValues(v.Value)}
	case *types.AttributeValueMemberL:
		vals := make([]types.AttributeValue, len(v.Value))
		for i, elem := range v.Value {
			vals[i] = nullifyEmptyValue(elem)
		}
		return &types.AttributeValueMemberL{Value: vals}
	}
	return av
}
