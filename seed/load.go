package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Loader resolves a source's payload files into decoded records. It is a
// seam so the pipeline can be tested without touching the filesystem.
type Loader func(Source) ([]Records, error)

// FileLoader returns a Loader that reads payload files relative to dir.
// Document files hold a JSON array of objects; raw files hold a JSON array
// of wire-format attribute-value maps.
func FileLoader(dir string) Loader {
	return func(src Source) ([]Records, error) {
		records := make([]Records, 0, len(src.Sources)+len(src.RawSources))
		for _, name := range src.Sources {
			recs, err := loadDocumentFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			records = append(records, recs)
		}
		for _, name := range src.RawSources {
			recs, err := loadRawFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			records = append(records, recs)
		}
		return records, nil
	}
}

func loadDocumentFile(path string) (DocumentRecords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var records DocumentRecords
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return records, nil
}

func loadRawFile(path string) (RawRecords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var items []map[string]rawValue
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse raw seed file %s: %w", path, err)
	}
	records := make(RawRecords, 0, len(items))
	for i, item := range items {
		converted, err := convertRawItem(item)
		if err != nil {
			return nil, fmt.Errorf("raw seed file %s, record %d: %w", path, i, err)
		}
		records = append(records, converted)
	}
	return records, nil
}

// rawValue is the JSON spelling of a wire-format attribute value, one
// member set per value.
type rawValue struct {
	S    *string             `json:"S"`
	N    *string             `json:"N"`
	B    []byte              `json:"B"`
	BOOL *bool               `json:"BOOL"`
	NULL *bool               `json:"NULL"`
	M    map[string]rawValue `json:"M"`
	L    []rawValue          `json:"L"`
	SS   []string            `json:"SS"`
	NS   []string            `json:"NS"`
	BS   [][]byte            `json:"BS"`
}

func convertRawItem(item map[string]rawValue) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(item))
	for name, raw := range item {
		av, err := raw.attributeValue()
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func (r rawValue) attributeValue() (types.AttributeValue, error) {
	switch {
	case r.S != nil:
		return &types.AttributeValueMemberS{Value: *r.S}, nil
	case r.N != nil:
		return &types.AttributeValueMemberN{Value: *r.N}, nil
	case r.B != nil:
		return &types.AttributeValueMemberB{Value: r.B}, nil
	case r.BOOL != nil:
		return &types.AttributeValueMemberBOOL{Value: *r.BOOL}, nil
	case r.NULL != nil:
		return &types.AttributeValueMemberNULL{Value: *r.NULL}, nil
	case r.M != nil:
		m, err := convertRawItem(r.M)
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	case r.L != nil:
		l := make([]types.AttributeValue, 0, len(r.L))
		for _, elem := range r.L {
			av, err := elem.attributeValue()
			if err != nil {
				return nil, err
			}
			l = append(l, av)
		}
		return &types.AttributeValueMemberL{Value: l}, nil
	case r.SS != nil:
		return &types.AttributeValueMemberSS{Value: r.SS}, nil
	case r.NS != nil:
		return &types.AttributeValueMemberNS{Value: r.NS}, nil
	case r.BS != nil:
		return &types.AttributeValueMemberBS{Value: r.BS}, nil
	default:
		return nil, fmt.Errorf("no attribute value member set")
	}
}
