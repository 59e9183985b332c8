package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileLoader_DocumentAndRawSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "users.json", `[
		{"id": "u1", "name": "Alice", "age": 30},
		{"id": "u2", "name": "Bob"}
	]`)
	writeFile(t, dir, "users.raw.json", `[
		{"id": {"S": "u3"}, "age": {"N": "41"}, "active": {"BOOL": true}}
	]`)

	loader := FileLoader(dir)
	records, err := loader(Source{
		TableName:  "users",
		Sources:    []string{"users.json"},
		RawSources: []string{"users.raw.json"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	docs, ok := records[0].(DocumentRecords)
	require.True(t, ok)
	require.Equal(t, 2, docs.Len())
	assert.Equal(t, "Alice", docs[0]["name"])

	raw, ok := records[1].(RawRecords)
	require.True(t, ok)
	require.Equal(t, 1, raw.Len())
	assert.Equal(t, &types.AttributeValueMemberS{Value: "u3"}, raw[0]["id"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "41"}, raw[0]["age"])
	assert.Equal(t, &types.AttributeValueMemberBOOL{Value: true}, raw[0]["active"])
}

func TestFileLoader_NestedRawValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders.raw.json", `[
		{
			"id": {"S": "o1"},
			"lines": {"L": [{"M": {"sku": {"S": "a"}, "qty": {"N": "2"}}}]},
			"tags": {"SS": ["rush", "gift"]},
			"note": {"NULL": true}
		}
	]`)

	records, err := FileLoader(dir)(Source{TableName: "orders", RawSources: []string{"orders.raw.json"}})
	require.NoError(t, err)
	require.Len(t, records, 1)

	raw := records[0].(RawRecords)
	require.Equal(t, 1, raw.Len())

	lines, ok := raw[0]["lines"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, lines.Value, 1)
	m := lines.Value[0].(*types.AttributeValueMemberM)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "a"}, m.Value["sku"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, m.Value["qty"])

	assert.Equal(t, &types.AttributeValueMemberSS{Value: []string{"rush", "gift"}}, raw[0]["tags"])
	assert.Equal(t, &types.AttributeValueMemberNULL{Value: true}, raw[0]["note"])
}

func TestFileLoader_InvalidRawValueFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.raw.json", `[{"id": {}}]`)

	_, err := FileLoader(dir)(Source{TableName: "users", RawSources: []string{"bad.raw.json"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, `attribute "id"`)
}

func TestFileLoader_MissingFileFails(t *testing.T) {
	_, err := FileLoader(t.TempDir())(Source{TableName: "users", Sources: []string{"nope.json"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read seed file")
}
