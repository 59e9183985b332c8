// Package tabledef defines CloudFormation-shaped DynamoDB table definitions
// and their translation into create-table requests accepted by DynamoDB
// Local. Definitions are pure data; they are produced by whatever extracts
// table resources from a deployment descriptor and are never mutated here.
package tabledef

// TableDefinition mirrors the Properties block of an
// AWS::DynamoDB::Table resource.
type TableDefinition struct {
	TableName                        string                            `yaml:"TableName" json:"TableName"`
	AttributeDefinitions             []AttributeDefinition             `yaml:"AttributeDefinitions" json:"AttributeDefinitions"`
	KeySchema                        []KeySchemaElement                `yaml:"KeySchema" json:"KeySchema"`
	BillingMode                      string                            `yaml:"BillingMode,omitempty" json:"BillingMode,omitempty"`
	ProvisionedThroughput            *ProvisionedThroughput            `yaml:"ProvisionedThroughput,omitempty" json:"ProvisionedThroughput,omitempty"`
	GlobalSecondaryIndexes           []GlobalSecondaryIndex            `yaml:"GlobalSecondaryIndexes,omitempty" json:"GlobalSecondaryIndexes,omitempty"`
	LocalSecondaryIndexes            []LocalSecondaryIndex             `yaml:"LocalSecondaryIndexes,omitempty" json:"LocalSecondaryIndexes,omitempty"`
	StreamSpecification              *StreamSpecification              `yaml:"StreamSpecification,omitempty" json:"StreamSpecification,omitempty"`
	TimeToLiveSpecification          *TimeToLiveSpecification          `yaml:"TimeToLiveSpecification,omitempty" json:"TimeToLiveSpecification,omitempty"`
	SSESpecification                 *SSESpecification                 `yaml:"SSESpecification,omitempty" json:"SSESpecification,omitempty"`
	PointInTimeRecoverySpecification *PointInTimeRecoverySpecification `yaml:"PointInTimeRecoverySpecification,omitempty" json:"PointInTimeRecoverySpecification,omitempty"`
	Tags                             []Tag                             `yaml:"Tags,omitempty" json:"Tags,omitempty"`
	ContributorInsightsSpecification *ContributorInsightsSpecification `yaml:"ContributorInsightsSpecification,omitempty" json:"ContributorInsightsSpecification,omitempty"`
	KinesisStreamSpecification       *KinesisStreamSpecification       `yaml:"KinesisStreamSpecification,omitempty" json:"KinesisStreamSpecification,omitempty"`
}

// Billing modes as spelled by CloudFormation.
const (
	BillingModeProvisioned   = "PROVISIONED"
	BillingModePayPerRequest = "PAY_PER_REQUEST"
)

// AttributeDefinition declares a key attribute's name and scalar type
// ("S", "N", or "B").
type AttributeDefinition struct {
	AttributeName string `yaml:"AttributeName" json:"AttributeName"`
	AttributeType string `yaml:"AttributeType" json:"AttributeType"`
}

// KeySchemaElement binds an attribute to a key role ("HASH" or "RANGE").
type KeySchemaElement struct {
	AttributeName string `yaml:"AttributeName" json:"AttributeName"`
	KeyType       string `yaml:"KeyType" json:"KeyType"`
}

// ProvisionedThroughput is fixed read/write capacity in units.
type ProvisionedThroughput struct {
	ReadCapacityUnits  int64 `yaml:"ReadCapacityUnits" json:"ReadCapacityUnits"`
	WriteCapacityUnits int64 `yaml:"WriteCapacityUnits" json:"WriteCapacityUnits"`
}

// GlobalSecondaryIndex declares an alternate query-key projection of the
// table. Its ContributorInsightsSpecification is accepted for fidelity with
// CloudFormation but is never forwarded to the local instance.
type GlobalSecondaryIndex struct {
	IndexName                        string                            `yaml:"IndexName" json:"IndexName"`
	KeySchema                        []KeySchemaElement                `yaml:"KeySchema" json:"KeySchema"`
	Projection                       Projection                        `yaml:"Projection" json:"Projection"`
	ProvisionedThroughput            *ProvisionedThroughput            `yaml:"ProvisionedThroughput,omitempty" json:"ProvisionedThroughput,omitempty"`
	ContributorInsightsSpecification *ContributorInsightsSpecification `yaml:"ContributorInsightsSpecification,omitempty" json:"ContributorInsightsSpecification,omitempty"`
}

// LocalSecondaryIndex declares an alternate sort key sharing the table's
// partition key.
type LocalSecondaryIndex struct {
	IndexName  string             `yaml:"IndexName" json:"IndexName"`
	KeySchema  []KeySchemaElement `yaml:"KeySchema" json:"KeySchema"`
	Projection Projection         `yaml:"Projection" json:"Projection"`
}

// Projection controls which attributes an index copies from the table.
type Projection struct {
	ProjectionType   string   `yaml:"ProjectionType,omitempty" json:"ProjectionType,omitempty"`
	NonKeyAttributes []string `yaml:"NonKeyAttributes,omitempty" json:"NonKeyAttributes,omitempty"`
}

// StreamSpecification declares a change stream. CloudFormation omits the
// enabled flag when a view type is present; DynamoDB Local requires it.
type StreamSpecification struct {
	StreamViewType string `yaml:"StreamViewType,omitempty" json:"StreamViewType,omitempty"`
	StreamEnabled  *bool  `yaml:"StreamEnabled,omitempty" json:"StreamEnabled,omitempty"`
}

// TimeToLiveSpecification declares TTL expiry on an attribute.
type TimeToLiveSpecification struct {
	AttributeName string `yaml:"AttributeName" json:"AttributeName"`
	Enabled       bool   `yaml:"Enabled" json:"Enabled"`
}

// SSESpecification declares server-side encryption. CloudFormation spells
// the flag SSEEnabled; the service API spells it Enabled.
type SSESpecification struct {
	SSEEnabled     *bool  `yaml:"SSEEnabled,omitempty" json:"SSEEnabled,omitempty"`
	SSEType        string `yaml:"SSEType,omitempty" json:"SSEType,omitempty"`
	KMSMasterKeyID string `yaml:"KMSMasterKeyId,omitempty" json:"KMSMasterKeyId,omitempty"`
}

// PointInTimeRecoverySpecification declares continuous backups.
type PointInTimeRecoverySpecification struct {
	PointInTimeRecoveryEnabled bool `yaml:"PointInTimeRecoveryEnabled" json:"PointInTimeRecoveryEnabled"`
}

// Tag is a resource tag key/value pair.
type Tag struct {
	Key   string `yaml:"Key" json:"Key"`
	Value string `yaml:"Value" json:"Value"`
}

// ContributorInsightsSpecification toggles CloudWatch contributor insights.
type ContributorInsightsSpecification struct {
	Enabled bool `yaml:"Enabled" json:"Enabled"`
}

// KinesisStreamSpecification routes item changes to a Kinesis stream.
type KinesisStreamSpecification struct {
	StreamArn string `yaml:"StreamArn" json:"StreamArn"`
}
