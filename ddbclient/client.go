// Package ddbclient builds DynamoDB clients for either a local instance or
// a real region. The local flavor signs with mock credentials against a
// localhost endpoint so no AWS account is ever touched during development.
package ddbclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Defaults for the local instance.
const (
	DefaultHost = "localhost"
	DefaultPort = 8000

	localRegion         = "localhost"
	mockAccessKeyID     = "MOCK_ACCESS_KEY_ID"
	mockSecretAccessKey = "MOCK_SECRET_ACCESS_KEY"
)

// ErrRegionRequired is returned when an online target is requested without
// a region to resolve it in.
var ErrRegionRequired = errors.New("ddbclient: region is required when connecting to an online target")

// Options selects the connection target.
type Options struct {
	// Online connects to the real service instead of a local instance.
	Online bool
	// Region resolves the online endpoint. Required when Online is set;
	// ignored locally.
	Region string

	// Host and Port locate the local instance. Empty values fall back to
	// localhost:8000.
	Host string
	Port int

	// AccessKeyID and SecretAccessKey sign local requests. DynamoDB Local
	// accepts any value; mock defaults are used when empty.
	AccessKeyID     string
	SecretAccessKey string
}

// Endpoint returns the local instance URL the options point at.
func (o Options) Endpoint() string {
	host := o.Host
	if host == "" {
		host = DefaultHost
	}
	port := o.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

// New constructs a DynamoDB client for the target the options describe.
func New(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	if opts.Online {
		if opts.Region == "" {
			return nil, ErrRegionRequired
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return dynamodb.NewFromConfig(cfg), nil
	}

	accessKey := opts.AccessKeyID
	if accessKey == "" {
		accessKey = mockAccessKeyID
	}
	secretKey := opts.SecretAccessKey
	if secretKey == "" {
		secretKey = mockSecretAccessKey
	}

	cfg := aws.Config{
		Region:      localRegion,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	endpoint := opts.Endpoint()
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	}), nil
}
