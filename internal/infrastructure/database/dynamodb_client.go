package database

import (
	"context"

	"rental_backend/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. A configured endpoint (for
// example http://dynamodb:8000) points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, awsCfg config.AWSConfig, ddbCfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, awsCfg, ddbCfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfig(ctx context.Context, awsCfg config.AWSConfig, endpoint string) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(awsCfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
