package database

import (
	"context"
	"log"

	"portail_immigration/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the loaded environment.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local, only with an endpoint override)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - AWS_ENDPOINT_URL (optional; S3 and SES, e.g. http://localstack:4566)
func ConnectDynamoDB(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

// MustLoadAWSConfig is NewAWSConfig for entrypoints.
func MustLoadAWSConfig(ctx context.Context, env config.Env) aws.Config {
	cfg, err := NewAWSConfig(ctx, env)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return cfg
}

// NewAWSConfig builds the config shared by the DynamoDB, S3 and SES clients.
func NewAWSConfig(ctx context.Context, env config.Env) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(env.Region),
	}

	if env.DynamoDBEndpoint != "" || env.AWSEndpointURL != "" {
		// Local emulators do not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(creds),
			awsconfig.WithEndpointResolverWithOptions(endpointResolver(env)),
		)
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func endpointResolver(env config.Env) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID && env.DynamoDBEndpoint != "" {
			return aws.Endpoint{URL: env.DynamoDBEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		if env.AWSEndpointURL != "" {
			return aws.Endpoint{URL: env.AWSEndpointURL, SigningRegion: region, HostnameImmutable: true, PartitionID: "aws"}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
