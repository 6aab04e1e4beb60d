/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// QueryAPI is the slice of the DynamoDB client the execution pipeline needs:
// send one query request, get one response. *dynamodb.Client satisfies it.
type QueryAPI interface {
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}
