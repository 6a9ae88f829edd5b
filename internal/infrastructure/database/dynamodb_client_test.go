package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTableAPI struct {
	describeErr error
	createErr   error
	created     []*dynamodb.CreateTableInput
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName}}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, f.createErr
}

func TestEnsureTable(t *testing.T) {
	ctx := context.Background()

	t.Run("existing table is left alone", func(t *testing.T) {
		api := &fakeTableAPI{}
		require.NoError(t, EnsureTable(ctx, api, "payments", "order_number"))
		assert.Empty(t, api.created)
	})

	t.Run("missing table is created with its index", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}}
		require.NoError(t, EnsureTable(ctx, api, "sync_journal", "order_number"))
		require.Len(t, api.created, 1)
		in := api.created[0]
		assert.Equal(t, "sync_journal", aws.ToString(in.TableName))
		require.Len(t, in.GlobalSecondaryIndexes, 1)
		assert.Equal(t, "order_number-index", aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	})

	t.Run("concurrent creation is not an error", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: &types.ResourceNotFoundException{}, createErr: &types.ResourceInUseException{}}
		assert.NoError(t, EnsureTable(ctx, api, "payments", "order_number"))
	})

	t.Run("describe failure is returned", func(t *testing.T) {
		api := &fakeTableAPI{describeErr: errors.New("access denied")}
		assert.ErrorContains(t, EnsureTable(ctx, api, "payments", "order_number"), "access denied")
	})
}

func TestNewDynamoDBConfig_DefaultRegion(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), "", "http://localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
}
