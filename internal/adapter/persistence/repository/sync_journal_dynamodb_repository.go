package repository

import (
	"context"
	"sort"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultSyncJournalTableName = "sync_journal"

type syncMutationItem struct {
	ID          string `dynamodbav:"id"`
	ShopToken   string `dynamodbav:"shop_token"`
	OrderID     string `dynamodbav:"order_id"`
	OrderNumber string `dynamodbav:"order_number"`
	Kind        string `dynamodbav:"kind"`
	Previous    string `dynamodbav:"previous,omitempty"`
	Requested   string `dynamodbav:"requested,omitempty"`
	Outcome     string `dynamodbav:"outcome"`
	Error       string `dynamodbav:"error,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// SyncJournalDynamoRepository keeps the history of optimistic changes and how
// their remote commit ended.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)
type SyncJournalDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISyncJournalRepository = (*SyncJournalDynamoRepository)(nil)

func NewSyncJournalDynamoRepository(ddb DynamoDBAPI, tableName string) *SyncJournalDynamoRepository {
	return &SyncJournalDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultSyncJournalTableName),
	}
}

func (r *SyncJournalDynamoRepository) Append(ctx context.Context, mutation entities.SyncMutation) (entities.SyncMutation, error) {
	av, err := attributevalue.MarshalMap(toSyncMutationItem(mutation))
	if err != nil {
		return entities.SyncMutation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SyncMutation{}, err
	}
	return mutation, nil
}

// ListByOrderNumber returns the journal of an order, oldest first. Follows
// pagination of the index query.
func (r *SyncJournalDynamoRepository) ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.SyncMutation, error) {
	var (
		items     []entities.SyncMutation
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(orderNumberIndex),
			KeyConditionExpression: aws.String("order_number = :num"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":num": &types.AttributeValueMemberS{Value: orderNumber},
			},
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it syncMutationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSyncMutationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toSyncMutationItem(m entities.SyncMutation) syncMutationItem {
	return syncMutationItem{
		ID:          m.ID,
		ShopToken:   m.ShopToken,
		OrderID:     m.OrderID,
		OrderNumber: m.OrderNumber,
		Kind:        string(m.Kind),
		Previous:    m.Previous,
		Requested:   m.Requested,
		Outcome:     string(m.Outcome),
		Error:       m.Error,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}

func fromSyncMutationItem(it syncMutationItem) entities.SyncMutation {
	return entities.SyncMutation{
		ID:          it.ID,
		ShopToken:   it.ShopToken,
		OrderID:     it.OrderID,
		OrderNumber: it.OrderNumber,
		Kind:        entities.MutationKind(it.Kind),
		Previous:    it.Previous,
		Requested:   it.Requested,
		Outcome:     entities.MutationOutcome(it.Outcome),
		Error:       it.Error,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
