package repository

import (
	"context"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "history"
	historyCandidateIDIndex = "candidate_id-index"
)

type historyItem struct {
	ID          string `dynamodbav:"id"`
	CandidateID string `dynamodbav:"candidate_id"`
	Action      string `dynamodbav:"action"`
	Date        string `dynamodbav:"date"`
	UserID      string `dynamodbav:"user_id"`
}

// HistoryDynamoRepository persists History entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: candidate_id-index (PK: candidate_id)

type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) Create(ctx context.Context, h entities.History) (entities.History, error) {
	av, err := attributevalue.MarshalMap(historyItem{
		ID:          h.ID,
		CandidateID: h.CandidateID,
		Action:      h.Action,
		Date:        formatTime(h.Date),
		UserID:      h.UserID,
	})
	if err != nil {
		return entities.History{}, err
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
		return entities.History{}, err
	}
	return h, nil
}

func (r *HistoryDynamoRepository) ListByCandidateID(ctx context.Context, candidateID string) ([]entities.History, error) {
	var items []entities.History
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyCandidateIDIndex),
		KeyConditionExpression: aws.String("candidate_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: candidateID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it historyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, entities.History{
				ID:          it.ID,
				CandidateID: it.CandidateID,
				Action:      it.Action,
				Date:        parseTime(it.Date),
				UserID:      it.UserID,
			})
		}
	}
	return items, nil
}
