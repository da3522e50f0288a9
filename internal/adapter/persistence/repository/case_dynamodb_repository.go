package repository

import (
	"context"
	"errors"
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID                   string `dynamodbav:"id"`
	CandidateID          string `dynamodbav:"candidate_id"`
	CandidateEmail       string `dynamodbav:"candidate_email"`
	IdentificationNumber string `dynamodbav:"identification_number"`
	VisaCategory         string `dynamodbav:"visa_category"`
	Status               string `dynamodbav:"status"`
	SubmittedAt          string `dynamodbav:"submitted_at"`
	Office               string `dynamodbav:"office"`
	Notes                string `dynamodbav:"notes"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// CaseDynamoRepository persists Case entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb *dynamodb.Client) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
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
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Case{}, err
	}
	if len(out.Item) == 0 {
		return entities.Case{}, nil
	}

	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func (r *CaseDynamoRepository) List(ctx context.Context) ([]entities.Case, error) {
	var items []entities.Case
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it caseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCaseItem(it))
		}
	}
	return items, nil
}

func (r *CaseDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) UpdateNotes(ctx context.Context, id string, notes string) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notes = :notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Case, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func toCaseItem(c entities.Case) caseItem {
	return caseItem{
		ID:                   c.ID,
		CandidateID:          c.CandidateID,
		CandidateEmail:       c.CandidateEmail,
		IdentificationNumber: c.IdentificationNumber,
		VisaCategory:         string(c.VisaCategory),
		Status:               string(c.Status),
		SubmittedAt:          formatTime(c.SubmittedAt),
		Office:               c.Office,
		Notes:                c.Notes,
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
}

func fromCaseItem(it caseItem) entities.Case {
	return entities.Case{
		ID:                   it.ID,
		CandidateID:          it.CandidateID,
		CandidateEmail:       it.CandidateEmail,
		IdentificationNumber: it.IdentificationNumber,
		VisaCategory:         entities.VisaCategory(it.VisaCategory),
		Status:               entities.CaseStatus(it.Status),
		SubmittedAt:          parseTime(it.SubmittedAt),
		Office:               it.Office,
		Notes:                it.Notes,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
