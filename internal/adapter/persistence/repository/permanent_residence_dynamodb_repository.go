package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultPermanentResidenceTableName = "permanent_residence_details"
	permanentResidenceCaseIDIndex      = "case_id-index"
)

type permanentResidenceItem struct {
	ID              string  `dynamodbav:"id"`
	CaseID          string  `dynamodbav:"case_id"`
	Program         string  `dynamodbav:"program"`
	PersonCount     int     `dynamodbav:"person_count"`
	SpouseLastName  *string `dynamodbav:"spouse_last_name"`
	SpouseFirstName *string `dynamodbav:"spouse_first_name"`
	SpousePassport  *string `dynamodbav:"spouse_passport"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// PermanentResidenceDynamoRepository persists PermanentResidenceDetails in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)
//
// Cleared spouse fields are stored as NULL.

type PermanentResidenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPermanentResidenceRepository = (*PermanentResidenceDynamoRepository)(nil)

func NewPermanentResidenceDynamoRepository(ddb *dynamodb.Client) *PermanentResidenceDynamoRepository {
	return &PermanentResidenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PERMANENT_RESIDENCE_TABLE", defaultPermanentResidenceTableName),
	}
}

func (r *PermanentResidenceDynamoRepository) Create(ctx context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toPermanentResidenceItem(d))
	if err != nil {
		return entities.PermanentResidenceDetails{}, err
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
		return entities.PermanentResidenceDetails{}, err
	}
	return d, nil
}

// Update overwrites every mutable field, including spouse fields that were cleared.
func (r *PermanentResidenceDynamoRepository) Update(ctx context.Context, d entities.PermanentResidenceDetails) (entities.PermanentResidenceDetails, error) {
	now := time.Now().UTC()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #case_id = :case_id, #program = :program, #person_count = :person_count, " +
			"#spouse_last_name = :spouse_last_name, #spouse_first_name = :spouse_first_name, " +
			"#spouse_passport = :spouse_passport, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":case_id":           &types.AttributeValueMemberS{Value: d.CaseID},
			":program":           &types.AttributeValueMemberS{Value: string(d.Program)},
			":person_count":      &types.AttributeValueMemberN{Value: strconv.Itoa(d.PersonCount)},
			":spouse_last_name":  nullableS(d.SpouseLastName),
			":spouse_first_name": nullableS(d.SpouseFirstName),
			":spouse_passport":   nullableS(d.SpousePassport),
			":updated_at":        &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#case_id":           "case_id",
			"#program":           "program",
			"#person_count":      "person_count",
			"#spouse_last_name":  "spouse_last_name",
			"#spouse_first_name": "spouse_first_name",
			"#spouse_passport":   "spouse_passport",
			"#updated_at":        "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PermanentResidenceDetails{}, nil
		}
		return entities.PermanentResidenceDetails{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PermanentResidenceDetails{}, nil
	}
	var it permanentResidenceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PermanentResidenceDetails{}, err
	}
	return fromPermanentResidenceItem(it), nil
}

func (r *PermanentResidenceDynamoRepository) GetByID(ctx context.Context, id string) (entities.PermanentResidenceDetails, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PermanentResidenceDetails{}, err
	}
	if len(out.Item) == 0 {
		return entities.PermanentResidenceDetails{}, nil
	}

	var it permanentResidenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PermanentResidenceDetails{}, err
	}
	return fromPermanentResidenceItem(it), nil
}

// GetByCaseID returns the record attached to the case. Cases hold at most one.
func (r *PermanentResidenceDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.PermanentResidenceDetails, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(permanentResidenceCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PermanentResidenceDetails{}, err
	}
	if len(out.Items) == 0 {
		return entities.PermanentResidenceDetails{}, nil
	}

	var it permanentResidenceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PermanentResidenceDetails{}, err
	}
	return fromPermanentResidenceItem(it), nil
}

func toPermanentResidenceItem(d entities.PermanentResidenceDetails) permanentResidenceItem {
	return permanentResidenceItem{
		ID:              d.ID,
		CaseID:          d.CaseID,
		Program:         string(d.Program),
		PersonCount:     d.PersonCount,
		SpouseLastName:  d.SpouseLastName,
		SpouseFirstName: d.SpouseFirstName,
		SpousePassport:  d.SpousePassport,
		UpdatedAt:       formatTime(d.UpdatedAt),
	}
}

func fromPermanentResidenceItem(it permanentResidenceItem) entities.PermanentResidenceDetails {
	return entities.PermanentResidenceDetails{
		ID:              it.ID,
		CaseID:          it.CaseID,
		Program:         entities.ImmigrationProgram(it.Program),
		PersonCount:     it.PersonCount,
		SpouseLastName:  it.SpouseLastName,
		SpouseFirstName: it.SpouseFirstName,
		SpousePassport:  it.SpousePassport,
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
