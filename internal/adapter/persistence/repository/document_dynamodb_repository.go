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

const (
	defaultDocumentsTableName = "documents"
	documentCaseIDIndex       = "case_id-index"
)

type documentItem struct {
	ID             string  `dynamodbav:"id"`
	CaseID         string  `dynamodbav:"case_id"`
	DocumentTypeID string  `dynamodbav:"document_type_id"`
	Status         string  `dynamodbav:"status"`
	FileRef        *string `dynamodbav:"file_ref"`
	PendingFileRef *string `dynamodbav:"pending_file_ref,omitempty"`
	UploadedAt     *string `dynamodbav:"uploaded_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: case_id-index (PK: case_id)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.Document, error) {
	var items []entities.Document
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentCaseIDIndex),
		KeyConditionExpression: aws.String("case_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: caseID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it documentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromDocumentItem(it))
		}
	}
	return items, nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	return r.update(ctx, id, "SET #status = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#status": "status"},
	)
}

// SetPendingUpload records the key handed out with an upload URL. Status and file_ref
// are left alone until the object is confirmed.
func (r *DocumentDynamoRepository) SetPendingUpload(ctx context.Context, id string, key string) (entities.Document, error) {
	return r.update(ctx, id, "SET #pending_file_ref = :pending_file_ref",
		map[string]types.AttributeValue{
			":pending_file_ref": &types.AttributeValueMemberS{Value: key},
		},
		map[string]string{"#pending_file_ref": "pending_file_ref"},
	)
}

// AttachFile records the stored object and marks the document as uploaded.
func (r *DocumentDynamoRepository) AttachFile(ctx context.Context, id string, fileRef string, uploadedAt time.Time) (entities.Document, error) {
	return r.update(ctx, id, "SET #file_ref = :file_ref, #uploaded_at = :uploaded_at, #status = :status REMOVE #pending_file_ref",
		map[string]types.AttributeValue{
			":file_ref":    &types.AttributeValueMemberS{Value: fileRef},
			":uploaded_at": &types.AttributeValueMemberS{Value: formatTime(uploadedAt)},
			":status":      &types.AttributeValueMemberS{Value: string(entities.DocumentStatusTeleverse)},
		},
		map[string]string{
			"#file_ref":         "file_ref",
			"#uploaded_at":      "uploaded_at",
			"#status":           "status",
			"#pending_file_ref": "pending_file_ref",
		},
	)
}

func (r *DocumentDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Document, error) {
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
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:             d.ID,
		CaseID:         d.CaseID,
		DocumentTypeID: d.DocumentTypeID,
		Status:         string(d.Status),
		FileRef:        d.FileRef,
		PendingFileRef: d.PendingFileRef,
		UploadedAt:     formatTimePtr(d.UploadedAt),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	return entities.Document{
		ID:             it.ID,
		CaseID:         it.CaseID,
		DocumentTypeID: it.DocumentTypeID,
		Status:         entities.DocumentStatus(it.Status),
		FileRef:        it.FileRef,
		PendingFileRef: it.PendingFileRef,
		UploadedAt:     parseTimePtr(it.UploadedAt),
	}
}
