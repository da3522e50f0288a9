package repository

import (
	"context"
	"sort"

	"portail_immigration/internal/domain/entities"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentTypesTableName = "document_types"
	documentTypeCategoryIndex     = "visa_category-index"
)

type documentTypeItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Required     bool   `dynamodbav:"required"`
	VisaCategory string `dynamodbav:"visa_category"`
}

// DocumentTypeDynamoRepository holds the document type catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: visa_category-index (PK: visa_category)

type DocumentTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentTypeRepository = (*DocumentTypeDynamoRepository)(nil)

func NewDocumentTypeDynamoRepository(ddb *dynamodb.Client) *DocumentTypeDynamoRepository {
	return &DocumentTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENT_TYPES_TABLE", defaultDocumentTypesTableName),
	}
}

// Upsert overwrites the catalog entry with the same id.
func (r *DocumentTypeDynamoRepository) Upsert(ctx context.Context, t entities.DocumentType) (entities.DocumentType, error) {
	av, err := attributevalue.MarshalMap(documentTypeItem{
		ID:           t.ID,
		Name:         t.Name,
		Required:     t.Required,
		VisaCategory: string(t.VisaCategory),
	})
	if err != nil {
		return entities.DocumentType{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.DocumentType{}, err
	}
	return t, nil
}

func (r *DocumentTypeDynamoRepository) List(ctx context.Context) ([]entities.DocumentType, error) {
	var items []entities.DocumentType
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeDocumentTypes(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortDocumentTypes(items)
	return items, nil
}

func (r *DocumentTypeDynamoRepository) ListByVisaCategory(ctx context.Context, category entities.VisaCategory) ([]entities.DocumentType, error) {
	var items []entities.DocumentType
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentTypeCategoryIndex),
		KeyConditionExpression: aws.String("visa_category = :vc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vc": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeDocumentTypes(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortDocumentTypes(items)
	return items, nil
}

func decodeDocumentTypes(raw []map[string]types.AttributeValue) ([]entities.DocumentType, error) {
	var its []documentTypeItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.DocumentType, 0, len(its))
	for _, it := range its {
		out = append(out, entities.DocumentType{
			ID:           it.ID,
			Name:         it.Name,
			Required:     it.Required,
			VisaCategory: entities.VisaCategory(it.VisaCategory),
		})
	}
	return out, nil
}

func sortDocumentTypes(items []entities.DocumentType) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
