package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
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
	defaultDependentsTableName = "enfants"
	dependentRecordIndex       = "permanent_residence_id-index"

	// DynamoDB rejects BatchWriteItem requests above this size.
	maxBatchWriteItems = 25
)

var (
	ErrUnprocessedDependents = errors.New("dependents batch partially written")
	ErrDependentOwnerMissing = errors.New("dependent update without permanent_residence_id")
)

type dependentItem struct {
	ID                   string `dynamodbav:"id"`
	PermanentResidenceID string `dynamodbav:"permanent_residence_id"`
	LastName             string `dynamodbav:"last_name"`
	FirstName            string `dynamodbav:"first_name"`
	Age                  int    `dynamodbav:"age"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// DependentDynamoRepository persists Dependent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: permanent_residence_id-index (PK: permanent_residence_id)

type DependentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDependentRepository = (*DependentDynamoRepository)(nil)

func NewDependentDynamoRepository(ddb *dynamodb.Client) *DependentDynamoRepository {
	return &DependentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPENDENTS_TABLE", defaultDependentsTableName),
	}
}

// CreateBatch assigns identifiers and writes every dependent with BatchWriteItem.
// Unprocessed items are reported as ErrUnprocessedDependents; nothing is retried.
func (r *DependentDynamoRepository) CreateBatch(ctx context.Context, permanentResidenceID string, dependents []entities.Dependent) ([]entities.Dependent, error) {
	if len(dependents) == 0 {
		return nil, nil
	}

	created := newDependentBatch(permanentResidenceID, dependents, time.Now().UTC())

	for _, chunk := range chunkDependents(created, maxBatchWriteItems) {
		reqs := make([]types.WriteRequest, 0, len(chunk))
		for _, d := range chunk {
			av, err := attributevalue.MarshalMap(toDependentItem(d))
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: reqs},
		})
		if err != nil {
			return nil, err
		}
		if n := len(out.UnprocessedItems[r.tableName]); n > 0 {
			log.Printf("[dependents][repository] batch unprocessed record_id=%s count=%d", permanentResidenceID, n)
			return nil, fmt.Errorf("%w: %d of %d", ErrUnprocessedDependents, n, len(chunk))
		}
	}
	return created, nil
}

// Update rewrites a dependent only while it still belongs to d.PermanentResidenceID.
// A missing item or one owned by another record yields the zero value.
func (r *DependentDynamoRepository) Update(ctx context.Context, d entities.Dependent) (entities.Dependent, error) {
	in, err := dependentUpdateInput(r.tableName, d)
	if err != nil {
		return entities.Dependent{}, err
	}
	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Dependent{}, nil
		}
		return entities.Dependent{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Dependent{}, nil
	}
	var it dependentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Dependent{}, err
	}
	return fromDependentItem(it), nil
}

func (r *DependentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ListByPermanentResidenceID returns dependents in creation order.
func (r *DependentDynamoRepository) ListByPermanentResidenceID(ctx context.Context, permanentResidenceID string) ([]entities.Dependent, error) {
	var items []entities.Dependent
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dependentRecordIndex),
		KeyConditionExpression: aws.String("permanent_residence_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: permanentResidenceID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it dependentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromDependentItem(it))
		}
	}
	sortDependents(items)
	return items, nil
}

// newDependentBatch stamps ids and strictly increasing creation times so the
// batch reloads in the order it was submitted.
func dependentUpdateInput(table string, d entities.Dependent) (*dynamodb.UpdateItemInput, error) {
	if d.PermanentResidenceID == "" {
		return nil, fmt.Errorf("%w: %s", ErrDependentOwnerMissing, d.ID)
	}
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID.Key()},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #permanent_residence_id = :permanent_residence_id"),
		UpdateExpression:    aws.String("SET #last_name = :last_name, #first_name = :first_name, #age = :age"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":permanent_residence_id": &types.AttributeValueMemberS{Value: d.PermanentResidenceID},
			":last_name":              &types.AttributeValueMemberS{Value: d.LastName},
			":first_name":             &types.AttributeValueMemberS{Value: d.FirstName},
			":age":                    &types.AttributeValueMemberN{Value: strconv.Itoa(d.Age)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                     "id",
			"#permanent_residence_id": "permanent_residence_id",
			"#last_name":              "last_name",
			"#first_name":             "first_name",
			"#age":                    "age",
		},
		ReturnValues: types.ReturnValueAllNew,
	}, nil
}

func newDependentBatch(permanentResidenceID string, dependents []entities.Dependent, now time.Time) []entities.Dependent {
	out := make([]entities.Dependent, len(dependents))
	for i, d := range dependents {
		d.ID = entities.PersistentDependentID(uuid.NewString())
		d.PermanentResidenceID = permanentResidenceID
		d.CreatedAt = now.Add(time.Duration(i))
		out[i] = d
	}
	return out
}

func chunkDependents(items []entities.Dependent, size int) [][]entities.Dependent {
	var chunks [][]entities.Dependent
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[:size:size])
	}
	if len(items) > 0 {
		chunks = append(chunks, items)
	}
	return chunks
}

func sortDependents(items []entities.Dependent) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID.Key() < items[j].ID.Key()
	})
}

func toDependentItem(d entities.Dependent) dependentItem {
	return dependentItem{
		ID:                   d.ID.Key(),
		PermanentResidenceID: d.PermanentResidenceID,
		LastName:             d.LastName,
		FirstName:            d.FirstName,
		Age:                  d.Age,
		CreatedAt:            formatTime(d.CreatedAt),
	}
}

func fromDependentItem(it dependentItem) entities.Dependent {
	return entities.Dependent{
		ID:                   entities.PersistentDependentID(it.ID),
		PermanentResidenceID: it.PermanentResidenceID,
		LastName:             it.LastName,
		FirstName:            it.FirstName,
		Age:                  it.Age,
		CreatedAt:            parseTime(it.CreatedAt),
	}
}
