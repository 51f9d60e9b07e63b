package repository

import (
	"context"
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type sentActionItem struct {
	EntityKey      string `dynamodbav:"entity_key"`
	SortKey        string `dynamodbav:"sort_key"`
	ID             string `dynamodbav:"id"`
	EntityID       string `dynamodbav:"entity_id"`
	Kind           string `dynamodbav:"kind"`
	Action         string `dynamodbav:"action"`
	RecipientEmail string `dynamodbav:"recipient_email,omitempty"`
	Amount         string `dynamodbav:"amount,omitempty"`
	SentAt         string `dynamodbav:"sent_at"`
}

// SentActionDynamoRepository is the append-only dispatch log.
//
// Table requirements:
//   - PK: entity_key (string, "<kind>#<entity_id>")
//   - SK: sort_key (string, "<action>#<ulid>")
type SentActionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISentActionRepository = (*SentActionDynamoRepository)(nil)

func NewSentActionDynamoRepository(ddb DynamoAPI, tableName string) *SentActionDynamoRepository {
	return &SentActionDynamoRepository{ddb: ddb, tableName: tableName}
}

func entityKey(kind entities.EntityKind, entityID string) string {
	return string(kind) + "#" + entityID
}

func (r *SentActionDynamoRepository) Record(ctx context.Context, a entities.SentAction) error {
	if a.SentAt.IsZero() {
		a.SentAt = time.Now().UTC()
	}
	id := ulid.MustNew(ulid.Timestamp(a.SentAt), rand.Reader).String()
	it := sentActionItem{
		EntityKey:      entityKey(a.Kind, a.EntityID),
		SortKey:        string(a.Action) + "#" + id,
		ID:             id,
		EntityID:       a.EntityID,
		Kind:           string(a.Kind),
		Action:         string(a.Action),
		RecipientEmail: a.RecipientEmail,
		SentAt:         formatTime(a.SentAt),
	}
	if a.Amount != nil {
		it.Amount = a.Amount.String()
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// ActionsFor returns the distinct action kinds per entity id, sorted by name.
func (r *SentActionDynamoRepository) ActionsFor(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.ActionKind, error) {
	ids := uniqueNonEmpty(entityIDs)
	out := make(map[string][]entities.ActionKind, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelQueries)
	for _, id := range ids {
		g.Go(func() error {
			actions, err := r.actionsOf(gctx, kind, id)
			if err != nil {
				return fmt.Errorf("entity %s: %w", id, err)
			}
			if len(actions) == 0 {
				return nil
			}
			mu.Lock()
			out[id] = actions
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SentActionDynamoRepository) actionsOf(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.ActionKind, error) {
	seen := map[entities.ActionKind]struct{}{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			KeyConditionExpression:   aws.String("entity_key = :k"),
			ProjectionExpression:     aws.String("#action"),
			ExpressionAttributeNames: map[string]string{"#action": "action"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":k": &types.AttributeValueMemberS{Value: entityKey(kind, entityID)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it sentActionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.Action != "" {
				seen[entities.ActionKind(it.Action)] = struct{}{}
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	actions := make([]entities.ActionKind, 0, len(seen))
	for a := range seen {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions, nil
}

// SentActionTableDefinition returns the CreateTable input for the dispatch log.
func SentActionTableDefinition(tableName string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("entity_key"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sort_key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("entity_key"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("sort_key"), KeyType: types.KeyTypeRange},
		},
	}
}
