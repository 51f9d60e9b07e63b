package repository

import (
	"context"
	"fmt"
	"sync"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const paymentsEntityIDIndex = "entity_id-index"

type paymentItem struct {
	PaymentID    string `dynamodbav:"payment_id"`
	EntityID     string `dynamodbav:"entity_id"`
	Kind         string `dynamodbav:"kind"`
	Status       string `dynamodbav:"status"`
	StatusDetail string `dynamodbav:"status_detail"`
	Amount       string `dynamodbav:"amount"`
	PayerEmail   string `dynamodbav:"payer_email"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PaymentLedgerDynamoRepository persists PaymentRecord rows in one DynamoDB
// table per entity kind.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: entity_id-index (PK: entity_id)
type PaymentLedgerDynamoRepository struct {
	ddb    DynamoAPI
	tables map[entities.EntityKind]string
}

var _ interfaces.IPaymentLedgerRepository = (*PaymentLedgerDynamoRepository)(nil)

func NewPaymentLedgerDynamoRepository(ddb DynamoAPI, tables map[entities.EntityKind]string) *PaymentLedgerDynamoRepository {
	return &PaymentLedgerDynamoRepository{ddb: ddb, tables: tables}
}

// Upsert is a single UpdateItem: status, amount and payer email are always
// overwritten, the insert-time fields only when absent.
func (r *PaymentLedgerDynamoRepository) Upsert(ctx context.Context, rec entities.PaymentRecord) error {
	table, err := tableFor(r.tables, rec.Kind)
	if err != nil {
		return err
	}
	it := toPaymentItem(rec)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: it.PaymentID},
		},
		UpdateExpression: aws.String("SET #status = :status, #status_detail = :status_detail, #updated_at = :updated_at, " +
			"#amount = :amount, #payer_email = :payer_email, " +
			"#entity_id = if_not_exists(#entity_id, :entity_id), #kind = if_not_exists(#kind, :kind), " +
			"#created_at = if_not_exists(#created_at, :created_at)"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":        "status",
			"#status_detail": "status_detail",
			"#updated_at":    "updated_at",
			"#amount":        "amount",
			"#payer_email":   "payer_email",
		}, map[string]string{
			"#entity_id":  "entity_id",
			"#kind":       "kind",
			"#created_at": "created_at",
		}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: it.Status},
			":status_detail": &types.AttributeValueMemberS{Value: it.StatusDetail},
			":updated_at":    &types.AttributeValueMemberS{Value: it.UpdatedAt},
			":entity_id":     &types.AttributeValueMemberS{Value: it.EntityID},
			":kind":          &types.AttributeValueMemberS{Value: it.Kind},
			":amount":        &types.AttributeValueMemberS{Value: it.Amount},
			":payer_email":   &types.AttributeValueMemberS{Value: it.PayerEmail},
			":created_at":    &types.AttributeValueMemberS{Value: it.CreatedAt},
		},
	})
	if err != nil {
		log.Printf("[payment][repository] upsert failed table=%s payment_id=%s err=%v", table, it.PaymentID, err)
		return err
	}
	return nil
}

func (r *PaymentLedgerDynamoRepository) InsertIfAbsent(ctx context.Context, rec entities.PaymentRecord) error {
	table, err := tableFor(r.tables, rec.Kind)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toPaymentItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#payment_id)"),
		ExpressionAttributeNames: map[string]string{
			"#payment_id": "payment_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return interfaces.ErrPaymentAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PaymentLedgerDynamoRepository) GetByPaymentID(ctx context.Context, kind entities.EntityKind, paymentID string) (entities.PaymentRecord, error) {
	table, err := tableFor(r.tables, kind)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it, kind), nil
}

func (r *PaymentLedgerDynamoRepository) ListByEntityID(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.PaymentRecord, error) {
	table, err := tableFor(r.tables, kind)
	if err != nil {
		return nil, err
	}

	items := []entities.PaymentRecord{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(paymentsEntityIDIndex),
			KeyConditionExpression: aws.String("entity_id = :eid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: entityID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItem(it, kind))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ListByEntityIDs queries the entity index once per id with bounded parallelism.
// Any failed query fails the whole batch.
func (r *PaymentLedgerDynamoRepository) ListByEntityIDs(ctx context.Context, kind entities.EntityKind, entityIDs []string) (map[string][]entities.PaymentRecord, error) {
	if _, err := tableFor(r.tables, kind); err != nil {
		return nil, err
	}
	ids := uniqueNonEmpty(entityIDs)
	out := make(map[string][]entities.PaymentRecord, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelQueries)
	for _, id := range ids {
		g.Go(func() error {
			rows, err := r.ListByEntityID(gctx, kind, id)
			if err != nil {
				return fmt.Errorf("entity %s: %w", id, err)
			}
			if len(rows) == 0 {
				return nil
			}
			mu.Lock()
			out[id] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		PaymentID:    p.PaymentID,
		EntityID:     p.EntityID,
		Kind:         string(p.Kind),
		Status:       p.Status,
		StatusDetail: p.StatusDetail,
		Amount:       p.Amount.String(),
		PayerEmail:   p.PayerEmail,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem, kind entities.EntityKind) entities.PaymentRecord {
	amount, _ := decimal.NewFromString(it.Amount)
	if it.Kind != "" {
		kind = entities.EntityKind(it.Kind)
	}
	return entities.PaymentRecord{
		PaymentID:    it.PaymentID,
		EntityID:     it.EntityID,
		Kind:         kind,
		Status:       it.Status,
		StatusDetail: it.StatusDetail,
		Amount:       amount,
		PayerEmail:   it.PayerEmail,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

// PaymentTableDefinitions returns the CreateTable inputs for the ledger tables.
func PaymentTableDefinitions(tables map[entities.EntityKind]string) []*dynamodb.CreateTableInput {
	out := make([]*dynamodb.CreateTableInput, 0, len(tables))
	for _, kind := range entities.AllEntityKinds {
		name, ok := tables[kind]
		if !ok {
			continue
		}
		out = append(out, &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("payment_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("entity_id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("payment_id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(paymentsEntityIDIndex),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String("entity_id"), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		})
	}
	return out
}
