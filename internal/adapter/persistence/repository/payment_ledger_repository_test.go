package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDynamo struct {
	mu      sync.Mutex
	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput

	putErr  error
	getOut  *dynamodb.GetItemOutput
	queryFn func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts = append(s.puts, in)
	return &dynamodb.PutItemOutput{}, s.putErr
}

func (s *stubDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return s.getOut, nil
}

func (s *stubDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, in)
	return &dynamodb.UpdateItemOutput{}, nil
}

func (s *stubDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.mu.Lock()
	s.queries = append(s.queries, in)
	s.mu.Unlock()
	if s.queryFn == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return s.queryFn(in)
}

var testTables = map[entities.EntityKind]string{
	entities.EntityKindInscription: "inscription_payments",
	entities.EntityKindPermit:      "permit_payments",
}

func samplePayment() entities.PaymentRecord {
	at := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	return entities.PaymentRecord{
		PaymentID: "123", EntityID: "INS-1", Kind: entities.EntityKindInscription,
		Status: "approved", StatusDetail: "accredited",
		Amount: decimal.RequireFromString("15000.50"), PayerEmail: "a@b.com",
		CreatedAt: at, UpdatedAt: at,
	}
}

func TestPaymentLedgerDynamo_Upsert(t *testing.T) {
	ddb := &stubDynamo{}
	repo := NewPaymentLedgerDynamoRepository(ddb, testTables)

	require.NoError(t, repo.Upsert(context.Background(), samplePayment()))
	require.Len(t, ddb.updates, 1)

	in := ddb.updates[0]
	assert.Equal(t, "inscription_payments", aws.ToString(in.TableName))
	assert.Contains(t, aws.ToString(in.UpdateExpression), "#amount = :amount")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "15000.5"}, in.ExpressionAttributeValues[":amount"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "123"}, in.Key["payment_id"])
	assert.Contains(t, aws.ToString(in.UpdateExpression), "#created_at = if_not_exists(#created_at, :created_at)")
}

func TestPaymentLedgerDynamo_UnknownKind(t *testing.T) {
	repo := NewPaymentLedgerDynamoRepository(&stubDynamo{}, map[entities.EntityKind]string{})
	err := repo.Upsert(context.Background(), samplePayment())
	assert.ErrorIs(t, err, errUnknownTable)
}

func TestPaymentLedgerDynamo_InsertIfAbsent(t *testing.T) {
	t.Run("conditional failure maps to already exists", func(t *testing.T) {
		ddb := &stubDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		repo := NewPaymentLedgerDynamoRepository(ddb, testTables)

		err := repo.InsertIfAbsent(context.Background(), samplePayment())
		assert.ErrorIs(t, err, interfaces.ErrPaymentAlreadyExists)
		assert.Equal(t, "attribute_not_exists(#payment_id)", aws.ToString(ddb.puts[0].ConditionExpression))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		repo := NewPaymentLedgerDynamoRepository(&stubDynamo{putErr: boom}, testTables)
		assert.ErrorIs(t, repo.InsertIfAbsent(context.Background(), samplePayment()), boom)
	})
}

func TestPaymentLedgerDynamo_GetByPaymentID(t *testing.T) {
	ddb := &stubDynamo{}
	repo := NewPaymentLedgerDynamoRepository(ddb, testTables)

	got, err := repo.GetByPaymentID(context.Background(), entities.EntityKindInscription, "404")
	require.NoError(t, err)
	assert.Equal(t, "", got.PaymentID)

	item, err := attributevalue.MarshalMap(toPaymentItem(samplePayment()))
	require.NoError(t, err)
	ddb.getOut = &dynamodb.GetItemOutput{Item: item}

	got, err = repo.GetByPaymentID(context.Background(), entities.EntityKindInscription, "123")
	require.NoError(t, err)
	assert.Equal(t, "INS-1", got.EntityID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("15000.5")))
	assert.True(t, got.CreatedAt.Equal(samplePayment().CreatedAt))
}

func TestPaymentLedgerDynamo_ListByEntityIDs(t *testing.T) {
	first := samplePayment()
	second := samplePayment()
	second.PaymentID = "124"
	second.Status = "rejected"

	itemA, _ := attributevalue.MarshalMap(toPaymentItem(first))
	itemB, _ := attributevalue.MarshalMap(toPaymentItem(second))

	ddb := &stubDynamo{queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		eid := in.ExpressionAttributeValues[":eid"].(*types.AttributeValueMemberS).Value
		if eid != "INS-1" {
			return &dynamodb.QueryOutput{}, nil
		}
		// two pages
		if in.ExclusiveStartKey == nil {
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{itemA},
				LastEvaluatedKey: map[string]types.AttributeValue{"payment_id": &types.AttributeValueMemberS{Value: "123"}},
			}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{itemB}}, nil
	}}
	repo := NewPaymentLedgerDynamoRepository(ddb, testTables)

	got, err := repo.ListByEntityIDs(context.Background(), entities.EntityKindInscription, []string{"INS-1", "INS-2", "INS-1", ""})
	require.NoError(t, err)
	assert.Len(t, got["INS-1"], 2)
	_, ok := got["INS-2"]
	assert.False(t, ok)
	assert.Equal(t, paymentsEntityIDIndex, aws.ToString(ddb.queries[0].IndexName))
}

func TestPaymentLedgerDynamo_ListByEntityIDsFailsWhole(t *testing.T) {
	ddb := &stubDynamo{queryFn: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		return nil, errors.New("unavailable")
	}}
	repo := NewPaymentLedgerDynamoRepository(ddb, testTables)

	_, err := repo.ListByEntityIDs(context.Background(), entities.EntityKindPermit, []string{"PER-1", "PER-2"})
	assert.Error(t, err)
}

func TestPaymentTableDefinitions(t *testing.T) {
	defs := PaymentTableDefinitions(testTables)
	require.Len(t, defs, 2)
	assert.Equal(t, "inscription_payments", aws.ToString(defs[0].TableName))
	assert.Equal(t, paymentsEntityIDIndex, aws.ToString(defs[0].GlobalSecondaryIndexes[0].IndexName))
}

func TestPaymentRowMapping(t *testing.T) {
	p := samplePayment()
	p.CreatedAt = p.CreatedAt.In(time.FixedZone("ART", -3*3600))

	row := toPaymentRow(p)
	assert.Equal(t, "inscription", row.Kind)
	assert.Equal(t, time.UTC, row.CreatedAt.Location())

	back := fromPaymentRow(row, entities.EntityKindPermit)
	assert.Equal(t, entities.EntityKindInscription, back.Kind)
	assert.True(t, back.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, back.Amount.Equal(p.Amount))
}

type stubCreator struct {
	names []string
	errs  map[string]error
}

func (s *stubCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	s.names = append(s.names, name)
	return &dynamodb.CreateTableOutput{}, s.errs[name]
}

func TestCreateTables(t *testing.T) {
	defs := append(PaymentTableDefinitions(testTables), SentActionTableDefinition("sent_actions"))

	creator := &stubCreator{errs: map[string]error{
		"permit_payments": &types.ResourceInUseException{Message: aws.String("exists")},
	}}
	require.NoError(t, CreateTables(context.Background(), creator, defs))
	assert.Len(t, creator.names, 3)

	failing := &stubCreator{errs: map[string]error{"sent_actions": errors.New("denied")}}
	err := CreateTables(context.Background(), failing, defs)
	assert.ErrorContains(t, err, "sent_actions")
}
