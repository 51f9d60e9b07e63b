package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caza_backend/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// TableCreator is the part of *dynamodb.Client CreateTables uses.
type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// CreateTables creates every table in defs. Tables that already exist are skipped.
func CreateTables(ctx context.Context, api TableCreator, defs []*dynamodb.CreateTableInput) error {
	for _, def := range defs {
		_, err := api.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[repository][dynamodb] table created name=%s", aws.ToString(def.TableName))
		case errors.As(err, &inUse):
			log.Printf("[repository][dynamodb] table exists name=%s", aws.ToString(def.TableName))
		default:
			return fmt.Errorf("create table %s: %w", aws.ToString(def.TableName), err)
		}
	}
	return nil
}

// maxParallelQueries bounds per-entity fan-out on batched reads.
const maxParallelQueries = 8

var errUnknownTable = errors.New("no table configured for entity kind")

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func tableFor(tables map[entities.EntityKind]string, kind entities.EntityKind) (string, error) {
	t, ok := tables[kind]
	if !ok || t == "" {
		return "", errUnknownTable
	}
	return t, nil
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func uniqueNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
