package dynamolib

import (
	"context"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/cockroachdb/errors"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/song-catalog/src/shared/config"
)

// guregu/dynamo drops empty strings on marshal, but an empty string
// is a different value from a missing one for us
var encoder = dynamodbattribute.NewEncoder(func(e *dynamodbattribute.Encoder) {
	e.MarshalOptions.EnableEmptyCollections = true
	e.NullEmptyString = false
	e.NullEmptyByteSlice = false
})

type putMap map[string]any

func (p putMap) MarshalDynamo() (*dynamodb.AttributeValue, error) {
	var fields map[string]any = p
	return encoder.Encode(fields)
}

func Open(dynamoConfig config.Dynamo) DynamoDBWrapper {
	dbSession := session.Must(session.NewSession())
	db := dynamo.New(dbSession, dynamoConfig.AWSConfig())
	return NewDynamoDBWrapper(db)
}

func NewDynamoDBWrapper(db *dynamo.DB) DynamoDBWrapper {
	return DynamoDBWrapper{DB: db}
}

type DynamoDBWrapper struct {
	*dynamo.DB
}

type DynamoTableWrapper struct {
	dynamo.Table
}

func (d DynamoDBWrapper) Table(tableName string) DynamoTableWrapper {
	return DynamoTableWrapper{
		Table: d.DB.Table(tableName),
	}
}

// EnsureTable creates the table from the dynamo tags of schema unless
// it already exists
func (d DynamoDBWrapper) EnsureTable(ctx context.Context, tableName string, schema any) error {
	tableNames, err := d.DB.ListTables().AllWithContext(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to list tables")
	}

	for _, existing := range tableNames {
		if existing == tableName {
			return nil
		}
	}

	if err := d.DB.CreateTable(tableName, schema).RunWithContext(ctx); err != nil {
		return errors.Wrapf(err, "Failed to create table %s", tableName)
	}

	return nil
}

func (d DynamoTableWrapper) Put(input map[string]any) *dynamo.Put {
	return d.Table.Put(putMap(input))
}

func ConditionalCheckFailed(err error) bool {
	var conditionErr *dynamodb.ConditionalCheckFailedException
	return errors.As(err, &conditionErr)
}
