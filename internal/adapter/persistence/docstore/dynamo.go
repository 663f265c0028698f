package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore maps every collection onto a DynamoDB table whose partition
// key is the string attribute "id".
//
// Table names default to <prefix><collection> and can be overridden per
// collection with <COLLECTION>_TABLE (e.g. SALES_ORDERS_TABLE).
type DynamoStore struct {
	ddb    *dynamodb.Client
	prefix string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tablePrefix string) *DynamoStore {
	return &DynamoStore{ddb: ddb, prefix: tablePrefix}
}

func (s *DynamoStore) Collection(name string) Collection {
	return &dynamoCollection{ddb: s.ddb, name: name, table: s.tableName(name)}
}

func (s *DynamoStore) tableName(name string) string {
	if v := os.Getenv(strings.ToUpper(name) + "_TABLE"); v != "" {
		return v
	}
	return s.prefix + name
}

// EnsureCollections creates missing tables (on-demand billing) and waits
// until they are active. Intended for local DynamoDB.
func (s *DynamoStore) EnsureCollections(ctx context.Context, names ...string) error {
	waiter := dynamodb.NewTableExistsWaiter(s.ddb)
	for _, name := range names {
		table := s.tableName(name)
		_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return fmt.Errorf("describe table %s: %w", table, err)
		}

		_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(KeyField), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(KeyField), KeyType: types.KeyTypeHash},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", table, err)
			}
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait table %s: %w", table, err)
		}
	}
	return nil
}

type dynamoCollection struct {
	ddb   *dynamodb.Client
	name  string
	table string
}

func (c *dynamoCollection) Name() string { return c.name }

func (c *dynamoCollection) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyField: &types.AttributeValueMemberS{Value: key},
	}
}

// query resolves f to raw items. A filter pinning the key is served with a
// consistent GetItem; anything else is a filtered scan.
func (c *dynamoCollection) query(ctx context.Context, f Filter) ([]map[string]types.AttributeValue, error) {
	if key, ok := f.key(); ok {
		out, err := c.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:      aws.String(c.table),
			Key:            c.keyAttr(key),
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			return nil, nil
		}
		ok, err := match(out.Item, f)
		if err != nil || !ok {
			return nil, err
		}
		return []map[string]types.AttributeValue{out.Item}, nil
	}

	input := &dynamodb.ScanInput{
		TableName:      aws.String(c.table),
		ConsistentRead: aws.Bool(true),
	}
	if len(f) > 0 {
		b := newExpressionBuilder()
		cond, err := b.condition(f)
		if err != nil {
			return nil, err
		}
		input.FilterExpression = aws.String(cond)
		input.ExpressionAttributeNames = b.attributeNames()
		input.ExpressionAttributeValues = b.attributeValues()
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(c.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func (c *dynamoCollection) Find(ctx context.Context, f Filter, out any) error {
	items, err := c.query(ctx, f)
	if err != nil {
		return err
	}
	if items == nil {
		items = []map[string]types.AttributeValue{}
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

func (c *dynamoCollection) FindOne(ctx context.Context, f Filter, out any) (bool, error) {
	items, err := c.query(ctx, f)
	if err != nil || len(items) == 0 {
		return false, err
	}
	return true, attributevalue.UnmarshalMap(items[0], out)
}

func (c *dynamoCollection) InsertOne(ctx context.Context, doc any) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return err
	}
	if _, ok := keyOf(item); !ok {
		return ErrMissingKey
	}

	_, err = c.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": KeyField,
		},
	})
	if isConditionalCheckFailed(err) {
		return ErrDuplicateKey
	}
	return err
}

// resolveKey finds the key of the first document matching f.
func (c *dynamoCollection) resolveKey(ctx context.Context, f Filter) (string, bool, error) {
	if key, ok := f.key(); ok {
		return key, true, nil
	}
	items, err := c.query(ctx, f)
	if err != nil || len(items) == 0 {
		return "", false, err
	}
	key, ok := keyOf(items[0])
	return key, ok, nil
}

func (c *dynamoCollection) UpdateOne(ctx context.Context, f Filter, u *Update, out any) error {
	key, ok, err := c.resolveKey(ctx, f)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoMatch
	}

	b := newExpressionBuilder()
	cond, err := b.condition(Filter{Exists(KeyField)}.And(f...))
	if err != nil {
		return err
	}
	updateExpr, err := b.update(u)
	if err != nil {
		return err
	}
	if updateExpr == "" {
		// Nothing to write; still honour the filter as a read.
		if out == nil {
			var sink map[string]any
			out = &sink
		}
		found, err := c.FindOne(ctx, ByID(key).And(f...), out)
		if err != nil {
			return err
		}
		if !found {
			return ErrNoMatch
		}
		return nil
	}

	res, err := c.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(c.table),
		Key:                       c.keyAttr(key),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  b.attributeNames(),
		ExpressionAttributeValues: b.attributeValues(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return ErrNoMatch
		}
		return err
	}
	if out == nil || len(res.Attributes) == 0 {
		return nil
	}
	return attributevalue.UnmarshalMap(res.Attributes, out)
}

func (c *dynamoCollection) DeleteOne(ctx context.Context, f Filter) (bool, error) {
	key, ok, err := c.resolveKey(ctx, f)
	if err != nil || !ok {
		return false, err
	}

	b := newExpressionBuilder()
	cond, err := b.condition(Filter{Exists(KeyField)}.And(f...))
	if err != nil {
		return false, err
	}
	_, err = c.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(c.table),
		Key:                       c.keyAttr(key),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  b.attributeNames(),
		ExpressionAttributeValues: b.attributeValues(),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *dynamoCollection) CountDocuments(ctx context.Context, f Filter) (int, error) {
	if _, ok := f.key(); ok {
		items, err := c.query(ctx, f)
		return len(items), err
	}

	input := &dynamodb.ScanInput{
		TableName:      aws.String(c.table),
		Select:         types.SelectCount,
		ConsistentRead: aws.Bool(true),
	}
	if len(f) > 0 {
		b := newExpressionBuilder()
		cond, err := b.condition(f)
		if err != nil {
			return 0, err
		}
		input.FilterExpression = aws.String(cond)
		input.ExpressionAttributeNames = b.attributeNames()
		input.ExpressionAttributeValues = b.attributeValues()
	}

	total := 0
	p := dynamodb.NewScanPaginator(c.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func isConditionalCheckFailed(err error) bool {
	if err == nil {
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
