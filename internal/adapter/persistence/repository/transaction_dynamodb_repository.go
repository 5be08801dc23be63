package repository

import (
	"context"
	"errors"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	ID                string `dynamodbav:"id"`
	CaseID            string `dynamodbav:"case_id"`
	QuoteID           string `dynamodbav:"quote_id,omitempty"`
	BillOfSale        string `dynamodbav:"bill_of_sale,omitempty"`
	PayoffStatus      string `dynamodbav:"payoff_status"`
	PayoffConfirmedAt string `dynamodbav:"payoff_confirmed_at,omitempty"`
	SignedDocuments   string `dynamodbav:"signed_documents,omitempty"`
	SigningSessionID  string `dynamodbav:"signing_session_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI case_id-index: case_id (string)
//
// Update rewrites the whole item (minus identity); transactions are updated,
// never replaced, across paperwork and completion.
type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("case_id-index"),
		KeyConditionExpression: aws.String("#case_id = :case_id"),
		ExpressionAttributeNames: map[string]string{
			"#case_id": "case_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":case_id": &types.AttributeValueMemberS{Value: caseID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	return r.update(ctx, t.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #bill_of_sale = :bill_of_sale, #payoff_status = :payoff_status, #signed_documents = :signed_documents, #signing_session_id = :signing_session_id, #quote_id = :quote_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":bill_of_sale":       &types.AttributeValueMemberS{Value: jsonString(t.BillOfSale)},
			":payoff_status":      &types.AttributeValueMemberS{Value: string(t.PayoffStatus)},
			":signed_documents":   &types.AttributeValueMemberS{Value: jsonString(t.SignedDocuments)},
			":signing_session_id": &types.AttributeValueMemberS{Value: t.SigningSessionID},
			":quote_id":           &types.AttributeValueMemberS{Value: t.QuoteID},
			":updated_at":         &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#bill_of_sale":       "bill_of_sale",
			"#payoff_status":      "payoff_status",
			"#signed_documents":   "signed_documents",
			"#signing_session_id": "signing_session_id",
			"#quote_id":           "quote_id",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TransactionDynamoRepository) ConfirmPayoff(ctx context.Context, id string, at time.Time) (entities.Transaction, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payoff_status = :payoff_status, #payoff_confirmed_at = :payoff_confirmed_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payoff_status":       &types.AttributeValueMemberS{Value: string(entities.PayoffStatusConfirmed)},
			":payoff_confirmed_at": &types.AttributeValueMemberS{Value: timeToString(at)},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payoff_status":       "payoff_status",
			"#payoff_confirmed_at": "payoff_confirmed_at",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *TransactionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Transaction, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

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
			return entities.Transaction{}, nil
		}
		return entities.Transaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Transaction{}, nil
	}
	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:                t.ID,
		CaseID:            t.CaseID,
		QuoteID:           t.QuoteID,
		BillOfSale:        jsonString(t.BillOfSale),
		PayoffStatus:      string(t.PayoffStatus),
		PayoffConfirmedAt: timeToStringPtr(t.PayoffConfirmedAt),
		SignedDocuments:   jsonString(t.SignedDocuments),
		SigningSessionID:  t.SigningSessionID,
		CreatedAt:         timeToString(t.CreatedAt),
		UpdatedAt:         timeToString(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:                it.ID,
		CaseID:            it.CaseID,
		QuoteID:           it.QuoteID,
		BillOfSale:        fromJSONString[entities.BillOfSale](it.BillOfSale),
		PayoffStatus:      entities.PayoffStatus(it.PayoffStatus),
		PayoffConfirmedAt: stringToTimePtr(it.PayoffConfirmedAt),
		SignedDocuments:   fromJSONString[[]entities.DocumentRef](it.SignedDocuments),
		SigningSessionID:  it.SigningSessionID,
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
}
