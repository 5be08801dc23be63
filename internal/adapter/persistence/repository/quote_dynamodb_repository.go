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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	CaseID          string `dynamodbav:"case_id"`
	Token           string `dynamodbav:"token"`
	EstimatorName   string `dynamodbav:"estimator_name,omitempty"`
	EstimatorEmail  string `dynamodbav:"estimator_email,omitempty"`
	EstimatorPhone  string `dynamodbav:"estimator_phone,omitempty"`
	EstimatorUserID string `dynamodbav:"estimator_user_id,omitempty"`
	OfferAmount     string `dynamodbav:"offer_amount,omitempty"`
	Status          string `dynamodbav:"status"`
	OfferDecision   string `dynamodbav:"offer_decision,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI token-index: token (string)
//   - GSI case_id-index: case_id (string)
//
// The repository does not enforce the decision lock; that is the use case's
// job. It only stores what it is told.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	return r.queryOne(ctx, "token-index", "token", token)
}

func (r *QuoteDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.Quote, error) {
	return r.queryOne(ctx, "case_id-index", "case_id", caseID)
}

func (r *QuoteDynamoRepository) SetEstimator(ctx context.Context, id string, estimator entities.ContactRef, estimatorUserID string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estimator_name = :name, #estimator_email = :email, #estimator_phone = :phone, #estimator_user_id = :user_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: estimator.Name},
			":email":      &types.AttributeValueMemberS{Value: estimator.Email},
			":phone":      &types.AttributeValueMemberS{Value: estimator.Phone},
			":user_id":    &types.AttributeValueMemberS{Value: estimatorUserID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#estimator_name":    "estimator_name",
			"#estimator_email":   "estimator_email",
			"#estimator_phone":   "estimator_phone",
			"#estimator_user_id": "estimator_user_id",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateOffer(ctx context.Context, id string, offerAmount float64, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #offer_amount = :offer_amount, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":offer_amount": &types.AttributeValueMemberS{Value: floatToString(offerAmount)},
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#offer_amount": "offer_amount",
			"#status":       "status",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) SetDecision(ctx context.Context, id string, decision entities.OfferDecision, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #offer_decision = :offer_decision, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":offer_decision": &types.AttributeValueMemberS{Value: jsonString(decision)},
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#offer_decision": "offer_decision",
			"#status":         "status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuoteDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#attr = :value"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:              q.ID,
		CaseID:          q.CaseID,
		Token:           q.Token,
		EstimatorName:   q.Estimator.Name,
		EstimatorEmail:  q.Estimator.Email,
		EstimatorPhone:  q.Estimator.Phone,
		EstimatorUserID: q.EstimatorUserID,
		OfferAmount:     floatToString(q.OfferAmount),
		Status:          string(q.Status),
		CreatedAt:       timeToString(q.CreatedAt),
		UpdatedAt:       timeToString(q.UpdatedAt),
	}
	if q.OfferDecision != nil {
		it.OfferDecision = jsonString(*q.OfferDecision)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:     it.ID,
		CaseID: it.CaseID,
		Token:  it.Token,
		Estimator: entities.ContactRef{
			Name:  it.EstimatorName,
			Email: it.EstimatorEmail,
			Phone: it.EstimatorPhone,
		},
		EstimatorUserID: it.EstimatorUserID,
		OfferAmount:     stringToFloat(it.OfferAmount),
		Status:          entities.QuoteStatus(it.Status),
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
	if it.OfferDecision != "" {
		d := fromJSONString[entities.OfferDecision](it.OfferDecision)
		q.OfferDecision = &d
	}
	return q
}
