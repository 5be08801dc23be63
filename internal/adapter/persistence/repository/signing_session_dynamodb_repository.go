package repository

import (
	"context"
	"errors"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSigningSessionsTableName = "signing_sessions"

type signingSessionItem struct {
	ID            string `dynamodbav:"id"`
	CaseID        string `dynamodbav:"case_id"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	Token         string `dynamodbav:"token"`
	Status        string `dynamodbav:"status"`
	ExpiresAt     string `dynamodbav:"expires_at"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// SigningSessionDynamoRepository persists SigningSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI token-index: token (string)
type SigningSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISigningSessionRepository = (*SigningSessionDynamoRepository)(nil)

func NewSigningSessionDynamoRepository(ddb *dynamodb.Client) *SigningSessionDynamoRepository {
	return &SigningSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SIGNING_SESSIONS_TABLE", defaultSigningSessionsTableName),
	}
}

func (r *SigningSessionDynamoRepository) Create(ctx context.Context, s entities.SigningSession) (entities.SigningSession, error) {
	av, err := attributevalue.MarshalMap(toSigningSessionItem(s))
	if err != nil {
		return entities.SigningSession{}, err
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
		return entities.SigningSession{}, err
	}
	return s, nil
}

func (r *SigningSessionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.SigningSession, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("token-index"),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.SigningSession{}, err
	}
	if len(out.Items) == 0 {
		return entities.SigningSession{}, nil
	}

	var it signingSessionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.SigningSession{}, err
	}
	return fromSigningSessionItem(it), nil
}

func (r *SigningSessionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SigningSessionStatus) (entities.SigningSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SigningSession{}, nil
		}
		return entities.SigningSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SigningSession{}, nil
	}
	var it signingSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SigningSession{}, err
	}
	return fromSigningSessionItem(it), nil
}

func toSigningSessionItem(s entities.SigningSession) signingSessionItem {
	return signingSessionItem{
		ID:            s.ID,
		CaseID:        s.CaseID,
		TransactionID: s.TransactionID,
		Token:         s.Token,
		Status:        string(s.Status),
		ExpiresAt:     timeToString(s.ExpiresAt),
		CreatedAt:     timeToString(s.CreatedAt),
	}
}

func fromSigningSessionItem(it signingSessionItem) entities.SigningSession {
	return entities.SigningSession{
		ID:            it.ID,
		CaseID:        it.CaseID,
		TransactionID: it.TransactionID,
		Token:         it.Token,
		Status:        entities.SigningSessionStatus(it.Status),
		ExpiresAt:     stringToTime(it.ExpiresAt),
		CreatedAt:     stringToTime(it.CreatedAt),
	}
}
