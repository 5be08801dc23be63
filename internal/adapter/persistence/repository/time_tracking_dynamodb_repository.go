package repository

import (
	"context"
	"strconv"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTimeTrackingTableName = "time_tracking"

type timeTrackingItem struct {
	ID        string `dynamodbav:"id"`
	CaseID    string `dynamodbav:"case_id"`
	Stage     int    `dynamodbav:"stage"`
	StartedAt string `dynamodbav:"started_at"`
	EndedAt   string `dynamodbav:"ended_at"`
	Seconds   string `dynamodbav:"seconds"`
}

// TimeTrackingDynamoRepository persists TimeTracking rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI case_id-index: case_id (string)
type TimeTrackingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeTrackingRepository = (*TimeTrackingDynamoRepository)(nil)

func NewTimeTrackingDynamoRepository(ddb *dynamodb.Client) *TimeTrackingDynamoRepository {
	return &TimeTrackingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_TRACKING_TABLE", defaultTimeTrackingTableName),
	}
}

func (r *TimeTrackingDynamoRepository) Create(ctx context.Context, t entities.TimeTracking) (entities.TimeTracking, error) {
	av, err := attributevalue.MarshalMap(timeTrackingItem{
		ID:        t.ID,
		CaseID:    t.CaseID,
		Stage:     t.Stage,
		StartedAt: timeToString(t.StartedAt),
		EndedAt:   timeToString(t.EndedAt),
		Seconds:   strconv.FormatInt(t.Seconds, 10),
	})
	if err != nil {
		return entities.TimeTracking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TimeTracking{}, err
	}
	return t, nil
}

func (r *TimeTrackingDynamoRepository) ListByCaseID(ctx context.Context, caseID string) ([]entities.TimeTracking, error) {
	out, err := r.queryByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.TimeTracking, 0, len(out.Items))
	for _, item := range out.Items {
		var it timeTrackingItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		seconds, _ := strconv.ParseInt(it.Seconds, 10, 64)
		entries = append(entries, entities.TimeTracking{
			ID:        it.ID,
			CaseID:    it.CaseID,
			Stage:     it.Stage,
			StartedAt: stringToTime(it.StartedAt),
			EndedAt:   stringToTime(it.EndedAt),
			Seconds:   seconds,
		})
	}
	return entries, nil
}

func (r *TimeTrackingDynamoRepository) DeleteByCaseID(ctx context.Context, caseID string) error {
	out, err := r.queryByCaseID(ctx, caseID)
	if err != nil {
		return err
	}
	for _, item := range out.Items {
		var it timeTrackingItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TimeTrackingDynamoRepository) queryByCaseID(ctx context.Context, caseID string) (*dynamodb.QueryOutput, error) {
	return r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("case_id-index"),
		KeyConditionExpression: aws.String("#case_id = :case_id"),
		ExpressionAttributeNames: map[string]string{
			"#case_id": "case_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":case_id": &types.AttributeValueMemberS{Value: caseID},
		},
	})
}
