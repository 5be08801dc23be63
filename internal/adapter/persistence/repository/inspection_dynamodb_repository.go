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

const defaultInspectionsTableName = "inspections"

type inspectionItem struct {
	ID              string `dynamodbav:"id"`
	CaseID          string `dynamodbav:"case_id"`
	Token           string `dynamodbav:"token"`
	InspectorName   string `dynamodbav:"inspector_name,omitempty"`
	InspectorEmail  string `dynamodbav:"inspector_email,omitempty"`
	InspectorPhone  string `dynamodbav:"inspector_phone,omitempty"`
	InspectorUserID string `dynamodbav:"inspector_user_id,omitempty"`
	ScheduledDate   string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime   string `dynamodbav:"scheduled_time,omitempty"`
	Sections        string `dynamodbav:"sections,omitempty"`
	Completed       bool   `dynamodbav:"completed"`
	CompletedAt     string `dynamodbav:"completed_at,omitempty"`
	OverallScore    string `dynamodbav:"overall_score,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository persists Inspection entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI token-index: token (string)
//   - GSI case_id-index: case_id (string)
type InspectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb *dynamodb.Client) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSPECTIONS_TABLE", defaultInspectionsTableName),
	}
}

func (r *InspectionDynamoRepository) Create(ctx context.Context, i entities.Inspection) (entities.Inspection, error) {
	av, err := attributevalue.MarshalMap(toInspectionItem(i))
	if err != nil {
		return entities.Inspection{}, err
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
		return entities.Inspection{}, err
	}
	return i, nil
}

func (r *InspectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Inspection, error) {
	return r.queryOne(ctx, "token-index", "token", token)
}

func (r *InspectionDynamoRepository) GetByCaseID(ctx context.Context, caseID string) (entities.Inspection, error) {
	return r.queryOne(ctx, "case_id-index", "case_id", caseID)
}

func (r *InspectionDynamoRepository) SaveDraft(ctx context.Context, id string, sections []entities.InspectionSection) (entities.Inspection, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #sections = :sections, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":sections":   &types.AttributeValueMemberS{Value: jsonString(sections)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#sections":   "sections",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *InspectionDynamoRepository) Complete(ctx context.Context, id string, sections []entities.InspectionSection, overallScore float64, at time.Time) (entities.Inspection, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #sections = :sections, #completed = :completed, #completed_at = :completed_at, #overall_score = :overall_score, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":sections":      &types.AttributeValueMemberS{Value: jsonString(sections)},
			":completed":     &types.AttributeValueMemberBOOL{Value: true},
			":completed_at":  &types.AttributeValueMemberS{Value: timeToString(at)},
			":overall_score": &types.AttributeValueMemberS{Value: floatToString(overallScore)},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#sections":      "sections",
			"#completed":     "completed",
			"#completed_at":  "completed_at",
			"#overall_score": "overall_score",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *InspectionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *InspectionDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Inspection, error) {
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
		return entities.Inspection{}, err
	}
	if len(out.Items) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Inspection, error) {
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
			return entities.Inspection{}, nil
		}
		return entities.Inspection{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inspection{}, nil
	}
	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func toInspectionItem(i entities.Inspection) inspectionItem {
	return inspectionItem{
		ID:              i.ID,
		CaseID:          i.CaseID,
		Token:           i.Token,
		InspectorName:   i.Inspector.Name,
		InspectorEmail:  i.Inspector.Email,
		InspectorPhone:  i.Inspector.Phone,
		InspectorUserID: i.InspectorUserID,
		ScheduledDate:   i.ScheduledDate,
		ScheduledTime:   i.ScheduledTime,
		Sections:        jsonString(i.Sections),
		Completed:       i.Completed,
		CompletedAt:     timeToStringPtr(i.CompletedAt),
		OverallScore:    floatToString(i.OverallScore),
		CreatedAt:       timeToString(i.CreatedAt),
		UpdatedAt:       timeToString(i.UpdatedAt),
	}
}

func fromInspectionItem(it inspectionItem) entities.Inspection {
	return entities.Inspection{
		ID:     it.ID,
		CaseID: it.CaseID,
		Token:  it.Token,
		Inspector: entities.ContactRef{
			Name:  it.InspectorName,
			Email: it.InspectorEmail,
			Phone: it.InspectorPhone,
		},
		InspectorUserID: it.InspectorUserID,
		ScheduledDate:   it.ScheduledDate,
		ScheduledTime:   it.ScheduledTime,
		Sections:        fromJSONString[[]entities.InspectionSection](it.Sections),
		Completed:       it.Completed,
		CompletedAt:     stringToTimePtr(it.CompletedAt),
		OverallScore:    stringToFloat(it.OverallScore),
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
}
