package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID              string            `dynamodbav:"id"`
	CustomerID      string            `dynamodbav:"customer_id,omitempty"`
	VehicleID       string            `dynamodbav:"vehicle_id,omitempty"`
	InspectionID    string            `dynamodbav:"inspection_id,omitempty"`
	QuoteID         string            `dynamodbav:"quote_id,omitempty"`
	TransactionID   string            `dynamodbav:"transaction_id,omitempty"`
	EstimatorUserID string            `dynamodbav:"estimator_user_id,omitempty"`
	CurrentStage    int               `dynamodbav:"current_stage"`
	StageStatuses   map[string]string `dynamodbav:"stage_statuses"`
	Status          string            `dynamodbav:"status"`
	Documents       string            `dynamodbav:"documents,omitempty"`
	Completion      string            `dynamodbav:"completion,omitempty"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// CaseDynamoRepository persists Case aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// stage_statuses is stored with "1".."7" string keys; those keys are part of
// the client wire contract. There is no version attribute: concurrent writers
// resolve last-write-wins at the item level.
type CaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb *dynamodb.Client) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	av, err := attributevalue.MarshalMap(toCaseItem(c))
	if err != nil {
		return entities.Case{}, err
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
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Case{}, err
	}
	if len(out.Item) == 0 {
		return entities.Case{}, nil
	}

	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func (r *CaseDynamoRepository) List(ctx context.Context) ([]entities.Case, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	cases := make([]entities.Case, 0, len(out.Items))
	for _, item := range out.Items {
		var it caseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		cases = append(cases, fromCaseItem(it))
	}
	return cases, nil
}

func (r *CaseDynamoRepository) UpdateStage(ctx context.Context, id string, stage int, statuses map[int]entities.StageStatus, status entities.CaseStatus) (entities.Case, error) {
	stageAV, err := attributevalue.Marshal(stageStatusesToWire(statuses))
	if err != nil {
		return entities.Case{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #current_stage = :current_stage, #stage_statuses = :stage_statuses, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":current_stage":  &types.AttributeValueMemberN{Value: strconv.Itoa(stage)},
			":stage_statuses": stageAV,
			":status":         &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#current_stage":  "current_stage",
			"#stage_statuses": "stage_statuses",
			"#status":         "status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) LinkInspection(ctx context.Context, id, inspectionID string) (entities.Case, error) {
	return r.setRef(ctx, id, "inspection_id", inspectionID)
}

func (r *CaseDynamoRepository) LinkQuote(ctx context.Context, id, quoteID, estimatorUserID string) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote_id = :quote_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quote_id":   &types.AttributeValueMemberS{Value: quoteID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quote_id":   "quote_id",
			"#updated_at": "updated_at",
		}
		if estimatorUserID != "" {
			expr += ", #estimator_user_id = :estimator_user_id"
			vals[":estimator_user_id"] = &types.AttributeValueMemberS{Value: estimatorUserID}
			names["#estimator_user_id"] = "estimator_user_id"
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) LinkTransaction(ctx context.Context, id, transactionID string) (entities.Case, error) {
	return r.setRef(ctx, id, "transaction_id", transactionID)
}

func (r *CaseDynamoRepository) SetCompletion(ctx context.Context, id string, status entities.CaseStatus, completion entities.Completion) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #completion = :completion, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":completion": &types.AttributeValueMemberS{Value: jsonString(completion)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#completion": "completion",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CaseDynamoRepository) setRef(ctx context.Context, id, attr, value string) (entities.Case, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #ref = :ref, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":ref":        &types.AttributeValueMemberS{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#ref":        attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CaseDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Case, error) {
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
			return entities.Case{}, nil
		}
		return entities.Case{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Case{}, nil
	}
	var it caseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func stageStatusesToWire(statuses map[int]entities.StageStatus) map[string]string {
	wire := make(map[string]string, len(statuses))
	for stage, st := range statuses {
		wire[strconv.Itoa(stage)] = string(st)
	}
	return wire
}

func stageStatusesFromWire(wire map[string]string) map[int]entities.StageStatus {
	statuses := make(map[int]entities.StageStatus, len(wire))
	for key, st := range wire {
		stage, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		statuses[stage] = entities.StageStatus(st)
	}
	return statuses
}

func toCaseItem(c entities.Case) caseItem {
	it := caseItem{
		ID:              c.ID,
		CustomerID:      c.CustomerID,
		VehicleID:       c.VehicleID,
		InspectionID:    c.InspectionID,
		QuoteID:         c.QuoteID,
		TransactionID:   c.TransactionID,
		EstimatorUserID: c.EstimatorUserID,
		CurrentStage:    c.CurrentStage,
		StageStatuses:   stageStatusesToWire(c.StageStatuses),
		Status:          string(c.Status),
		CreatedAt:       timeToString(c.CreatedAt),
		UpdatedAt:       timeToString(c.UpdatedAt),
	}
	if len(c.Documents) > 0 {
		it.Documents = jsonString(c.Documents)
	}
	if c.Completion != nil {
		it.Completion = jsonString(*c.Completion)
	}
	return it
}

func fromCaseItem(it caseItem) entities.Case {
	c := entities.Case{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		VehicleID:       it.VehicleID,
		InspectionID:    it.InspectionID,
		QuoteID:         it.QuoteID,
		TransactionID:   it.TransactionID,
		EstimatorUserID: it.EstimatorUserID,
		CurrentStage:    it.CurrentStage,
		StageStatuses:   stageStatusesFromWire(it.StageStatuses),
		Status:          entities.CaseStatus(it.Status),
		CreatedAt:       stringToTime(it.CreatedAt),
		UpdatedAt:       stringToTime(it.UpdatedAt),
	}
	if it.Documents != "" {
		c.Documents = fromJSONString[[]entities.DocumentRef](it.Documents)
	}
	if it.Completion != "" {
		comp := fromJSONString[entities.Completion](it.Completion)
		c.Completion = &comp
	}
	return c
}
