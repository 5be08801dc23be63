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

const defaultVehiclesTableName = "vehicles"

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	CaseID       string `dynamodbav:"case_id"`
	VIN          string `dynamodbav:"vin,omitempty"`
	Year         string `dynamodbav:"year,omitempty"`
	Make         string `dynamodbav:"make"`
	Model        string `dynamodbav:"model"`
	Trim         string `dynamodbav:"trim,omitempty"`
	Color        string `dynamodbav:"color,omitempty"`
	Odometer     string `dynamodbav:"odometer,omitempty"`
	TitleNumber  string `dynamodbav:"title_number,omitempty"`
	TitleState   string `dynamodbav:"title_state,omitempty"`
	LicensePlate string `dynamodbav:"license_plate,omitempty"`
	TitleStatus  string `dynamodbav:"title_status,omitempty"`
	LoanOnTitle  bool   `dynamodbav:"loan_on_title"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update overwrites the whole item; the paperwork flow is the only writer
// after intake.
type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:           v.ID,
		CaseID:       v.CaseID,
		VIN:          v.VIN,
		Year:         strconv.Itoa(v.Year),
		Make:         v.Make,
		Model:        v.Model,
		Trim:         v.Trim,
		Color:        v.Color,
		Odometer:     strconv.Itoa(v.Odometer),
		TitleNumber:  v.TitleNumber,
		TitleState:   v.TitleState,
		LicensePlate: v.LicensePlate,
		TitleStatus:  v.TitleStatus,
		LoanOnTitle:  v.LoanOnTitle,
		CreatedAt:    timeToString(v.CreatedAt),
		UpdatedAt:    timeToString(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	year, _ := strconv.Atoi(it.Year)
	odometer, _ := strconv.Atoi(it.Odometer)
	return entities.Vehicle{
		ID:           it.ID,
		CaseID:       it.CaseID,
		VIN:          it.VIN,
		Year:         year,
		Make:         it.Make,
		Model:        it.Model,
		Trim:         it.Trim,
		Color:        it.Color,
		Odometer:     odometer,
		TitleNumber:  it.TitleNumber,
		TitleState:   it.TitleState,
		LicensePlate: it.LicensePlate,
		TitleStatus:  it.TitleStatus,
		LoanOnTitle:  it.LoanOnTitle,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
