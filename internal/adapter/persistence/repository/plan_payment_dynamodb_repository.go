package repository

import (
	"context"

	"payplan/internal/domain/entities"
	"payplan/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlanPaymentsTableName = "plan_payments"
	planPaymentsPlanIDIndex      = "plan_id-index"
)

type planPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	PlanID             string                 `dynamodbav:"plan_id"`
	Method             string                 `dynamodbav:"method"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PlanPaymentDynamoRepository persists PlanPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plan_id-index (PK: plan_id)

type PlanPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanPaymentRepository = (*PlanPaymentDynamoRepository)(nil)

func NewPlanPaymentDynamoRepository(ddb *dynamodb.Client) *PlanPaymentDynamoRepository {
	return &PlanPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_PAYMENTS_TABLE", defaultPlanPaymentsTableName),
	}
}

func (r *PlanPaymentDynamoRepository) Create(ctx context.Context, p entities.PlanPayment) (entities.PlanPayment, error) {
	av, err := attributevalue.MarshalMap(toPlanPaymentItem(p))
	if err != nil {
		return entities.PlanPayment{}, err
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
		return entities.PlanPayment{}, err
	}
	return p, nil
}

func (r *PlanPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PlanPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlanPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlanPayment{}, nil
	}

	var it planPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlanPayment{}, err
	}
	return fromPlanPaymentItem(it), nil
}

func (r *PlanPaymentDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.PlanPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(planPaymentsPlanIDIndex),
		KeyConditionExpression: aws.String("plan_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: planID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PlanPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanPaymentItem(it))
	}
	return items, nil
}

func toPlanPaymentItem(p entities.PlanPayment) planPaymentItem {
	return planPaymentItem{
		ID:                 p.ID,
		PlanID:             p.PlanID,
		Method:             p.Method.String(),
		Amount:             decimalToString(p.Amount),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPlanPaymentItem(it planPaymentItem) entities.PlanPayment {
	method, _ := entities.ParseFundingMethod(it.Method)
	return entities.PlanPayment{
		ID:                 it.ID,
		PlanID:             it.PlanID,
		Method:             method,
		Amount:             parseDecimal(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
