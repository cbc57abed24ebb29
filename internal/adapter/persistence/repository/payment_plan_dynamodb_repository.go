package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"payplan/internal/domain/entities"
	"payplan/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPaymentPlansTableName = "payment_plans"
	paymentPlansMemberIDIndex    = "member_id-index"

	statusConditionExpr = "attribute_exists(#id) AND #status = :expected_status"
)

type paymentPlanItem struct {
	ID             string            `dynamodbav:"id"`
	MemberID       string            `dynamodbav:"member_id"`
	Reference      string            `dynamodbav:"reference,omitempty"`
	TotalAmount    string            `dynamodbav:"total_amount"`
	Mode           string            `dynamodbav:"funding_mode"`
	Method         string            `dynamodbav:"funding_method,omitempty"`
	MixAllocations map[string]string `dynamodbav:"mix_allocations,omitempty"`
	Status         string            `dynamodbav:"status"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// PaymentPlanDynamoRepository persists PaymentPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: member_id-index (PK: member_id)

type PaymentPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentPlanRepository = (*PaymentPlanDynamoRepository)(nil)

func NewPaymentPlanDynamoRepository(ddb *dynamodb.Client) *PaymentPlanDynamoRepository {
	return &PaymentPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_PLANS_TABLE", defaultPaymentPlansTableName),
	}
}

func (r *PaymentPlanDynamoRepository) Create(ctx context.Context, p entities.PaymentPlan) (entities.PaymentPlan, error) {
	av, err := attributevalue.MarshalMap(toPaymentPlanItem(p))
	if err != nil {
		return entities.PaymentPlan{}, err
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
		return entities.PaymentPlan{}, err
	}
	return p, nil
}

func (r *PaymentPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentPlan{}, nil
	}

	var it paymentPlanItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentPlan{}, err
	}
	return fromPaymentPlanItem(it), nil
}

func (r *PaymentPlanDynamoRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.PaymentPlan, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentPlansMemberIDIndex),
		KeyConditionExpression: aws.String("member_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: memberID},
		},
	})

	plans := make([]entities.PaymentPlan, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentPlanItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			plans = append(plans, fromPaymentPlanItem(it))
		}
	}
	return plans, nil
}

func (r *PaymentPlanDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, status entities.PlanStatus) (entities.PaymentPlan, error) {
	return r.update(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *PaymentPlanDynamoRepository) UpdateMixAllocations(ctx context.Context, id string, expected entities.PlanStatus, allocations map[entities.FundingMethod]decimal.Decimal) (entities.PaymentPlan, error) {
	mix, err := attributevalue.Marshal(mixToItem(allocations))
	if err != nil {
		return entities.PaymentPlan{}, err
	}

	return r.update(ctx, id, expected, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #mix = :mix, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":mix":        mix,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#mix":        "mix_allocations",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// update applies build only while the stored status is still expected. A
// missing plan or a status changed by a concurrent request both yield a zero
// PaymentPlan.
func (r *PaymentPlanDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.PlanStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PaymentPlan, error) {
	updateExpr, values, names := build(formatTime(time.Now()))
	values[":expected_status"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(statusConditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentPlan{}, nil
		}
		return entities.PaymentPlan{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentPlan{}, nil
	}
	var it paymentPlanItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentPlan{}, err
	}
	return fromPaymentPlanItem(it), nil
}

func toPaymentPlanItem(p entities.PaymentPlan) paymentPlanItem {
	it := paymentPlanItem{
		ID:             p.ID,
		MemberID:       p.MemberID,
		Reference:      p.Reference,
		TotalAmount:    decimalToString(p.TotalAmount),
		Mode:           string(p.Mode),
		MixAllocations: mixToItem(p.MixAllocations),
		Status:         string(p.Status),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
	if p.Method.Valid() {
		it.Method = p.Method.String()
	}
	return it
}

func fromPaymentPlanItem(it paymentPlanItem) entities.PaymentPlan {
	p := entities.PaymentPlan{
		ID:          it.ID,
		MemberID:    it.MemberID,
		Reference:   it.Reference,
		TotalAmount: parseDecimal(it.TotalAmount),
		Mode:        entities.FundingMode(it.Mode),
		Status:      entities.PlanStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.Method != "" {
		m, err := entities.ParseFundingMethod(it.Method)
		if err != nil {
			log.Printf("[plan][repository] unknown funding_method plan_id=%s value=%q", it.ID, it.Method)
		}
		p.Method = m
	}
	if len(it.MixAllocations) > 0 {
		p.MixAllocations = make(map[entities.FundingMethod]decimal.Decimal, len(it.MixAllocations))
		for name, pct := range it.MixAllocations {
			m, err := entities.ParseFundingMethod(name)
			if err != nil {
				log.Printf("[plan][repository] unknown mix method plan_id=%s value=%q", it.ID, name)
				continue
			}
			p.MixAllocations[m] = parseDecimal(pct)
		}
	}
	return p
}

func mixToItem(allocations map[entities.FundingMethod]decimal.Decimal) map[string]string {
	if len(allocations) == 0 {
		return nil
	}
	out := make(map[string]string, len(allocations))
	for m, pct := range allocations {
		out[m.String()] = decimalToString(pct)
	}
	return out
}
