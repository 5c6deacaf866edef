package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campuspay/internal/domain/entities"
	"campuspay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const payablesStateIndex = "state-index"

type payableItem struct {
	ID                  string `dynamodbav:"id"`
	EnrollmentID        string `dynamodbav:"enrollment_id"`
	OwnerIdentity       string `dynamodbav:"owner_identity"`
	ExpectedAmountCents int64  `dynamodbav:"expected_amount_cents"`
	ExpectedCurrency    string `dynamodbav:"expected_currency"`
	GatewayReference    string `dynamodbav:"gateway_reference,omitempty"`
	State               string `dynamodbav:"state"`

	LastProcessedReference string `dynamodbav:"last_processed_reference,omitempty"`
	LastProcessedState     string `dynamodbav:"last_processed_state,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PayableDynamoRepository persists Payable entities in DynamoDB.
//
// Table requirements:
//   - payables: PK id (string), GSI state-index (PK: state)
//   - enrollments: PK id (string); written only by the PAID transition
//
// The reconciliation transition is a TransactWriteItems conditioned on the
// payable still being AWAITING_PAYMENT: state change, idempotency marker and
// enrollment activation commit together or not at all, which is what makes
// concurrent reconciliations of the same reference settle on one outcome.

type PayableDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	enrollmentsTable string
}

var _ interfaces.IPayableRepository = (*PayableDynamoRepository)(nil)

func NewPayableDynamoRepository(ddb *dynamodb.Client, payablesTable, enrollmentsTable string) *PayableDynamoRepository {
	return &PayableDynamoRepository{
		ddb:              ddb,
		tableName:        payablesTable,
		enrollmentsTable: enrollmentsTable,
	}
}

func (r *PayableDynamoRepository) Create(ctx context.Context, p entities.Payable) (entities.Payable, error) {
	it := toPayableItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payable{}, err
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
		return entities.Payable{}, err
	}
	return p, nil
}

func (r *PayableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payable{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payable{}, nil
	}

	var it payableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payable{}, err
	}
	return fromPayableItem(it), nil
}

func (r *PayableDynamoRepository) ListByState(ctx context.Context, state entities.PayableState, limit int32) ([]entities.Payable, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payablesStateIndex),
		KeyConditionExpression: aws.String("#state = :state"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		},
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payable, 0, len(out.Items))
	for _, raw := range out.Items {
		var it payableItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPayableItem(it))
	}
	return items, nil
}

func (r *PayableDynamoRepository) ApplyTransition(ctx context.Context, p entities.Payable, to entities.PayableState, verified entities.TransactionStatus) (entities.Payable, error) {
	now := time.Now().UTC()
	nowStr := now.Format(time.RFC3339Nano)

	writes := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: p.ID},
				},
				UpdateExpression:    aws.String("SET #state = :to, #lpr = :ref, #lps = :vstate, #updated_at = :now"),
				ConditionExpression: aws.String("attribute_exists(#id) AND #state = :awaiting"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#state":      "state",
					"#lpr":        "last_processed_reference",
					"#lps":        "last_processed_state",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to":       &types.AttributeValueMemberS{Value: string(to)},
					":ref":      &types.AttributeValueMemberS{Value: verified.Reference},
					":vstate":   &types.AttributeValueMemberS{Value: string(verified.State)},
					":now":      &types.AttributeValueMemberS{Value: nowStr},
					":awaiting": &types.AttributeValueMemberS{Value: string(entities.PayableStateAwaitingPayment)},
				},
			},
		},
	}

	// The business effect rides in the same transaction as the state change:
	// either both commit or neither does.
	if to == entities.PayableStatePaid {
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.enrollmentsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: p.EnrollmentID},
				},
				UpdateExpression: aws.String("SET #status = :active, #activated_at = :now, #payable_id = :pid, #owner = :owner"),
				ExpressionAttributeNames: map[string]string{
					"#status":       "status",
					"#activated_at": "activated_at",
					"#payable_id":   "payable_id",
					"#owner":        "owner_identity",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active": &types.AttributeValueMemberS{Value: "active"},
					":now":    &types.AttributeValueMemberS{Value: nowStr},
					":pid":    &types.AttributeValueMemberS{Value: p.ID},
					":owner":  &types.AttributeValueMemberS{Value: p.OwnerIdentity},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Payable{}, fmt.Errorf("%w: payable %s", interfaces.ErrTransitionConflict, p.ID)
		}
		return entities.Payable{}, err
	}

	updated := p
	updated.State = to
	updated.LastProcessedReference = verified.Reference
	updated.LastProcessedState = verified.State
	updated.UpdatedAt = now
	return updated, nil
}

func isConditionalCancellation(err error) bool {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for _, reason := range canceled.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toPayableItem(p entities.Payable) payableItem {
	return payableItem{
		ID:                     p.ID,
		EnrollmentID:           p.EnrollmentID,
		OwnerIdentity:          p.OwnerIdentity,
		ExpectedAmountCents:    p.ExpectedAmountCents,
		ExpectedCurrency:       p.ExpectedCurrency,
		GatewayReference:       p.GatewayReference,
		State:                  string(p.State),
		LastProcessedReference: p.LastProcessedReference,
		LastProcessedState:     string(p.LastProcessedState),
		CreatedAt:              p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPayableItem(it payableItem) entities.Payable {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payable{
		ID:                     it.ID,
		EnrollmentID:           it.EnrollmentID,
		OwnerIdentity:          it.OwnerIdentity,
		ExpectedAmountCents:    it.ExpectedAmountCents,
		ExpectedCurrency:       it.ExpectedCurrency,
		GatewayReference:       it.GatewayReference,
		State:                  entities.PayableState(it.State),
		LastProcessedReference: it.LastProcessedReference,
		LastProcessedState:     entities.TransactionState(it.LastProcessedState),
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}
