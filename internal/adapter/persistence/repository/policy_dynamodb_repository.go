package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"policy_pricing/internal/domain/entities"
	"policy_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "policies"
	policiesProviderIndex    = "provider_name-index"
)

// BMI and price are kept as strings: a zero height produces +Inf or NaN,
// which DynamoDB numbers cannot hold.
type policyItem struct {
	PolicyNumber  string `dynamodbav:"policy_number"`
	ProviderName  string `dynamodbav:"provider_name"`
	FirstName     string `dynamodbav:"first_name"`
	LastName      string `dynamodbav:"last_name"`
	Age           int    `dynamodbav:"age"`
	SmokingStatus string `dynamodbav:"smoking_status"`
	Height        int    `dynamodbav:"height"`
	Weight        int    `dynamodbav:"weight"`
	BMI           string `dynamodbav:"bmi"`
	Price         string `dynamodbav:"price"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists PolicyRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: policy_number (string)
//   - GSI: provider_name-index (PK: provider_name)

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, rec entities.PolicyRecord) (entities.PolicyRecord, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(rec))
	if err != nil {
		return entities.PolicyRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pn)"),
		ExpressionAttributeNames: map[string]string{
			"#pn": "policy_number",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PolicyRecord{}, interfaces.ErrDuplicatePolicyNumber
		}
		return entities.PolicyRecord{}, err
	}
	return rec, nil
}

func (r *PolicyDynamoRepository) GetByPolicyNumber(ctx context.Context, policyNumber string) (entities.PolicyRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            policyKey(policyNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PolicyRecord{}, err
	}
	return unmarshalPolicy(out.Item)
}

// Update overwrites the holder fields and derived values. CreatedAt is kept
// from the stored item.
func (r *PolicyDynamoRepository) Update(ctx context.Context, rec entities.PolicyRecord) (entities.PolicyRecord, error) {
	it := toPolicyItem(rec)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 policyKey(it.PolicyNumber),
		ConditionExpression: aws.String("attribute_exists(#pn)"),
		UpdateExpression: aws.String("SET #provider_name = :provider_name, #first_name = :first_name, #last_name = :last_name, " +
			"#age = :age, #smoking_status = :smoking_status, #height = :height, #weight = :weight, " +
			"#bmi = :bmi, #price = :price, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#pn":             "policy_number",
			"#provider_name":  "provider_name",
			"#first_name":     "first_name",
			"#last_name":      "last_name",
			"#age":            "age",
			"#smoking_status": "smoking_status",
			"#height":         "height",
			"#weight":         "weight",
			"#bmi":            "bmi",
			"#price":          "price",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider_name":  &types.AttributeValueMemberS{Value: it.ProviderName},
			":first_name":     &types.AttributeValueMemberS{Value: it.FirstName},
			":last_name":      &types.AttributeValueMemberS{Value: it.LastName},
			":age":            &types.AttributeValueMemberN{Value: strconv.Itoa(it.Age)},
			":smoking_status": &types.AttributeValueMemberS{Value: it.SmokingStatus},
			":height":         &types.AttributeValueMemberN{Value: strconv.Itoa(it.Height)},
			":weight":         &types.AttributeValueMemberN{Value: strconv.Itoa(it.Weight)},
			":bmi":            &types.AttributeValueMemberS{Value: it.BMI},
			":price":          &types.AttributeValueMemberS{Value: it.Price},
			":updated_at":     &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PolicyRecord{}, nil
		}
		return entities.PolicyRecord{}, err
	}
	return unmarshalPolicy(out.Attributes)
}

func (r *PolicyDynamoRepository) Delete(ctx context.Context, policyNumber string) (entities.PolicyRecord, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 policyKey(policyNumber),
		ConditionExpression: aws.String("attribute_exists(#pn)"),
		ExpressionAttributeNames: map[string]string{
			"#pn": "policy_number",
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PolicyRecord{}, nil
		}
		return entities.PolicyRecord{}, err
	}
	return unmarshalPolicy(out.Attributes)
}

func (r *PolicyDynamoRepository) ListByProvider(ctx context.Context, providerName string) ([]entities.PolicyRecord, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policiesProviderIndex),
		KeyConditionExpression: aws.String("provider_name = :provider"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":provider": &types.AttributeValueMemberS{Value: providerName},
		},
	})

	records := make([]entities.PolicyRecord, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it policyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPolicyItem(it))
		}
	}
	return records, nil
}

func policyKey(policyNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"policy_number": &types.AttributeValueMemberS{Value: policyNumber},
	}
}

func unmarshalPolicy(av map[string]types.AttributeValue) (entities.PolicyRecord, error) {
	if len(av) == 0 {
		return entities.PolicyRecord{}, nil
	}
	var it policyItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.PolicyRecord{}, err
	}
	return fromPolicyItem(it), nil
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toPolicyItem(r entities.PolicyRecord) policyItem {
	return policyItem{
		PolicyNumber:  r.PolicyNumber,
		ProviderName:  r.ProviderName,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Age:           r.Age,
		SmokingStatus: r.SmokingStatus,
		Height:        r.Height,
		Weight:        r.Weight,
		BMI:           floatToString(r.BMI),
		Price:         floatToString(r.Price),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPolicyItem(it policyItem) entities.PolicyRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	bmi, _ := strconv.ParseFloat(it.BMI, 64)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.PolicyRecord{
		Policy: entities.NewPolicy(
			it.PolicyNumber, it.ProviderName, it.FirstName, it.LastName,
			it.Age, it.SmokingStatus, it.Height, it.Weight,
		),
		BMI:       bmi,
		Price:     price,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
