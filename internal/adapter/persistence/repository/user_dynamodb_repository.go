package repository

import (
	"context"

	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const usersHashKey = "username"

type userItem struct {
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
}

// UserDynamoRepository stores operator accounts (PK: username).
type UserDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoDBAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var it userItem
	found, err := getItem(ctx, r.ddb, r.tableName, usersHashKey, username, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return entities.User{Username: it.Username, PasswordHash: it.PasswordHash, Role: entities.UserRole(it.Role)}, nil
}

func (r *UserDynamoRepository) Put(ctx context.Context, u entities.User) error {
	return putItem(ctx, r.ddb, r.tableName, usersHashKey, userItem{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
	}, false)
}

func (r *UserDynamoRepository) Empty(ctx context.Context) (bool, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String(usersHashKey),
		Limit:                aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) == 0, nil
}
