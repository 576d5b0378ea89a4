package service

import (
	"context"
	"testing"

	"crane-parts-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	user *model.User
	err  error
}

func (f *fakeUserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) ValidateCredentials(ctx context.Context, email, password string) (*model.User, error) {
	return f.user, f.err
}

func Test_Login_IssuesValidToken(t *testing.T) {
	dealerID := "dlr-1"
	users := &fakeUserService{user: &model.User{
		ID:       "usr-1",
		Name:     "Bruno Dealer",
		Email:    "bruno@northrigging.example",
		Role:     "dealer",
		DealerID: &dealerID,
	}}
	svc := NewAuthenticationService(users)

	resp, err := svc.Login(context.Background(), "bruno@northrigging.example", "password123")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	// The token round-trips through validation with the identity intact.
	user, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", user.ID)
	assert.Equal(t, "dealer", user.Role)
	require.NotNil(t, user.DealerID)
	assert.Equal(t, "dlr-1", *user.DealerID)
}

func Test_Login_InvalidCredentials(t *testing.T) {
	users := &fakeUserService{err: ErrInvalidCredentials}
	svc := NewAuthenticationService(users)

	resp, err := svc.Login(context.Background(), "bruno@northrigging.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func Test_ValidateToken_RejectsGarbage(t *testing.T) {
	svc := NewAuthenticationService(&fakeUserService{})

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_ValidateToken_RejectsForeignSignature(t *testing.T) {
	users := &fakeUserService{user: &model.User{ID: "usr-1", Role: "admin"}}

	t.Setenv("JWT_SECRET", "secret-a")
	issuer := NewAuthenticationService(users)
	resp, err := issuer.Login(context.Background(), "alice@craneparts.example", "password123")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	verifier := NewAuthenticationService(users)
	_, err = verifier.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
