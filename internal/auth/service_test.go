package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"golang.org/x/crypto/bcrypt"
)

var errAuth = errors.New("auth error")

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectRefreshInsert(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func TestSignUpIssuesTokens(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "runner@example.com", pgxmock.AnyArg(), "Runner").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
	expectRefreshInsert(mock)

	svc := NewService("secret", mock)
	user, tokens, err := svc.SignUp(context.Background(), SignUpRequest{
		Email:       "runner@example.com",
		Password:    "hunter22",
		DisplayName: "Runner",
	})
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if user.ID == "" || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected user and tokens")
	}

	userID, err := svc.ValidateAccessToken(tokens.AccessToken)
	if err != nil || userID != user.ID {
		t.Fatalf("access token should validate: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := NewService("secret", nil)
	if _, _, err := svc.SignUp(context.Background(), SignUpRequest{Email: "x@example.com"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestSignUpInsertError(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "runner@example.com", pgxmock.AnyArg(), "").
		WillReturnError(errAuth)

	svc := NewService("secret", mock)
	if _, _, err := svc.SignUp(context.Background(), SignUpRequest{Email: "runner@example.com", Password: "pw"}); err == nil {
		t.Fatalf("expected error")
	}
}

func userRow(t *testing.T, password string) *pgxmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return pgxmock.NewRows([]string{"id", "email", "password_hash", "display_name", "created_at", "updated_at"}).
		AddRow("user-1", "runner@example.com", string(hash), "Runner", time.Now(), time.Now())
}

func TestSignIn(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, display_name`).
		WithArgs("runner@example.com").
		WillReturnRows(userRow(t, "hunter22"))
	expectRefreshInsert(mock)

	svc := NewService("secret", mock)
	user, tokens, err := svc.SignIn(context.Background(), SignInRequest{Email: "runner@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != "user-1" || tokens.AccessToken == "" {
		t.Fatalf("unexpected sign in result")
	}
}

func TestSignInWrongPassword(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, display_name`).
		WithArgs("runner@example.com").
		WillReturnRows(userRow(t, "hunter22"))

	svc := NewService("secret", mock)
	if _, _, err := svc.SignIn(context.Background(), SignInRequest{Email: "runner@example.com", Password: "wrong"}); err == nil {
		t.Fatalf("expected invalid credentials")
	}
}

func TestSignInUnknownUser(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, display_name`).
		WithArgs("ghost@example.com").
		WillReturnError(errAuth)

	svc := NewService("secret", mock)
	if _, _, err := svc.SignIn(context.Background(), SignInRequest{Email: "ghost@example.com", Password: "pw"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	mock := newMock(t)
	expectRefreshInsert(mock)

	svc := NewService("secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("user-1", time.Now().Add(time.Hour)))

	userID, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil || userID != "user-1" {
		t.Fatalf("refresh validation failed: %v", err)
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	mock := newMock(t)
	expectRefreshInsert(mock)

	svc := NewService("secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("user-1", time.Now().Add(-time.Hour)))

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestRefreshTokenUserMismatch(t *testing.T) {
	mock := newMock(t)
	expectRefreshInsert(mock)

	svc := NewService("secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("someone-else", time.Now().Add(time.Hour)))

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestValidateAccessTokenInvalid(t *testing.T) {
	svc := NewService("secret", nil)
	if _, err := svc.ValidateAccessToken("garbage"); err == nil {
		t.Fatalf("expected parse error")
	}

	other := NewService("other-secret", nil)
	token, err := other.signToken("user-1", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatalf("expected signature error")
	}
}
