package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/yeonjeyeong/economy-lingo/internal/auth"
)

const testSecret = "a-long-and-secure-secret-for-tests-only"
const testUserID = "user-123"
const testEmail = "quizzer@example.com"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		viper.Set("jwt.secret", "")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but did not")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		viper.Set("jwt.secret", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	viper.Set("jwt.secret", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, auth.RoleAdmin, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want %s, got %s", testUserID, claims.UserID)
		}
		if claims.Email != testEmail {
			t.Errorf("wrong Email. want %s, got %s", testEmail, claims.Email)
		}
		if claims.Role != auth.RoleAdmin {
			t.Errorf("wrong Role. want %s, got %s", auth.RoleAdmin, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, auth.RoleUser, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should fail for an expired token, but passed")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testEmail, auth.RoleUser, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr + "x")
		if err == nil {
			t.Fatal("ValidateJWT should fail for a tampered token, but passed")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("wrong error for tampered token: %v", err)
		}
	})
}
