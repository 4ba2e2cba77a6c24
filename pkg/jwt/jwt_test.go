package jwt

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

// 1️⃣ 基础测试：签发后能解析回原 claims
func TestGenerateAndParse(t *testing.T) {
	token, expireAt, err := GenerateToken(testSecret, 42, "a@b.com", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if time.Until(expireAt) < 6*24*time.Hour {
		t.Fatalf("unexpected expire time: %v", expireAt)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", claims.Email)
	}
}

// 2️⃣ 错误密钥必须解析失败
func TestParse_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testSecret, 1, "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

// 3️⃣ 过期 token 必须解析失败
func TestParse_Expired(t *testing.T) {
	token, _, err := GenerateToken(testSecret, 1, "a@b.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
