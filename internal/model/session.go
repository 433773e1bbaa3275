package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	Snapshot  Snapshot
}

// SessionClaims ID сессии лежит в RegisteredClaims.ID
type SessionClaims struct {
	jwt.RegisteredClaims
}
