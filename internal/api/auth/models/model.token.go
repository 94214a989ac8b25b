// Package models - Token, JwtToken thuộc domain auth.
package models

import "github.com/golang-jwt/jwt/v4"

// JwtToken chứa data được mã hóa trong JWT token.
type JwtToken struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.RegisteredClaims
}

// Token token theo hwid (mỗi thiết bị một token).
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid,omitempty"`
	JwtToken string `json:"jwtToken,omitempty" bson:"jwtToken,omitempty"`
}
