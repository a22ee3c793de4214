// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the device-notes
// service. It provides middleware, route handlers, and the error-to-envelope
// mapping. Actor-context extraction, logging, tracing, and the unhandled
// fault boundary are all handled here before requests reach the service
// layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

// actorClaims is the claim set of the platform-issued context token: the
// authenticated user plus the agent and/or asset the request targets.
// Authentication itself happens on the platform side; this service only
// verifies the token signature and adopts the claims.
type actorClaims struct {
	jwt.RegisteredClaims

	User  *models.Resource `json:"user,omitempty"`
	Agent *models.Resource `json:"agent,omitempty"`
	Asset *models.Resource `json:"asset,omitempty"`
}

// actorContext extracts the actor context from the "Authorization" bearer
// token and stores it in the request context under [utils.ActorCtxKey].
//
// A missing header is not rejected here: the request proceeds with an empty
// actor and the service layer answers with its precondition error envelope.
// A present but unverifiable token is rejected with 401, because a forged
// context must never reach the service layer.
func (h *Handler) actorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.NewErrorResponse(err.Error(), nil), http.StatusUnauthorized)
			return
		}

		actor, err := h.parseActorToken(tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing actor context token")
			utils.WriteJSON(w, models.NewErrorResponse(ErrInvalidContextToken.Error(), nil), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ActorCtxKey, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseActorToken verifies the token signature with the configured key and
// maps its claims to the actor model.
func (h *Handler) parseActorToken(tokenString string) (models.Actor, error) {
	claims := &actorClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidContextToken
		}
		return []byte(h.tokenSignKey), nil
	})
	if err != nil {
		return models.Actor{}, err
	}

	if !token.Valid {
		return models.Actor{}, ErrInvalidContextToken
	}

	return models.Actor{
		User:  claims.User,
		Agent: claims.Agent,
		Asset: claims.Asset,
	}, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
