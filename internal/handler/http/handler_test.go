// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/device-notes/internal/config"
	"github.com/MKhiriev/device-notes/internal/logger"
	"github.com/MKhiriev/device-notes/internal/service"
	"github.com/MKhiriev/device-notes/internal/store"
	"github.com/MKhiriev/device-notes/internal/utils"
	"github.com/MKhiriev/device-notes/models"
)

const testSignKey = "test-sign-key"

// newTestHandler builds a full handler over the in-process document store,
// with a fixed clock so timestamp assertions are deterministic.
func newTestHandler(t *testing.T) (*Handler, *utils.FixedClock) {
	t.Helper()

	clock := &utils.FixedClock{Millis: 174540181000}
	storages, err := store.NewStorages(
		context.Background(),
		config.Storage{Documents: config.Documents{InMemory: true}},
		clock,
		logger.Nop(),
	)
	require.NoError(t, err)

	services := service.NewServices(storages, config.StructuredConfig{}, logger.Nop())
	buildInfo := models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc1234")

	return NewHandler(services, testSignKey, buildInfo, logger.Nop()), clock
}

// signActorToken issues a context token the actor middleware accepts.
func signActorToken(t *testing.T, actor models.Actor) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
		User:  actor.User,
		Agent: actor.Agent,
		Asset: actor.Asset,
	})

	signed, err := token.SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

func testActor(permissions ...string) models.Actor {
	return models.Actor{
		User:  &models.Resource{PublicID: "user-1", Name: "Alice"},
		Asset: &models.Resource{PublicID: "asset-1", Name: "rack-7", Permissions: permissions},
		Agent: &models.Resource{PublicID: "agent-1", Name: "agent-7"},
	}
}

// doJSON performs a request against the router with an optional actor token
// and decodes the response envelope.
func doJSON(t *testing.T, router http.Handler, method, target, token string, body any) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
		"response is not a valid envelope: %s", rec.Body.String())

	return rec, envelope
}
