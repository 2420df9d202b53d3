package test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/httperrors"
	"github/hdforge/go-wallet/internal/types"
	"github/hdforge/go-wallet/internal/util"
)

// GenericPayload is an untyped JSON request body
type GenericPayload map[string]interface{}

// PerformRequest fires a request against the echo instance of s and records the response.
// A nil body sends no payload, anything else is marshaled to JSON.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to serialize payload: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// BasicAuthHeaders returns the Authorization header for the given credentials
func BasicAuthHeaders(email string, password string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(email+":"+password)))

	return h
}

// ParseResponseAndValidate decodes the JSON body of res into v and validates it
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v util.Validatable) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Body).Decode(v), "failed to parse response body")
	require.NoError(t, v.Validate(strfmt.Default), "response failed validation")
}

// RequireHTTPError asserts the response carries the status and public error type of httpErr
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpErr *httperrors.HTTPError) types.PublicHTTPError {
	t.Helper()

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, *httpErr.Code, *response.Code)
	require.Equal(t, int(*httpErr.Code), res.Result().StatusCode)
	require.Equal(t, *httpErr.Type, *response.Type)

	return response
}
