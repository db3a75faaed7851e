package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcatalog/internal/domain"
)

func TestHandleRegister(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, password string) (domain.User, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "s3cret", password)
			return domain.User{ID: uuid.New(), Username: username}, nil
		},
	}
	router := newTestRouter(deps{auth: auth})

	rec := doRequest(t, router, http.MethodPost, "/register",
		`{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User registered", decodeBody(t, rec)["message"])
}

func TestHandleRegister_MissingFields(t *testing.T) {
	router := newTestRouter(deps{})

	rec := doRequest(t, router, http.MethodPost, "/register", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decodeBody(t, rec)["password"])
}

func TestHandleRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(deps{})

	rec := doRequest(t, router, http.MethodPost, "/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", decodeBody(t, rec)["message"])
}

func TestHandleRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, string, string) (domain.User, error) {
			return domain.User{}, domain.ErrConflict
		},
	}
	router := newTestRouter(deps{auth: auth})

	rec := doRequest(t, router, http.MethodPost, "/register",
		`{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, rec)["message"])
}

func TestHandleLogin(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "s3cret", password)
			return "signed-token", nil
		},
	}
	router := newTestRouter(deps{auth: auth})

	rec := doRequest(t, router, http.MethodPost, "/login",
		`{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "signed-token", decodeBody(t, rec)["access_token"])
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrUnauthenticated
		},
	}
	router := newTestRouter(deps{auth: auth})

	rec := doRequest(t, router, http.MethodPost, "/login",
		`{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}

func TestHandleLogin_MissingFields(t *testing.T) {
	router := newTestRouter(deps{})

	rec := doRequest(t, router, http.MethodPost, "/login", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "is required", body["username"])
	assert.Equal(t, "is required", body["password"])
}
