package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	helper_test "github.com/DevBaweja/dating-app-backend/test/helper"
	"github.com/stretchr/testify/assert"
)

var baseURL string

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		baseURL = helper_test.BaseURL(resources.Config)
		code = m.Run()
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

func TestSignUp(t *testing.T) {
	reqBody := entity.CreateUserRequest{
		Name:     "testname",
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	}
	body, _ := json.Marshal(reqBody)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/sign-up", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	_, err := helper_test.SignUpUser(t, baseURL, "dupuser1", "password123", "dup@example.com")
	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	reqBody := entity.CreateUserRequest{
		Name:     "testname",
		Username: "dupuser2",
		Password: "password123",
		Email:    "dup@example.com",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/sign-up", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignIn(t *testing.T) {
	reqBody := entity.SignInRequest{
		Email:    "asd@asd.com",
		Username: "testuser123",
		Password: "password123",
	}

	_, err := helper_test.SignUpUser(t, baseURL, reqBody.Username, reqBody.Password, reqBody.Email)

	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	body, _ := json.Marshal(reqBody)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/sign-in", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response := http_util.HTTPResponse[entity.SignInResponse]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[entity.SignInResponse]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	assert.NotEmpty(t, response.Data.Token)
}

func TestSignInWrongPassword(t *testing.T) {
	_, err := helper_test.SignUpUser(t, baseURL, "wrongpwuser", "password123", "wrongpw@example.com")
	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	reqBody := entity.SignInRequest{
		Email:    "wrongpw@example.com",
		Username: "wrongpwuser",
		Password: "not-the-password",
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/sign-in", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	reqBody := entity.ForgotPasswordRequest{Email: "nobody@example.com"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/forgot-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	// Unknown accounts get the same answer as known ones.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMe(t *testing.T) {
	_, err := helper_test.SignUpUser(t, baseURL, "meuser", "password123", "me@example.com")
	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	token, err := helper_test.SignInUser(t, baseURL, "me@example.com", "meuser", "password123")
	if err != nil {
		t.Fatalf("Failed to sign in user: %v", err)
	}

	resp := helper_test.AuthRequest(t, http.MethodGet, baseURL+"/v1/users/me", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, _ := io.ReadAll(resp.Body)
	response := http_util.HTTPResponse[entity.User]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[entity.User]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	assert.Equal(t, "meuser", response.Data.Username)
}
