package match__test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	matchRepository "github.com/DevBaweja/dating-app-backend/internal/repository/match"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	helper_test "github.com/DevBaweja/dating-app-backend/test/helper"
	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
)

var (
	globalResources *helper_test.TestServerResources
	baseURL         string
)

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		globalResources = resources
		baseURL = helper_test.BaseURL(resources.Config)
		code = m.Run()
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

func signUpAndSignIn(t *testing.T, username, email string) string {
	_, err := helper_test.SignUpUser(t, baseURL, username, "password123", email)
	if err != nil {
		t.Fatalf("Failed to sign up user: %s", err)
	}

	token, err := helper_test.SignInUser(t, baseURL, email, username, "password123")
	if err != nil {
		t.Fatalf("Failed to sign in user: %s", err)
	}
	return token
}

func swipe(t *testing.T, token, action string, profileID uint) (int, entity.SwipeResponse) {
	url := fmt.Sprintf("%s/v1/matches/%s/%d", baseURL, action, profileID)

	resp := helper_test.AuthRequest(t, http.MethodPost, url, token, nil)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response := entity.SwipeResponse{}
	response, err = http_util.DecodeBody[entity.SwipeResponse](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}

	return resp.StatusCode, response
}

func newMatchRepo() matchRepository.IMatchRepo {
	return matchRepository.NewMatchRepo(globalResources.ORM, globalResources.Redis, logrus.New())
}

// Like 3 profiles, none of them escalates on its own.
func TestLike(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 3)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "likeuser", "like@example.com")

	for _, p := range profiles {
		status, response := swipe(t, token, "like", p.ID)
		assert.Equal(t, status, http.StatusOK)
		assert.Equal(t, response.IsMatch, false)
		assert.Equal(t, response.MatchesCount, 0)
	}

	resp := helper_test.AuthRequest(t, http.MethodGet, baseURL+"/v1/matches/liked", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)

	bodyBytes, _ := io.ReadAll(resp.Body)
	response := http_util.HTTPResponse[[]entity.Like]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[[]entity.Like]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}

	assert.Equal(t, len(response.Data), 3)
	for _, like := range response.Data {
		assert.Equal(t, like.Kind, entity.LikeKindLike)
	}
}

func TestDuplicateLike(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "dupswipe", "dupswipe@example.com")

	status, _ := swipe(t, token, "like", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)

	status, _ = swipe(t, token, "like", profiles[0].ID)
	assert.Equal(t, status, http.StatusBadRequest)
}

func TestSuperLikeCreatesMatch(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "superuser", "super@example.com")

	status, response := swipe(t, token, "superlike", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, response.IsMatch, true)
	assert.Equal(t, response.MatchesCount, 1)
}

func TestMatchCap(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 6)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "capuser", "cap@example.com")

	for _, p := range profiles[:entity.MaxConcurrentMatches] {
		status, response := swipe(t, token, "superlike", p.ID)
		assert.Equal(t, status, http.StatusOK)
		assert.Equal(t, response.IsMatch, true)
	}

	// Strict variant refuses outright at the cap. The refusal body
	// reports the cap without any count fields; nothing was written.
	refusalURL := fmt.Sprintf("%s/v1/matches/superlike/%d", baseURL, profiles[4].ID)
	resp := helper_test.AuthRequest(t, http.MethodPost, refusalURL, token, nil)
	refusalBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusBadRequest)

	var refusal map[string]interface{}
	if err := json.Unmarshal(refusalBytes, &refusal); err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}
	assert.Equal(t, refusal["maxMatchesReached"], true)
	_, hasCount := refusal["matchesCount"]
	assert.Equal(t, hasCount, false)

	// Plain like still lands, it just cannot escalate.
	status, response := swipe(t, token, "like", profiles[5].ID)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, response.IsMatch, false)
	assert.Equal(t, response.MaxMatchesReached, true)

	liked, err := newMatchRepo().GetLiked(context.TODO(), userIDFromToken(t, token))
	if err != nil {
		t.Fatalf("Failed to get liked profiles: %s", err)
	}
	// 4 super likes plus the capped plain like, the refused one wrote nothing.
	assert.Equal(t, len(liked), 5)
}

func TestPassWritesNothing(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 2)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "passuser", "pass@example.com")

	status, _ := swipe(t, token, "pass", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)

	// Passing twice is fine, nothing was recorded.
	status, _ = swipe(t, token, "pass", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)

	liked, err := newMatchRepo().GetLiked(context.TODO(), userIDFromToken(t, token))
	if err != nil {
		t.Fatalf("Failed to get liked profiles: %s", err)
	}
	assert.Equal(t, len(liked), 0)
}

func TestPassUnknownProfile(t *testing.T) {
	token := signUpAndSignIn(t, "passghost", "passghost@example.com")

	status, _ := swipe(t, token, "pass", 999999)
	assert.Equal(t, status, http.StatusNotFound)
}

func TestRemoveMatch(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "removeuser", "remove@example.com")

	status, _ := swipe(t, token, "superlike", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)

	url := fmt.Sprintf("%s/v1/matches/%d", baseURL, profiles[0].ID)

	resp := helper_test.AuthRequest(t, http.MethodDelete, url, token, nil)
	bodyBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)

	removed := entity.RemoveMatchResponse{}
	removed, err = http_util.DecodeBody[entity.RemoveMatchResponse](bodyBytes, removed)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}
	assert.Equal(t, removed.MatchesCount, 0)

	// Removing again is a no-op, not an error.
	resp = helper_test.AuthRequest(t, http.MethodDelete, url, token, nil)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)
}

func TestStats(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 3)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "statsuser", "stats@example.com")

	swipe(t, token, "like", profiles[0].ID)
	swipe(t, token, "like", profiles[1].ID)
	swipe(t, token, "superlike", profiles[2].ID)

	resp := helper_test.AuthRequest(t, http.MethodGet, baseURL+"/v1/matches/stats", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)

	bodyBytes, _ := io.ReadAll(resp.Body)
	stats := entity.MatchStats{}
	stats, err = http_util.DecodeBody[entity.MatchStats](bodyBytes, stats)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}

	assert.Equal(t, stats.TotalLiked, 3)
	assert.Equal(t, stats.SuperLikes, 1)
	assert.Equal(t, stats.TotalMatches, 1)
	assert.Equal(t, stats.MaxMatchesReached, false)
}

func TestMessages(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "msguser", "msg@example.com")

	status, _ := swipe(t, token, "superlike", profiles[0].ID)
	assert.Equal(t, status, http.StatusOK)

	msgURL := fmt.Sprintf("%s/v1/matches/%d/messages", baseURL, profiles[0].ID)
	resp := helper_test.AuthRequest(t, http.MethodPost, msgURL, token, entity.AddMessageRequest{Content: "hey there"})
	bodyBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusCreated)

	sent := http_util.HTTPResponse[entity.Message]{}
	sent, err = http_util.DecodeBody[http_util.HTTPResponse[entity.Message]](bodyBytes, sent)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}
	assert.Equal(t, sent.Data.Content, "hey there")
	assert.Equal(t, sent.Data.IsRead, false)

	readURL := fmt.Sprintf("%s/v1/matches/%d/read", baseURL, profiles[0].ID)
	resp = helper_test.AuthRequest(t, http.MethodPost, readURL, token, nil)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)
}

func TestMessageRequiresMatch(t *testing.T) {
	profiles, err := helper_test.PopulateProfiles(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate profiles: %s", err)
	}

	token := signUpAndSignIn(t, "nomatchmsg", "nomatchmsg@example.com")

	msgURL := fmt.Sprintf("%s/v1/matches/%d/messages", baseURL, profiles[0].ID)
	resp := helper_test.AuthRequest(t, http.MethodPost, msgURL, token, entity.AddMessageRequest{Content: "hello?"})
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusNotFound)
}

func userIDFromToken(t *testing.T, token string) uint {
	resp := helper_test.AuthRequest(t, http.MethodGet, baseURL+"/v1/users/me", token, nil)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response := http_util.HTTPResponse[entity.User]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[entity.User]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %s", err)
	}
	return response.Data.ID
}
