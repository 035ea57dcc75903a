package post

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/posts"
)

func TestHandleCreate_Success(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service)

	created := &posts.Post{ID: "post-1", Title: "My First Post", State: posts.StatePending}
	service.On("CreatePost", mock.Anything, testStandard, posts.CreatePostRequest{
		Title:       "My First Post",
		Description: "A description of a post",
	}).Return(created, nil)

	body := `{"title":"My First Post","description":"A description of a post"}`
	req := withAccount(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body)), testStandard)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp posts.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "post-1", resp.ID)
	assert.Equal(t, posts.StatePending, resp.State)
}

func TestHandleCreate_ValidationErrors(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service)

	service.On("CreatePost", mock.Anything, testStandard, mock.Anything).
		Return(nil, &posts.ValidationError{Fields: map[string]string{
			"title":       "the length must be no less than 10",
			"description": "cannot be blank",
		}})

	req := withAccount(httptest.NewRequest(http.MethodPost, "/posts",
		strings.NewReader(`{"title":"short"}`)), testStandard)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		ValidationErrors map[string]string `json:"validation_errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.ValidationErrors, "title")
	assert.Contains(t, resp.ValidationErrors, "description")
}

func TestHandleCreate_Unauthenticated(t *testing.T) {
	service := new(MockPostService)
	handler := NewCreateHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/posts",
		strings.NewReader(`{"title":"My First Post","description":"A description"}`))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}
