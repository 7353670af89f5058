package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codecraft-site/models"
)

func TestFolderSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hack Night", "hack-night"},
		{"AI   Workshop", "ai-workshop"},
		{"  Intro to Git  ", "intro-to-git"},
		{"CodeCraft\tOrientation", "codecraft-orientation"},
		{"single", "single"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FolderSlug(tc.title), "title %q", tc.title)
	}
}

func TestRespondWithError(t *testing.T) {
	recorder := httptest.NewRecorder()
	RespondWithError(recorder, http.StatusNotFound, models.Error{Message: "Event not found"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Event not found"}`, recorder.Body.String())
}

func TestResponseJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	ResponseJSON(recorder, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}
