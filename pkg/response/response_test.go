package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"replypilot/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK_PassesBodyThrough(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.OK(c, gin.H{"reply": "Salamat po!"})

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["reply"] != "Salamat po!" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestErrorDetails_Shape(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.ErrorDetails(c, 502, "empty reply", "provider returned no text")

	if w.Code != 502 {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var body response.ErrResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "empty reply" || body.Details != "provider returned no text" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestError_OmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, 400, "reviewText is required")

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if _, ok := raw["details"]; ok {
		t.Errorf("details should be omitted when empty: %v", raw)
	}
}
