package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuilderWritesTriggersAndBody(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHTMXResponse().
		TriggerTransactionsRefresh().
		TriggerSummaryRefresh().
		TriggerFormReset().
		SuccessBody("Transaction #1 added").
		Write(rr)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var triggers map[string]any
	if err := json.Unmarshal([]byte(rr.Header().Get("HX-Trigger")), &triggers); err != nil {
		t.Fatalf("HX-Trigger not valid JSON: %v", err)
	}
	for _, event := range []string{"transactions:refresh", "summary:refresh", "form:reset"} {
		if _, ok := triggers[event]; !ok {
			t.Fatalf("missing trigger %q in %v", event, triggers)
		}
	}
	if len(triggers) != 3 {
		t.Fatalf("unexpected extra triggers: %v", triggers)
	}
	if !strings.Contains(rr.Body.String(), "Transaction #1 added") {
		t.Fatalf("body = %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestBuilderWithoutTriggersOmitsHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHTMXResponse().BodyHTML("<div>ok</div>").Write(rr)
	if rr.Header().Get("HX-Trigger") != "" {
		t.Fatalf("unexpected HX-Trigger: %q", rr.Header().Get("HX-Trigger"))
	}
}

func TestErrorResponseEscapesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorResponse(http.StatusBadRequest, `<script>alert("x")</script>`).Write(rr)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<script>") {
		t.Fatalf("message not escaped: %q", body)
	}
	if !strings.Contains(body, `class="error"`) {
		t.Fatalf("body = %q", body)
	}
}

func TestMethodNotAllowedSetsAllowHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	MethodNotAllowedError("POST").Write(rr)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d", rr.Code)
	}
	if rr.Header().Get("Allow") != "POST" {
		t.Fatalf("Allow=%q", rr.Header().Get("Allow"))
	}
}
