package stringdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestNetwork_Success verifies request shape and response decoding.
func TestNetwork_Success(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm failed: %v", err)
		}
		gotForm = map[string]string{
			"identifiers":     r.PostFormValue("identifiers"),
			"species":         r.PostFormValue("species"),
			"required_score":  r.PostFormValue("required_score"),
			"caller_identity": r.PostFormValue("caller_identity"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"preferredName_A":"TP53","preferredName_B":"MDM2","score":0.99},
			{"preferredName_A":"TP53","preferredName_B":"EP300","score":0.92}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithCallerIdentity("prothub-test"))

	records, err := client.Network(context.Background(), []string{"TP53", "MDM2"}, 9606, 0.4)
	if err != nil {
		t.Fatalf("Network failed: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
	if gotPath != "/json/network" {
		t.Errorf("Expected path /json/network, got %s", gotPath)
	}
	if gotForm["identifiers"] != "TP53\rMDM2" {
		t.Errorf("Expected CR-joined identifiers, got %q", gotForm["identifiers"])
	}
	if gotForm["species"] != "9606" {
		t.Errorf("Expected species 9606, got %q", gotForm["species"])
	}
	if gotForm["required_score"] != "400" {
		t.Errorf("Expected required_score 400, got %q", gotForm["required_score"])
	}
	if gotForm["caller_identity"] != "prothub-test" {
		t.Errorf("Expected caller identity, got %q", gotForm["caller_identity"])
	}
}

// TestNetwork_HTTPError verifies non-2xx statuses surface as errors.
func TestNetwork_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if _, err := client.Network(context.Background(), []string{"TP53"}, 9606, 0.4); err == nil {
		t.Error("Expected error for 502 response")
	}
}

// TestNetwork_MalformedJSON verifies decoding failures surface as errors.
func TestNetwork_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if _, err := client.Network(context.Background(), []string{"TP53"}, 9606, 0.4); err == nil {
		t.Error("Expected error for non-JSON response")
	}
}

// TestNetwork_NoIdentifiers verifies the empty-input guard.
func TestNetwork_NoIdentifiers(t *testing.T) {
	client := NewClient("http://localhost:1")

	if _, err := client.Network(context.Background(), nil, 9606, 0.4); err == nil {
		t.Error("Expected error for empty identifier list")
	}
}

// TestNetwork_ContextCancelled verifies context cancellation aborts the call.
func TestNetwork_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Network(ctx, []string{"TP53"}, 9606, 0.4); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
