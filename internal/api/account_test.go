package api

import (
	"net/http"
	"testing"
)

func TestChangePasswordFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "mover@example.com")

	// Wrong current password is rejected.
	response, err := app.Test(jsonRequest(t, http.MethodPut, "/api/auth/password", map[string]any{
		"current_password": "WrongPass1",
		"new_password":     "FreshPass2",
		"confirm_password": "FreshPass2",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("change password request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong current password returned %d, want 401", response.StatusCode)
	}

	// A weak replacement is rejected.
	response, err = app.Test(jsonRequest(t, http.MethodPut, "/api/auth/password", map[string]any{
		"current_password": "StrongPass1",
		"new_password":     "weak",
		"confirm_password": "weak",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("change password request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("weak new password returned %d, want 400", response.StatusCode)
	}

	// A valid change succeeds and the new password logs in.
	response, err = app.Test(jsonRequest(t, http.MethodPut, "/api/auth/password", map[string]any{
		"current_password": "StrongPass1",
		"new_password":     "FreshPass2",
		"confirm_password": "FreshPass2",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("change password request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("change password returned %d, want 200", response.StatusCode)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "mover@example.com",
		"password": "FreshPass2",
	}, ""), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login with new password returned %d, want 200", response.StatusCode)
	}
}

func TestDeleteAccountRemovesData(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "mover@example.com")

	// Materialize the checklist so deletion has rows to sweep.
	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/checklist", nil, cookie), -1)
	if err != nil {
		t.Fatalf("checklist request failed: %v", err)
	}
	response.Body.Close()

	// Deleting with the wrong password must fail.
	response, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/auth/account", map[string]any{
		"password": "WrongPass1",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("delete with wrong password returned %d, want 401", response.StatusCode)
	}

	response, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/auth/account", map[string]any{
		"password": "StrongPass1",
	}, cookie), -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("delete account returned %d, want 200", response.StatusCode)
	}

	// The old cookie now references a deleted user.
	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, cookie), -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after deletion returned %d, want 401", response.StatusCode)
	}

	// The address can register again from scratch.
	registerTestUser(t, app, "mover@example.com")
}
