package api

import (
	"net/http"
	"testing"
)

func TestRegisterAndMe(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "newcomer@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, cookie), -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("me returned %d, want 200", response.StatusCode)
	}

	var body struct {
		User struct {
			Email       string `json:"email"`
			DisplayName string `json:"display_name"`
		} `json:"user"`
	}
	decodeBody(t, response, &body)
	if body.User.Email != "newcomer@example.com" {
		t.Fatalf("me email = %q, want newcomer@example.com", body.User.Email)
	}
	if body.User.DisplayName != "newcomer" {
		t.Fatalf("display name = %q, want local part of the email", body.User.DisplayName)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name    string
		payload map[string]any
		want    int
	}{
		{
			name: "weak password",
			payload: map[string]any{
				"email":            "weak@example.com",
				"password":         "short",
				"confirm_password": "short",
			},
			want: http.StatusBadRequest,
		},
		{
			name: "mismatched confirmation",
			payload: map[string]any{
				"email":            "mismatch@example.com",
				"password":         "StrongPass1",
				"confirm_password": "OtherPass1",
			},
			want: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			payload: map[string]any{
				"email":            "not-an-email",
				"password":         "StrongPass1",
				"confirm_password": "StrongPass1",
			},
			want: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]any{
				"email": "nopass@example.com",
			},
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", tt.payload, ""), -1)
			if err != nil {
				t.Fatalf("register request failed: %v", err)
			}
			defer response.Body.Close()
			if response.StatusCode != tt.want {
				t.Fatalf("register returned %d, want %d", response.StatusCode, tt.want)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "taken@example.com")

	payload := map[string]any{
		"email":            "taken@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", payload, ""), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register returned %d, want 409", response.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "mover@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "Mover@Example.com",
		"password": "StrongPass1",
	}, ""), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d, want 200", response.StatusCode)
	}
	if responseCookieValue(response.Cookies(), authCookieName) == "" {
		t.Fatal("login response missing auth cookie")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "mover@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "mover@example.com", password: "WrongPass1"},
		{name: "unknown account", email: "stranger@example.com", password: "StrongPass1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			}, ""), -1)
			if err != nil {
				t.Fatalf("login request failed: %v", err)
			}
			defer response.Body.Close()
			if response.StatusCode != http.StatusUnauthorized {
				t.Fatalf("login returned %d, want 401", response.StatusCode)
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "mover@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, cookie), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("logout returned %d, want 200", response.StatusCode)
	}
	for _, responseCookie := range response.Cookies() {
		if responseCookie.Name == authCookieName && responseCookie.Value != "" {
			t.Fatal("logout did not clear the auth cookie")
		}
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	app := newTestApp(t)
	cookie := registerTestUser(t, app, "mover@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, cookie+"tampered"), -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tampered token returned %d, want 401", response.StatusCode)
	}
}
