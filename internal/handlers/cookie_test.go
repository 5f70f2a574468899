package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kugicode/catalog-service/internal/session"
)

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		cookieConfig CookieConfig
		wantSecure   bool
		wantSameSite http.SameSite
		wantDomain   string // Go http strips leading dot from domain per RFC 6265
	}{
		{
			name: "development config",
			cookieConfig: CookieConfig{
				Domain:   "",
				Secure:   false,
				SameSite: http.SameSiteLaxMode,
				Path:     "/",
			},
			wantSecure:   false,
			wantSameSite: http.SameSiteLaxMode,
			wantDomain:   "",
		},
		{
			name: "production config",
			cookieConfig: CookieConfig{
				Domain:   ".example.com",
				Secure:   true,
				SameSite: http.SameSiteStrictMode,
				Path:     "/",
			},
			wantSecure:   true,
			wantSameSite: http.SameSiteStrictMode,
			wantDomain:   "example.com", // Leading dot stripped by http package
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			helper := NewCookieHelper(tt.cookieConfig, time.Minute)
			helper.SetSessionCookie(c, "token123")

			cookies := w.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("expected 1 cookie, got %d", len(cookies))
			}

			cookie := cookies[0]
			if cookie.Name != session.CookieName {
				t.Errorf("cookie name = %s, want %s", cookie.Name, session.CookieName)
			}
			if cookie.Value != "token123" {
				t.Errorf("cookie value = %s, want token123", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("cookie Secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if cookie.SameSite != tt.wantSameSite {
				t.Errorf("cookie SameSite = %v, want %v", cookie.SameSite, tt.wantSameSite)
			}
			if cookie.Path != tt.cookieConfig.Path {
				t.Errorf("cookie Path = %s, want %s", cookie.Path, tt.cookieConfig.Path)
			}
			if cookie.Domain != tt.wantDomain {
				t.Errorf("cookie Domain = %s, want %s", cookie.Domain, tt.wantDomain)
			}
			if cookie.MaxAge != 60 {
				t.Errorf("cookie MaxAge = %d, want 60", cookie.MaxAge)
			}
		})
	}
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper := NewCookieHelper(CookieConfig{Path: "/"}, time.Minute)
	helper.ClearSessionCookie(c)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("cookie should have MaxAge=-1, got %d", cookies[0].MaxAge)
	}
}

func TestGetSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: session.CookieName, Value: "test_token"})

	helper := NewCookieHelper(CookieConfig{}, time.Minute)
	token := helper.GetSessionToken(c)

	if token != "test_token" {
		t.Errorf("GetSessionToken() = %s, want test_token", token)
	}
}

func TestGetSessionToken_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	helper := NewCookieHelper(CookieConfig{}, time.Minute)
	token := helper.GetSessionToken(c)

	if token != "" {
		t.Errorf("GetSessionToken() = %s, want empty string", token)
	}
}

func TestNewCookieHelper_DefaultPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper := NewCookieHelper(CookieConfig{}, time.Minute)
	helper.SetSessionCookie(c, "abc")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Path != "/" {
		t.Errorf("cookie Path = %s, want /", cookies[0].Path)
	}
}
