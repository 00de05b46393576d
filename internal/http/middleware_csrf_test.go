package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newCSRFHandler() http.Handler {
	cfg := CSRFConfig{
		CookieName:    DefaultCSRFCookieName,
		HeaderName:    DefaultCSRFHeaderName,
		FormFieldName: DefaultCSRFCookieName,
		TokenLength:   DefaultCSRFTokenLength,
	}
	return CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}))
}

func csrfTokenFromResponse(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := w.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c.Value
		}
	}
	t.Fatal("CSRF cookie not set")
	return ""
}

func TestCSRFProtection_GetRequestsAllowed(t *testing.T) {
	handler := newCSRFHandler()

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if token := csrfTokenFromResponse(t, w); token == "" {
		t.Error("CSRF token is empty")
	}
}

func TestCSRFProtection_PostWithoutTokenFails(t *testing.T) {
	handler := newCSRFHandler()

	req := httptest.NewRequest(http.MethodPost, "/admin/actions", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestCSRFProtection_PostWithValidHeaderToken(t *testing.T) {
	handler := newCSRFHandler()

	// First request to get a token
	req1 := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, req1)
	token := csrfTokenFromResponse(t, w1)

	// Second request echoes the token in the header
	req2 := httptest.NewRequest(http.MethodPost, "/admin/actions", nil)
	req2.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	req2.Header.Set(DefaultCSRFHeaderName, token)
	w2 := httptest.NewRecorder()

	handler.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w2.Code)
	}
}

func TestCSRFProtection_PostWithValidFormToken(t *testing.T) {
	handler := newCSRFHandler()

	req1 := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	w1 := httptest.NewRecorder()
	handler.ServeHTTP(w1, req1)
	token := csrfTokenFromResponse(t, w1)

	// Second request echoes the token in the form body
	form := url.Values{}
	form.Set(DefaultCSRFCookieName, token)
	req2 := httptest.NewRequest(http.MethodPost, "/admin/actions", strings.NewReader(form.Encode()))
	req2.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req2.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	w2 := httptest.NewRecorder()

	handler.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w2.Code)
	}
}

func TestCSRFProtection_PostWithMismatchedToken(t *testing.T) {
	handler := newCSRFHandler()

	req := httptest.NewRequest(http.MethodPost, "/admin/actions", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "cookie-token"})
	req.Header.Set(DefaultCSRFHeaderName, "different-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestCSRFProtection_SafeMethodsExempt(t *testing.T) {
	handler := newCSRFHandler()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		req := httptest.NewRequest(method, "/admin/jobs", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", method, w.Code)
		}
	}
}

func TestCSRFProtection_TokenInContext(t *testing.T) {
	cfg := CSRFConfig{TokenLength: DefaultCSRFTokenLength}

	var contextToken string
	handler := CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextToken = GetCSRFToken(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	cookieToken := csrfTokenFromResponse(t, w)
	if contextToken == "" || contextToken != cookieToken {
		t.Errorf("context token %q does not match cookie token %q", contextToken, cookieToken)
	}
}

func TestCSRFProtection_CookieNotSetWhenExists(t *testing.T) {
	handler := newCSRFHandler()

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == DefaultCSRFCookieName {
			t.Errorf("CSRF cookie re-set to %q, expected no Set-Cookie", c.Value)
		}
	}
}
