package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/plan", nil)
	c.Request.RemoteAddr = remoteAddr
	for name, value := range headers {
		c.Request.Header.Set(name, value)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded-for takes the first hop",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1"},
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded-for wins over real-ip",
			remoteAddr: "10.0.0.1:443",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.4",
			},
			want: "203.0.113.7",
		},
		{
			name:       "real-ip when forwarded-for is absent",
			remoteAddr: "10.0.0.1:443",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.4 "},
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr with port stripped",
			remoteAddr: "192.0.2.5:51234",
			want:       "192.0.2.5",
		},
		{
			name:       "remote addr without port kept as-is",
			remoteAddr: "192.0.2.5",
			want:       "192.0.2.5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := requestContext(t, tc.remoteAddr, tc.headers)
			if got := getClientIP(c); got != tc.want {
				t.Errorf("getClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
