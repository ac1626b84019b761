package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	statuses := []int{http.StatusOK, http.StatusUnauthorized, http.StatusInternalServerError}

	for _, status := range statuses {
		h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil))

		assert.Equal(t, status, rec.Code)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
		assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
		assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
	}
}
