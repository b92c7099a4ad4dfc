// Package metrics 指标收集单元测试
package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetMetrics(t *testing.T) {
	m := GetMetrics()
	require.NotNil(t, m)
	assert.NotNil(t, m.httpRequestsTotal)
	assert.NotNil(t, m.httpRequestDuration)
	assert.NotNil(t, m.httpRequestsInFlight)
	assert.NotNil(t, m.uploadsTotal)
	assert.NotNil(t, m.bookingsTotal)

	// 单例
	assert.Same(t, m, GetMetrics())
}

func TestRecordUpload(t *testing.T) {
	m := GetMetrics()

	before := testutil.ToFloat64(m.uploadsTotal.WithLabelValues("ok"))
	m.RecordUpload(true)
	assert.Equal(t, before+1, testutil.ToFloat64(m.uploadsTotal.WithLabelValues("ok")))

	beforeErr := testutil.ToFloat64(m.uploadsTotal.WithLabelValues("error"))
	m.RecordUpload(false)
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(m.uploadsTotal.WithLabelValues("error")))
}

func TestRecordBooking(t *testing.T) {
	m := GetMetrics()

	before := testutil.ToFloat64(m.bookingsTotal)
	m.RecordBooking()
	assert.Equal(t, before+1, testutil.ToFloat64(m.bookingsTotal))
}

func TestMiddleware(t *testing.T) {
	m := GetMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/floor-plan", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"floors": []string{}})
	})

	before := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/floor-plan", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/floor-plan", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/floor-plan", "200")))
}

func TestHandler(t *testing.T) {
	GetMetrics().RecordBooking()

	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hotel_floorplan_bookings_total")
}
