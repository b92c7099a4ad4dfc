// Package handler 通用辅助函数单元测试
package handler

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/floorplan-backend/internal/common/errors"
)

func setupTest() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotel", nil)
	return c, w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestHandleError_Nil(t *testing.T) {
	c, w := setupTest()

	assert.False(t, HandleError(c, nil))
	assert.Equal(t, 0, w.Body.Len())
}

func TestHandleError_AppError(t *testing.T) {
	c, w := setupTest()

	assert.True(t, HandleError(c, errors.ErrFloorNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Floor not found", errorMessage(t, w))
}

func TestHandleError_WrappedDatabaseError(t *testing.T) {
	c, w := setupTest()

	// 包装过的 500 错误透出底层错误文本，而不是统一的业务文案
	err := errors.ErrDatabaseError.WithError(stderrors.New("driver: bad connection"))
	assert.True(t, HandleError(c, err))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "driver: bad connection", errorMessage(t, w))
}

func TestHandleError_PlainError(t *testing.T) {
	c, w := setupTest()

	// 普通错误按 500 透传原始文本
	assert.True(t, HandleError(c, stderrors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", errorMessage(t, w))
}

func TestHandleErrorWithMessage(t *testing.T) {
	t.Run("AppError 保留自身消息", func(t *testing.T) {
		c, w := setupTest()
		assert.True(t, HandleErrorWithMessage(c, errors.ErrNoFile, "ignored"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No file provided", errorMessage(t, w))
	})

	t.Run("普通错误使用自定义消息", func(t *testing.T) {
		c, w := setupTest()
		assert.True(t, HandleErrorWithMessage(c, stderrors.New("boom"), "操作失败"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "操作失败", errorMessage(t, w))
	})
}

func TestMustSucceed(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		c, w := setupTest()
		MustSucceed(c, nil, gin.H{"message": "Floor deleted"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "Floor deleted"}`, w.Body.String())
	})

	t.Run("失败", func(t *testing.T) {
		c, w := setupTest()
		MustSucceed(c, errors.ErrFloorNotFound, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequireHeaderID(t *testing.T) {
	t.Run("解析成功", func(t *testing.T) {
		c, _ := setupTest()
		c.Request.Header.Set(HeaderFloorID, "42")

		id, ok := RequireHeaderID(c, HeaderFloorID)
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("缺失", func(t *testing.T) {
		c, w := setupTest()

		_, ok := RequireHeaderID(c, HeaderFloorID)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "X-Floor-Id header is required", errorMessage(t, w))
	})

	t.Run("非法", func(t *testing.T) {
		c, w := setupTest()
		c.Request.Header.Set(HeaderRoomID, "abc")

		_, ok := RequireHeaderID(c, HeaderRoomID)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid X-Room-Id header", errorMessage(t, w))
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01.05.2026")
	assert.Error(t, err)
}
