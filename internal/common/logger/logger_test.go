// Package logger 日志模块单元测试
package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/hoteldesk/floorplan-backend/internal/common/config"
)

func TestInit_ConsoleFormat(t *testing.T) {
	cfg := &config.LoggerConfig{
		Level:  "debug",
		Format: "console",
		Output: "stdout",
		Caller: true,
	}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, log)
	assert.NotNil(t, sugar)
}

func TestInit_JSONFormat(t *testing.T) {
	cfg := &config.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}

	require.NoError(t, Init(cfg))
	assert.NotNil(t, log)
}

func TestInit_FileOutput(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "app.log")

	cfg := &config.LoggerConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
		MaxSize:  1,
	}

	require.NoError(t, Init(cfg))

	Info("floor created", FloorID(1))
	_ = Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, len(data) > 0)

	line := strings.SplitN(strings.TrimSpace(string(data)), "\n", 2)[0]
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "floor created", entry["msg"])
	assert.Equal(t, float64(1), entry["floor_id"])
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func TestGetLogger_WithoutInit(t *testing.T) {
	// 未初始化时返回开发模式日志器而非 nil
	assert.NotNil(t, GetLogger())
	assert.NotNil(t, GetSugar())
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, "floor_id", FloorID(1).Key)
	assert.Equal(t, "room_id", RoomID(2).Key)
	assert.Equal(t, "booking_id", BookingID(3).Key)
	assert.Equal(t, "request_id", RequestID("abc").Key)
	assert.Equal(t, "module", Module("floorplan").Key)
	assert.Equal(t, "status_code", StatusCode(200).Key)
}
