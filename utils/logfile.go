package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogFileName trả về tên file log theo ngày, ví dụ app-2025-02-03.log
func LogFileName(now time.Time) string {
	return fmt.Sprintf("app-%s.log", now.Format("2006-01-02"))
}

// OpenDailyLogFile tạo thư mục logs nếu chưa tồn tại và mở file log của ngày hiện tại ở chế độ ghi nối
func OpenDailyLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, LogFileName(now))
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return logFile, nil
}
