package services

import (
	"context"
	"time"
)

// NoticeLevel grades a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short transient message for the user. It never carries technical detail.
type Notice struct {
	Level   NoticeLevel
	Message string
	At      time.Time
}

// Notifier posts notices.
type Notifier interface {
	Notify(ctx context.Context, level NoticeLevel, message string)
}

// NoticeReader exposes recently posted notices.
type NoticeReader interface {
	// Recent returns up to n notices, newest first.
	Recent(n int) []Notice
}

// NoticeBoardSvc combines posting and reading notices.
type NoticeBoardSvc interface {
	Notifier
	NoticeReader
}
