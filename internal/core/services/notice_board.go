package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
)

const defaultNoticeCapacity = 50

// noticeBoard keeps the most recent notices in a fixed-size ring.
type noticeBoard struct {
	BaseService
	mu    sync.Mutex
	items []portssvc.Notice
	next  int
	full  bool
	now   func() time.Time
}

// NewNoticeBoard creates a notice board holding at most capacity notices.
func NewNoticeBoard(capacity int) portssvc.NoticeBoardSvc {
	if capacity <= 0 {
		capacity = defaultNoticeCapacity
	}
	return &noticeBoard{
		items: make([]portssvc.Notice, capacity),
		now:   time.Now,
	}
}

var _ portssvc.NoticeBoardSvc = (*noticeBoard)(nil)

func (b *noticeBoard) Notify(ctx context.Context, level portssvc.NoticeLevel, message string) {
	b.LogDebug(ctx, "Notice posted", slog.String("level", string(level)), slog.String("message", message))

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[b.next] = portssvc.Notice{Level: level, Message: message, At: b.now().UTC()}
	b.next = (b.next + 1) % len(b.items)
	if b.next == 0 {
		b.full = true
	}
}

func (b *noticeBoard) Recent(n int) []portssvc.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	size := b.next
	if b.full {
		size = len(b.items)
	}
	if n <= 0 || n > size {
		n = size
	}
	out := make([]portssvc.Notice, 0, n)
	for i := 1; i <= n; i++ {
		idx := (b.next - i + len(b.items)) % len(b.items)
		out = append(out, b.items[idx])
	}
	return out
}
