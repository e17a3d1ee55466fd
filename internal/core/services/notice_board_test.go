package services_test

import (
	"context"
	"testing"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestNoticeBoard_RecentNewestFirst(t *testing.T) {
	board := services.NewNoticeBoard(3)
	ctx := context.Background()

	assert.Empty(t, board.Recent(10))

	for _, msg := range []string{"one", "two", "three", "four"} {
		board.Notify(ctx, portssvc.NoticeInfo, msg)
	}

	recent := board.Recent(10)
	if assert.Len(t, recent, 3) {
		assert.Equal(t, "four", recent[0].Message)
		assert.Equal(t, "three", recent[1].Message)
		assert.Equal(t, "two", recent[2].Message)
	}

	top := board.Recent(1)
	if assert.Len(t, top, 1) {
		assert.Equal(t, "four", top[0].Message)
		assert.False(t, top[0].At.IsZero())
	}
}
