package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://Boards.Greenhouse.io/acme", "boards.greenhouse.io"},
		{"http://x.test:8080/jobs", "x.test"},
		{"not a url", "_"},
		{"", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, hostKey(tt.in))
		})
	}
}

func TestHostLimiter_SharesBudgetPerHost(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	a := hl.limiterFor("a.test")
	assert.Same(t, a, hl.limiterFor("a.test"))
	assert.NotSame(t, a, hl.limiterFor("b.test"))
}

func TestHostLimiter_DisabledNeverBlocks(t *testing.T) {
	hl := NewHostLimiter(0, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 50; i++ {
		require.NoError(t, hl.WaitURL(ctx, "https://x.test/careers"))
	}
}

func TestHostLimiter_WaitHonorsContext(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, hl.WaitURL(ctx, "https://x.test/a"))
	assert.Error(t, hl.WaitURL(ctx, "https://x.test/b"))
}
