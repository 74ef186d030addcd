package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"campushub/internal/service"
	serviceMocks "campushub/internal/service/mocks"
)

func TestSweepScheduler_StartRejectsBadSpec(t *testing.T) {
	s := NewSweepScheduler(new(serviceMocks.MockMonitorService), zap.NewNop(), "every tuesday", time.Second)

	err := s.Start()
	assert.ErrorContains(t, err, `add sweep job "every tuesday"`)
}

func TestSweepScheduler_RunOnce(t *testing.T) {
	tests := []struct {
		name    string
		result  *service.SweepResult
		err     error
		wantMsg string
		level   zapcore.Level
	}{
		{name: "completed", result: &service.SweepResult{MonitorsChecked: 3}, wantMsg: "scheduled sweep completed", level: zapcore.InfoLevel},
		{name: "skipped", result: &service.SweepResult{Skipped: true, Reason: "ran too recently"}, wantMsg: "scheduled sweep skipped", level: zapcore.DebugLevel},
		{name: "failed", err: errors.New("load status: timeout"), wantMsg: "scheduled sweep failed", level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			m := new(serviceMocks.MockMonitorService)
			m.On("RunSweep", mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := ctx.Deadline()
				return ok
			})).Return(tt.result, tt.err).Once()

			s := NewSweepScheduler(m, zap.New(core), "@every 1m", time.Second)
			s.runOnce()

			entries := logs.FilterMessage(tt.wantMsg).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			m.AssertExpectations(t)
		})
	}
}

func TestSweepScheduler_StartStop(t *testing.T) {
	m := new(serviceMocks.MockMonitorService)
	s := NewSweepScheduler(m, zap.NewNop(), "*/5 * * * *", time.Second)

	require.NoError(t, s.Start())
	assert.Len(t, s.cronEngine.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
