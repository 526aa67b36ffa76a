package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"fcp-bot-service/internal/config"
	"fcp-bot-service/internal/domain"
	"fcp-bot-service/internal/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunNagTicker_PublishesReadySignals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := []*domain.FinalizeSignal{{ProposalID: 1, IssueID: 7, Disposition: domain.DispositionMerge}}
	nag := &mocks.NagUseCase{}
	nag.On("Evaluate", mock.Anything).Return(signals, nil)
	sink := &mocks.Notifier{}
	sink.On("PublishFinalize", mock.Anything, signals).Run(func(mock.Arguments) { cancel() }).Return(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runNagTicker(ctx, nag, sink, 5*time.Millisecond, quietLogger())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nag ticker did not stop")
	}
	sink.AssertCalled(t, "PublishFinalize", mock.Anything, signals)
}

func TestRunNagTicker_SkipsEmptyAndErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	nag := &mocks.NagUseCase{}
	nag.On("Evaluate", mock.Anything).Return([]*domain.FinalizeSignal{}, nil).Once()
	nag.On("Evaluate", mock.Anything).Return(nil, errors.New("db down"))
	sink := &mocks.Notifier{}

	runNagTicker(ctx, nag, sink, 5*time.Millisecond, quietLogger())

	sink.AssertNotCalled(t, "PublishFinalize", mock.Anything, mock.Anything)
}

func TestRunNagTicker_Disabled(t *testing.T) {
	nag := &mocks.NagUseCase{}
	sink := &mocks.Notifier{}

	runNagTicker(context.Background(), nag, sink, 0, quietLogger())

	nag.AssertNotCalled(t, "Evaluate", mock.Anything)
	assert.Empty(t, sink.Calls)
}

func TestNewRepositories(t *testing.T) {
	repos, err := newRepositories(config.Config{StorageType: config.StorageTypeMemory}, quietLogger())
	assert.NoError(t, err)
	assert.NotNil(t, repos.proposals)
	assert.NoError(t, repos.close())

	_, err = newRepositories(config.Config{StorageType: "sqlite"}, quietLogger())
	assert.Error(t, err)
}
