package driver_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iptecharch/netdriver/mocks/mockdriver"
	"github.com/iptecharch/netdriver/pkg/driver"
)

func TestWithSession_OpenFailure(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	openErr := &driver.Error{Kind: driver.KindConnection, Op: "open", Device: "dev1", Err: errors.New("refused")}
	d.EXPECT().Open(gomock.Any()).Return(openErr)
	// Close is never called and the protected work never runs

	ran := false
	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		ran = true
		return nil
	})
	if !errors.Is(err, driver.ErrConnection) {
		t.Fatalf("WithSession() = %v, want connection error", err)
	}
	if ran {
		t.Errorf("protected work ran despite failed open")
	}
}

func TestWithSession_ClosesExactlyOnce(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	d.EXPECT().Open(gomock.Any()).Return(nil)
	d.EXPECT().Close(gomock.Any()).Times(1).Return(nil)

	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		return nil
	})
	if err != nil {
		t.Fatalf("WithSession() = %v", err)
	}
}

func TestWithSession_WorkFailurePreserved(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	d.EXPECT().Open(gomock.Any()).Return(nil)
	d.EXPECT().Close(gomock.Any()).Times(1).Return(nil)
	d.EXPECT().Name().AnyTimes().Return("dev1")

	workErr := &driver.Error{Kind: driver.KindCommit, Op: "commit", Device: "dev1", Err: errors.New("rejected")}
	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		return workErr
	})
	// the original failure reaches the caller unaltered
	if !errors.Is(err, workErr) {
		t.Fatalf("WithSession() = %v, want the original work error", err)
	}
}

func TestWithSession_CloseFailureJoined(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	workErr := &driver.Error{Kind: driver.KindCommit, Op: "commit", Device: "dev1", Err: errors.New("rejected")}
	closeErr := &driver.Error{Kind: driver.KindConnection, Op: "close", Device: "dev1", Err: errors.New("reset")}

	d.EXPECT().Open(gomock.Any()).Return(nil)
	d.EXPECT().Close(gomock.Any()).Times(1).Return(closeErr)
	d.EXPECT().Name().AnyTimes().Return("dev1")

	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		return workErr
	})
	// both failures must be observable, neither swallowed
	if !errors.Is(err, workErr) {
		t.Errorf("WithSession() = %v, lost the work error", err)
	}
	if !errors.Is(err, closeErr) {
		t.Errorf("WithSession() = %v, lost the close error", err)
	}
}

func TestWithSession_CloseFailureAlone(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	closeErr := &driver.Error{Kind: driver.KindConnection, Op: "close", Device: "dev1", Err: errors.New("reset")}
	d.EXPECT().Open(gomock.Any()).Return(nil)
	d.EXPECT().Close(gomock.Any()).Times(1).Return(closeErr)
	d.EXPECT().Name().AnyTimes().Return("dev1")

	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		return nil
	})
	if !errors.Is(err, closeErr) {
		t.Fatalf("WithSession() = %v, want the close error", err)
	}
}

func TestWithSession_UnexpectedErrorPassesThrough(t *testing.T) {
	c := gomock.NewController(t)
	d := mockdriver.NewMockDriver(c)

	d.EXPECT().Open(gomock.Any()).Return(nil)
	d.EXPECT().Close(gomock.Any()).Times(1).Return(nil)
	d.EXPECT().Name().AnyTimes().Return("dev1")

	oddErr := errors.New("something nobody declared")
	err := driver.WithSession(context.TODO(), d, func(ctx context.Context, d driver.Driver) error {
		return oddErr
	})
	// the error identity is untouched, only logged as unexpected
	if !errors.Is(err, oddErr) {
		t.Fatalf("WithSession() = %v, want the original error", err)
	}
	if driver.KindOf(err) != driver.KindUnexpected {
		t.Errorf("KindOf() = %v, want unexpected", driver.KindOf(err))
	}
}
