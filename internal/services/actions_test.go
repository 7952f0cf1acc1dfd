package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/client/mocks"
	"github.com/denmor86/ya-shopadmin/internal/config"
	"github.com/denmor86/ya-shopadmin/internal/logger"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func initLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		t.Fatal(err)
	}
}

func messages(feed *notify.Feed) []string {
	var result []string
	for _, n := range feed.Drain() {
		result = append(result, string(n.Level)+": "+n.Message)
	}
	return result
}

func TestOrderActions_Perform(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	testCases := []struct {
		TestName         string
		OrderID          string
		Kind             models.ActionKind
		Reason           string
		SetupMocks       func()
		ExpectedError    error
		ExpectedMessage  string
		ExpectedFeed     []string
		ExpectedSnapshot int
	}{
		{
			TestName: "Success. Confirm reloads list #1",
			OrderID:  "o1",
			Kind:     models.ActionConfirm,
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), models.ActionRequest{OrderID: "o1", Action: models.ActionConfirm}).Return(nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{{ID: "o1", PaymentStatus: models.PaymentStatusPaid}}, nil)
			},
			ExpectedFeed:     []string{"success: Order updated"},
			ExpectedSnapshot: 1,
		},
		{
			TestName: "Success. Reject sends reason as is #2",
			OrderID:  "o1",
			Kind:     models.ActionReject,
			Reason:   "  blurry proof ",
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), models.ActionRequest{OrderID: "o1", Action: models.ActionReject, Reason: "  blurry proof "}).Return(nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			ExpectedFeed: []string{"success: Order updated"},
		},
		{
			TestName: "Success. Reason dropped for mark-half #3",
			OrderID:  " o2 ",
			Kind:     models.ActionMarkHalf,
			Reason:   "ignored",
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), models.ActionRequest{OrderID: "o2", Action: models.ActionMarkHalf}).Return(nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			ExpectedFeed: []string{"success: Order updated"},
		},
		{
			TestName: "Error. Backend message shown, no reload #4",
			OrderID:  "o1",
			Kind:     models.ActionConfirm,
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).
					Return(&client.APIError{StatusCode: 400, Message: "Order already paid", Err: client.ErrRejected})
			},
			ExpectedError:   client.ErrRejected,
			ExpectedMessage: "Order already paid",
			ExpectedFeed:    []string{"error: Order already paid"},
		},
		{
			TestName: "Error. Generic message without backend text #5",
			OrderID:  "o1",
			Kind:     models.ActionConfirm,
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			ExpectedMessage: MsgUpdateFailed,
			ExpectedFeed:    []string{"error: Update failed"},
		},
		{
			TestName:      "Error. Empty order id #6",
			OrderID:       "  ",
			Kind:          models.ActionConfirm,
			SetupMocks:    func() {},
			ExpectedError: ErrEmptyOrderID,
		},
		{
			TestName:      "Error. Unknown action #7",
			OrderID:       "o1",
			Kind:          "refund",
			SetupMocks:    func() {},
			ExpectedError: ErrUnknownAction,
		},
		{
			TestName: "Success. Reload failure keeps action successful #8",
			OrderID:  "o1",
			Kind:     models.ActionConfirm,
			SetupMocks: func() {
				mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).Return(nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return(nil, client.ErrServiceUnavailable)
			},
			ExpectedFeed: []string{"success: Order updated", "error: Failed to fetch orders"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			feed := notify.NewFeed(10)
			orders := NewOrders(mockAPI, feed)
			actions := NewOrderActions(mockAPI, orders, feed)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := actions.Perform(ctx, tc.OrderID, tc.Kind, tc.Reason)

			if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedMessage != "" {
				var actionErr *ActionError
				if !errors.As(err, &actionErr) {
					t.Fatalf("Expected ActionError, got: '%v'", err)
				}
				if actionErr.Message != tc.ExpectedMessage {
					t.Errorf("Expected message: '%s', got: '%s'", tc.ExpectedMessage, actionErr.Message)
				}
			}
			if tc.ExpectedError == nil && tc.ExpectedMessage == "" && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedFeed, messages(feed)); diff != "" {
				t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
			}
			if got := orders.Store.Len(); got != tc.ExpectedSnapshot {
				t.Errorf("Expected %d orders, got %d", tc.ExpectedSnapshot, got)
			}
			if state := actions.State(tc.OrderID); state != Idle {
				t.Errorf("Expected idle after action, got %s", state)
			}
		})
	}
}

func TestOrderActions_BusyRejectsSecondPress(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	// ровно один сетевой вызов, второе нажатие до сети не доходит
	mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.ActionRequest) error {
			close(started)
			<-release
			return nil
		}).Times(1)
	mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil).Times(1)

	feed := notify.NewFeed(10)
	actions := NewOrderActions(mockAPI, NewOrders(mockAPI, feed), feed)

	done := make(chan error, 1)
	go func() {
		done <- actions.Perform(context.Background(), "o1", models.ActionConfirm, "")
	}()
	<-started

	if state := actions.State("o1"); state != Busy {
		t.Fatalf("Expected busy, got %s", state)
	}
	if err := actions.Perform(context.Background(), "o1", models.ActionReject, "x"); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy, got '%v'", err)
	}
	if _, err := actions.RequestProof(context.Background(), "o1"); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy, got '%v'", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
	if state := actions.State("o1"); state != Idle {
		t.Errorf("Expected idle, got %s", state)
	}
	if diff := cmp.Diff([]string{"success: Order updated"}, messages(feed)); diff != "" {
		t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderActions_OrdersAreIndependent(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	var arrived sync.WaitGroup
	arrived.Add(2)
	release := make(chan struct{})
	mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.ActionRequest) error {
			arrived.Done()
			<-release
			return nil
		}).Times(2)
	mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil).Times(2)

	feed := notify.NewFeed(10)
	actions := NewOrderActions(mockAPI, NewOrders(mockAPI, feed), feed)

	var wg sync.WaitGroup
	for _, id := range []string{"o1", "o2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := actions.Perform(context.Background(), id, models.ActionConfirm, ""); err != nil {
				t.Errorf("Expected no error for %s, got '%v'", id, err)
			}
		}(id)
	}

	// оба запроса в полёте одновременно
	arrived.Wait()
	if diff := cmp.Diff(map[string]ActionState{"o1": Busy, "o2": Busy}, actions.States()); diff != "" {
		t.Errorf("States mismatch (-want +got):\n%s", diff)
	}
	close(release)
	wg.Wait()

	if got := len(actions.States()); got != 0 {
		t.Errorf("Expected no busy orders, got %d", got)
	}
}

func TestOrderActions_IdleBeforeReload(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	feed := notify.NewFeed(10)
	actions := NewOrderActions(mockAPI, NewOrders(mockAPI, feed), feed)

	mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).Return(nil)
	mockAPI.EXPECT().GetOrders(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Order, error) {
		if state := actions.State("o1"); state != Idle {
			t.Errorf("Expected idle during reload, got %s", state)
		}
		return []models.Order{{ID: "o1"}}, nil
	})

	if err := actions.Perform(context.Background(), "o1", models.ActionConfirm, ""); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
}

func TestOrderActions_CallerCancelDoesNotCancelCall(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(callCtx context.Context, req models.ActionRequest) error {
			cancel()
			return callCtx.Err()
		})
	mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)

	feed := notify.NewFeed(10)
	actions := NewOrderActions(mockAPI, NewOrders(mockAPI, feed), feed)

	if err := actions.Perform(ctx, "o1", models.ActionConfirm, ""); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
}

func TestOrderActions_RequestProof(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	testCases := []struct {
		TestName     string
		OrderID      string
		Kind         models.ActionKind
		SetupMocks   func()
		ExpectedAck  *models.ProofResponse
		ExpectError  bool
		ExpectedFeed []string
	}{
		{
			TestName: "Success. Server message shown #1",
			OrderID:  "o1",
			SetupMocks: func() {
				mockAPI.EXPECT().RequestProof(gomock.Any(), "o1").
					Return(&models.ProofResponse{Message: "Email sent", UploadLink: "https://shop/upload/o1"}, nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			ExpectedAck:  &models.ProofResponse{Message: "Email sent", UploadLink: "https://shop/upload/o1"},
			ExpectedFeed: []string{"success: Email sent"},
		},
		{
			TestName: "Success. Default message #2",
			OrderID:  "o1",
			SetupMocks: func() {
				mockAPI.EXPECT().RequestProof(gomock.Any(), "o1").Return(&models.ProofResponse{}, nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			ExpectedAck:  &models.ProofResponse{},
			ExpectedFeed: []string{"success: Proof request sent"},
		},
		{
			TestName: "Error. Generic failure #3",
			OrderID:  "o1",
			SetupMocks: func() {
				mockAPI.EXPECT().RequestProof(gomock.Any(), "o1").Return(nil, client.ErrServiceUnavailable)
			},
			ExpectError:  true,
			ExpectedFeed: []string{"error: Failed to request proof"},
		},
		{
			TestName: "Success. Routed through Perform #4",
			OrderID:  "o1",
			Kind:     models.ActionRequestProof,
			SetupMocks: func() {
				mockAPI.EXPECT().RequestProof(gomock.Any(), "o1").Return(&models.ProofResponse{}, nil)
				mockAPI.EXPECT().GetOrders(gomock.Any()).Return([]models.Order{}, nil)
			},
			ExpectedFeed: []string{"success: Proof request sent"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			feed := notify.NewFeed(10)
			actions := NewOrderActions(mockAPI, NewOrders(mockAPI, feed), feed)

			var (
				ack *models.ProofResponse
				err error
			)
			if tc.Kind != "" {
				err = actions.Perform(context.Background(), tc.OrderID, tc.Kind, "")
			} else {
				ack, err = actions.RequestProof(context.Background(), tc.OrderID)
			}

			if tc.ExpectError && err == nil {
				t.Errorf("Expected error, got none")
			} else if !tc.ExpectError && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedAck, ack); diff != "" {
				t.Errorf("Ack mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.ExpectedFeed, messages(feed)); diff != "" {
				t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderActions_FailureKeepsList(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockOrdersAPI(ctrl)

	feed := notify.NewFeed(10)
	orders := NewOrders(mockAPI, feed)
	orders.Store.Replace([]models.Order{
		{ID: "o1", PaymentStatus: models.PaymentStatusPending},
		{ID: "o2", PaymentStatus: models.PaymentStatusHalfPaid},
	})
	actions := NewOrderActions(mockAPI, orders, feed)

	// перезагрузки после отказа быть не должно
	mockAPI.EXPECT().OrderAction(gomock.Any(), gomock.Any()).
		Return(&client.APIError{StatusCode: 409, Message: "Order locked", Err: client.ErrRejected})
	mockAPI.EXPECT().GetOrders(gomock.Any()).Times(0)

	if err := actions.Perform(context.Background(), "o1", models.ActionConfirm, ""); err == nil {
		t.Errorf("Expected error, got none")
	}

	got := []string{}
	for _, o := range orders.Snapshot() {
		got = append(got, o.ID+":"+o.PaymentStatus)
	}
	want := []string{"o1:Pending", "o2:Half-Paid"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"error: Order locked"}, messages(feed)); diff != "" {
		t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
	}
	if state := actions.State("o1"); state != Idle {
		t.Errorf("Expected idle after failure, got %s", state)
	}
}
