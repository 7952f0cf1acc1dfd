package notify

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFeed(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		Name     string
		Limit    int
		Push     func(f *Feed)
		Expected []Notification
	}{
		{
			Name:     "Success. Empty feed drains to empty list #1",
			Limit:    3,
			Push:     func(f *Feed) {},
			Expected: []Notification{},
		},
		{
			Name:  "Success. Order preserved #2",
			Limit: 3,
			Push: func(f *Feed) {
				f.Success("Order updated")
				f.Error("Failed to fetch orders")
			},
			Expected: []Notification{
				{Level: LevelSuccess, Message: "Order updated", At: at},
				{Level: LevelError, Message: "Failed to fetch orders", At: at},
			},
		},
		{
			Name:  "Success. Oldest evicted over limit #3",
			Limit: 2,
			Push: func(f *Feed) {
				f.Success("one")
				f.Success("two")
				f.Error("three")
			},
			Expected: []Notification{
				{Level: LevelSuccess, Message: "two", At: at},
				{Level: LevelError, Message: "three", At: at},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			feed := NewFeed(tc.Limit)
			feed.now = func() time.Time { return at }
			tc.Push(feed)

			if diff := cmp.Diff(tc.Expected, feed.Drain()); diff != "" {
				t.Errorf("notifications mismatch:\n %s", diff)
			}
			if rest := feed.Drain(); len(rest) != 0 {
				t.Errorf("Expected empty feed after drain, got: '%v'", rest)
			}
		})
	}
}

func TestMulti(t *testing.T) {
	first, second := NewFeed(5), NewFeed(5)
	Multi{first, second}.Error("Update failed")

	for i, f := range []*Feed{first, second} {
		items := f.Drain()
		if len(items) != 1 || items[0].Message != "Update failed" || items[0].Level != LevelError {
			t.Errorf("Feed %d: unexpected notifications '%v'", i, items)
		}
	}
}
