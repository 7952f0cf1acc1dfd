package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestOfferCategory_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		TestName       string
		Body           string
		ExpectedLabels []string
	}{
		{
			TestName:       "Success. Plain ids #1",
			Body:           `{"_id":"of1","code":"SALE","categories":["c1","c2"]}`,
			ExpectedLabels: []string{"c1", "c2"},
		},
		{
			TestName:       "Success. Populated objects #2",
			Body:           `{"_id":"of1","code":"SALE","categories":[{"_id":"c1","name":"Rings"},"c2"]}`,
			ExpectedLabels: []string{"Rings", "c2"},
		},
		{
			TestName:       "Success. No categories #3",
			Body:           `{"_id":"of1","code":"SALE"}`,
			ExpectedLabels: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			var offer Offer
			if err := json.Unmarshal([]byte(tc.Body), &offer); err != nil {
				t.Fatalf("Expected no error, got '%v'", err)
			}
			labels := []string{}
			for _, c := range offer.Categories {
				labels = append(labels, c.Label())
			}
			if diff := cmp.Diff(tc.ExpectedLabels, labels); diff != "" {
				t.Errorf("Labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
