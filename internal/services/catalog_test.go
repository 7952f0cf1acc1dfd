package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/denmor86/ya-shopadmin/internal/client"
	"github.com/denmor86/ya-shopadmin/internal/client/mocks"
	"github.com/denmor86/ya-shopadmin/internal/models"
	"github.com/denmor86/ya-shopadmin/internal/notify"
	"github.com/denmor86/ya-shopadmin/internal/validators"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// route - ответ мока по методу и пути запроса
func route(t *testing.T, routes map[string]string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		key := req.Method + " " + req.URL.Path
		body, ok := routes[key]
		if !ok {
			t.Errorf("Unexpected request %s", key)
			return jsonResponse(http.StatusNotFound, `{}`), nil
		}
		return jsonResponse(http.StatusOK, body), nil
	}
}

func TestCategories(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	api := client.NewClient("http://shop", mockHTTP, nil).WithToken("tkn")

	list := `{"categories":[{"_id":"c1","name":"Rings","subcategories":["Gold"]}]}`

	testCases := []struct {
		TestName      string
		Call          func(c *Categories) error
		SetupMocks    func()
		ExpectedError error
		ExpectedFeed  []string
		ExpectedNames []string
	}{
		{
			TestName: "Success. Add reloads list #1",
			Call: func(c *Categories) error {
				return c.Add(context.Background(), models.CategoryRequest{Name: " Rings "})
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(route(t, map[string]string{
					"POST /api/category/add": `{"success":true}`,
					"GET /api/category/list": list,
				})).Times(2)
			},
			ExpectedFeed:  []string{"success: Category added"},
			ExpectedNames: []string{"Rings"},
		},
		{
			TestName: "Error. Empty name never reaches network #2",
			Call: func(c *Categories) error {
				return c.Add(context.Background(), models.CategoryRequest{Name: "  "})
			},
			SetupMocks:    func() {},
			ExpectedError: validators.ErrValidation,
			ExpectedFeed:  []string{"error: Enter category name"},
			ExpectedNames: []string{},
		},
		{
			TestName: "Error. Backend rejection, no reload #3",
			Call: func(c *Categories) error {
				return c.AddSubcategory(context.Background(), models.SubcategoryRequest{CategoryName: "Rings", Subcategory: "Gold"})
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusBadRequest, `{"message":"Subcategory exists"}`), nil)
			},
			ExpectedError: client.ErrRejected,
			ExpectedFeed:  []string{"error: Subcategory exists"},
			ExpectedNames: []string{},
		},
		{
			TestName: "Success. Delete subcategory #4",
			Call: func(c *Categories) error {
				return c.DeleteSubcategory(context.Background(), models.SubcategoryDeleteRequest{CategoryID: "c1", Subcategory: "Gold"})
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(route(t, map[string]string{
					"POST /api/category/delete-subcategory": `{"success":true}`,
					"GET /api/category/list":                list,
				})).Times(2)
			},
			ExpectedFeed:  []string{"success: Subcategory deleted"},
			ExpectedNames: []string{"Rings"},
		},
		{
			TestName: "Success. Delete category by id #5",
			Call: func(c *Categories) error {
				return c.Delete(context.Background(), "c1")
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(route(t, map[string]string{
					"DELETE /api/category/c1": `{"success":true}`,
					"GET /api/category/list":  `{"categories":[]}`,
				})).Times(2)
			},
			ExpectedFeed:  []string{"success: Category deleted"},
			ExpectedNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			feed := notify.NewFeed(10)
			categories := NewCategories(api, feed)

			err := tc.Call(categories)
			if tc.ExpectedError != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			} else if tc.ExpectedError == nil && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedFeed, messages(feed)); diff != "" {
				t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
			}
			names := []string{}
			for _, c := range categories.Snapshot() {
				names = append(names, c.Name)
			}
			if diff := cmp.Diff(tc.ExpectedNames, names); diff != "" {
				t.Errorf("Categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOffers(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	api := client.NewClient("http://shop", mockHTTP, nil).WithToken("tkn")

	rules := []models.DiscountRule{{Difficulty: "easy", DiscountPercentage: 10}}

	testCases := []struct {
		TestName     string
		Call         func(o *Offers) error
		SetupMocks   func()
		ExpectError  bool
		ExpectedFeed []string
	}{
		{
			TestName: "Error. Code required #1",
			Call: func(o *Offers) error {
				return o.Add(context.Background(), models.OfferRequest{Code: " ", DiscountRules: rules})
			},
			SetupMocks:   func() {},
			ExpectError:  true,
			ExpectedFeed: []string{"error: Offer code is required"},
		},
		{
			TestName: "Error. At least one rule #2",
			Call: func(o *Offers) error {
				return o.Add(context.Background(), models.OfferRequest{Code: "SALE"})
			},
			SetupMocks:   func() {},
			ExpectError:  true,
			ExpectedFeed: []string{"error: Add at least one discount rule"},
		},
		{
			TestName: "Success. Offer created #3",
			Call: func(o *Offers) error {
				return o.Add(context.Background(), models.OfferRequest{Code: "SALE", DiscountRules: rules})
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(route(t, map[string]string{
					"POST /api/offer/add":   `{"success":true}`,
					"GET /api/offer/active": `{"offers":[{"_id":"of1","code":"SALE","categories":["c1"]}]}`,
				})).Times(2)
			},
			ExpectedFeed: []string{"success: Offer created"},
		},
		{
			TestName: "Success. Server message on delete #4",
			Call: func(o *Offers) error {
				return o.Delete(context.Background(), "of1")
			},
			SetupMocks: func() {
				mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(route(t, map[string]string{
					"DELETE /api/offer/delete/of1": `{"success":true,"message":"Offer removed"}`,
					"GET /api/offer/active":        `{"offers":[]}`,
				})).Times(2)
			},
			ExpectedFeed: []string{"success: Offer removed"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			feed := notify.NewFeed(10)
			offers := NewOffers(api, feed)

			err := tc.Call(offers)
			if tc.ExpectError && err == nil {
				t.Errorf("Expected error, got none")
			} else if !tc.ExpectError && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedFeed, messages(feed)); diff != "" {
				t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTestimonials_SaveKeepsMedia(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	api := client.NewClient("http://shop", mockHTTP, nil).WithToken("tkn")

	feed := notify.NewFeed(10)
	testimonials := NewTestimonials(api, feed)
	testimonials.Store.Replace([]models.Testimonial{{ID: "t1", Media: []models.MediaRef{{URL: "/m/1.jpg"}}}})

	gomock.InOrder(
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			if req.Method != http.MethodPut {
				t.Errorf("Expected PUT, got %s", req.Method)
			}
			if err := req.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("Expected multipart body, got '%v'", err)
			}
			if got := req.FormValue("keepMedia"); got != `[{"url":"/m/1.jpg"}]` {
				t.Errorf("Unexpected keepMedia %s", got)
			}
			if got := req.FormValue("language"); got != "en" {
				t.Errorf("Expected default language en, got %s", got)
			}
			return jsonResponse(http.StatusOK, `{"success":true}`), nil
		}),
		mockHTTP.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, `{"data":[]}`), nil),
	)

	form := models.TestimonialForm{ID: "t1", CustomerName: "Asha", Content: "Lovely"}
	if err := testimonials.Save(context.Background(), form, nil, nil); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
	if diff := cmp.Diff([]string{"success: Testimonial updated"}, messages(feed)); diff != "" {
		t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestTestimonials_Reorder(t *testing.T) {
	initLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	api := client.NewClient("http://shop", mockHTTP, nil).WithToken("tkn")

	feed := notify.NewFeed(10)
	testimonials := NewTestimonials(api, feed)

	gomock.InOrder(
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			want := `{"items":[{"id":"t2","sortOrder":0},{"id":"t1","sortOrder":1}]}`
			if diff := cmp.Diff(want, string(body)); diff != "" {
				t.Errorf("Payload mismatch (-want +got):\n%s", diff)
			}
			return jsonResponse(http.StatusOK, `{"success":true}`), nil
		}),
		mockHTTP.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, `{"data":[{"_id":"t2"},{"_id":"t1"}]}`), nil),
	)

	if err := testimonials.Reorder(context.Background(), []string{"t2", "t1"}); err != nil {
		t.Errorf("Expected no error, got '%v'", err)
	}
	if got := testimonials.Store.Len(); got != 2 {
		t.Errorf("Expected 2 testimonials, got %d", got)
	}
}
