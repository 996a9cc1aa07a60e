package http

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/payingzee/sellerpanel/internal/model"
	"github.com/payingzee/sellerpanel/internal/panel"
	"github.com/payingzee/sellerpanel/internal/panel/mocks"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockSellerAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockSellerAPI(ctrl)

	orders := panel.NewOrders(api, zap.NewNop().Sugar(), panel.DefaultPollInterval)
	t.Cleanup(orders.Unmount)

	controller := New(orders, panel.NewShell(nil), zap.NewNop().Sugar())
	router := InitRoutes(chi.NewRouter(), controller)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, api
}

func decodeOrdersView(t *testing.T, body io.Reader) panel.OrdersView {
	t.Helper()

	var view panel.OrdersView
	require.NoError(t, json.NewDecoder(body).Decode(&view))

	return view
}

func TestPing(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetShell(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/panel/shell")
	require.NoError(t, err)
	defer resp.Body.Close()

	var view panel.ShellView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	assert.Equal(t, panel.TabOverview, view.ActiveTab)
	assert.Len(t, view.Tabs, 7)
}

func TestSelectTab(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/panel/shell/tab", "application/json",
		strings.NewReader(`{"tab":"orders"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view panel.ShellView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, panel.TabOrders, view.ActiveTab)
}

func TestSelectTab_Unknown(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/panel/shell/tab", "application/json",
		strings.NewReader(`{"tab":"payments"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRefreshOrders(t *testing.T) {
	server, api := newTestServer(t)

	api.EXPECT().
		ListOrders(gomock.Any()).
		Return([]model.Order{{ID: "ORD-1", Status: model.OrderStatusPending, Amount: 1500}}, nil)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	view := decodeOrdersView(t, resp.Body)
	require.Len(t, view.Orders, 1)
	assert.Equal(t, "ORD-1", view.Orders[0].ID)
	assert.Equal(t, "KES 1,500", view.Orders[0].AmountDisplay)
}

func TestGetOrderDetail_GatesActions(t *testing.T) {
	server, api := newTestServer(t)

	order := model.Order{ID: "ORD-1", Status: model.OrderStatusPending}
	api.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&order, nil)

	resp, err := http.Get(server.URL + "/api/v1/panel/orders/ORD-1/")
	require.NoError(t, err)
	defer resp.Body.Close()

	view := decodeOrdersView(t, resp.Body)
	require.NotNil(t, view.Detail)
	assert.ElementsMatch(t,
		[]panel.Action{panel.ActionAccept, panel.ActionReject, panel.ActionMessage},
		view.Detail.Actions)
}

func TestAcceptOrder(t *testing.T) {
	server, api := newTestServer(t)

	accepted := model.Order{ID: "ORD-1", Status: model.OrderStatusAccepted}
	api.EXPECT().AcceptOrder(gomock.Any(), "ORD-1").Return(nil)
	api.EXPECT().ListOrders(gomock.Any()).Return([]model.Order{accepted}, nil)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/accept", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	view := decodeOrdersView(t, resp.Body)
	assert.Equal(t, "Order accepted", view.Success)
}

func TestAcceptOrder_UpstreamRefusal(t *testing.T) {
	server, api := newTestServer(t)

	api.EXPECT().
		AcceptOrder(gomock.Any(), "ORD-1").
		Return(&model.UpstreamError{StatusCode: http.StatusConflict, Message: "order already accepted"})

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/accept", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "order already accepted")
}

func shippingForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if withImage {
		part, err := mw.CreateFormFile("proofImages", "proof.png")
		require.NoError(t, err)
		require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 12, 12))))
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSubmitShipping(t *testing.T) {
	server, api := newTestServer(t)

	shipped := model.Order{ID: "ORD-1", Status: model.OrderStatusShipped}
	api.EXPECT().
		SubmitShipping(gomock.Any(), "ORD-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, sub model.ShippingSubmission) error {
			assert.Equal(t, "Sendy", sub.CourierName)
			assert.Equal(t, "TRK-1", sub.TrackingNumber)
			require.Len(t, sub.ProofImages, 1)
			assert.True(t, strings.HasSuffix(sub.ProofImages[0].Filename, ".jpg"))
			assert.NotEmpty(t, sub.ProofImages[0].Data)
			return nil
		})
	api.EXPECT().ListOrders(gomock.Any()).Return([]model.Order{shipped}, nil)
	api.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&shipped, nil)

	body, contentType := shippingForm(t, map[string]string{
		"courierName":           "Sendy",
		"trackingNumber":        "TRK-1",
		"estimatedDeliveryDate": "2026-09-05",
	}, true)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/shipping", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	view := decodeOrdersView(t, resp.Body)
	assert.Equal(t, "Shipping details submitted", view.Success)
}

func TestSubmitShipping_MissingFields(t *testing.T) {
	server, _ := newTestServer(t)

	body, contentType := shippingForm(t, map[string]string{
		"courierName": "Sendy",
	}, false)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/shipping", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProof_WithoutShippingRecord(t *testing.T) {
	server, _ := newTestServer(t)

	body, contentType := shippingForm(t, nil, true)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/proof", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendMessage(t *testing.T) {
	server, api := newTestServer(t)

	api.EXPECT().SendMessage(gomock.Any(), "ORD-1", "Asante").Return(nil)
	api.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&model.Order{ID: "ORD-1"}, nil)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/messages", "application/json",
		strings.NewReader(`{"message":"Asante"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	view := decodeOrdersView(t, resp.Body)
	assert.Equal(t, "Message sent", view.Success)
}

func TestSendMessage_EmptyBlocked(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/panel/orders/ORD-1/messages", "application/json",
		strings.NewReader(`{"message":"   "}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetControls(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/v1/panel/orders/controls",
		strings.NewReader(`{"filter":"pending","search":"grace","sort":"amount-low"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	view := decodeOrdersView(t, resp.Body)
	assert.Equal(t, panel.StatusFilter("pending"), view.Filter)
	assert.Equal(t, "grace", view.Search)
	assert.Equal(t, panel.SortAmountLow, view.Sort)
}

func TestSetControls_InvalidFilter(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/v1/panel/orders/controls",
		strings.NewReader(`{"filter":"bogus","sort":"newest"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCloseOrderDetail(t *testing.T) {
	server, api := newTestServer(t)

	order := model.Order{ID: "ORD-1", Status: model.OrderStatusPending}
	api.EXPECT().GetOrder(gomock.Any(), "ORD-1").Return(&order, nil)

	resp, err := http.Get(server.URL + "/api/v1/panel/orders/ORD-1/")
	require.NoError(t, err)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/panel/orders/detail", nil)
	require.NoError(t, err)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/panel/orders")
	require.NoError(t, err)
	defer resp.Body.Close()

	view := decodeOrdersView(t, resp.Body)
	assert.Nil(t, view.Detail)
}
