package http

import (
	"context"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/payingzee/sellerpanel/internal/model"
	"github.com/payingzee/sellerpanel/internal/panel"
	"github.com/payingzee/sellerpanel/internal/proof"
)

const maxUploadSize = 32 << 20

// OrdersService is the orders view as the front-end drives it.
type OrdersService interface {
	Refresh(ctx context.Context)
	OpenDetail(ctx context.Context, id string) *model.APIError
	CloseDetail()
	Accept(ctx context.Context, id string) *model.APIError
	Reject(ctx context.Context, id string) *model.APIError
	SubmitShipping(ctx context.Context, id string, draft panel.ShippingDraft, images []model.ProofImage) *model.APIError
	UpdateProof(ctx context.Context, id string, images []model.ProofImage) *model.APIError
	SendMessage(ctx context.Context, id, text string) *model.APIError
	SetControls(filter panel.StatusFilter, query string, sortBy panel.SortKey) *model.APIError
	UpdateDrafts(shipping *panel.ShippingDraft, message *string)
	SetModal(modal string, open bool) *model.APIError
	Snapshot() panel.OrdersView
}

// ShellService is the dashboard chrome.
type ShellService interface {
	SelectTab(tab panel.Tab) *model.APIError
	SetModal(modal string, open bool) *model.APIError
	Snapshot() panel.ShellView
}

type Controller struct {
	orders OrdersService
	shell  ShellService
	lg     *zap.SugaredLogger
}

func New(orders OrdersService, shell ShellService, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		orders: orders,
		shell:  shell,
		lg:     lg,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetShell(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.shell.Snapshot(), http.StatusOK)
}

type selectTabDTO struct {
	Tab panel.Tab `json:"tab"`
}

func (c *Controller) SelectTab(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[selectTabDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.shell.SelectTab(body.Tab); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.shell.Snapshot(), http.StatusOK)
}

type modalDTO struct {
	Modal string `json:"modal"`
	Open  bool   `json:"open"`
}

func (c *Controller) SetShellModal(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[modalDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.shell.SetModal(body.Modal, body.Open); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.shell.Snapshot(), http.StatusOK)
}

func (c *Controller) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) RefreshOrders(w http.ResponseWriter, r *http.Request) {
	c.orders.Refresh(r.Context())
	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

type controlsDTO struct {
	Filter panel.StatusFilter `json:"filter"`
	Search string             `json:"search"`
	Sort   panel.SortKey      `json:"sort"`
}

func (c *Controller) SetControls(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[controlsDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.orders.SetControls(body.Filter, body.Search, body.Sort); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

type draftsDTO struct {
	Shipping *panel.ShippingDraft `json:"shipping,omitempty"`
	Message  *string              `json:"message,omitempty"`
}

func (c *Controller) UpdateDrafts(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[draftsDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c.orders.UpdateDrafts(body.Shipping, body.Message)
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) SetOrdersModal(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[modalDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.orders.SetModal(body.Modal, body.Open); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.orders.OpenDetail(r.Context(), orderID(r)); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) CloseOrderDetail(w http.ResponseWriter, r *http.Request) {
	c.orders.CloseDetail()
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) AcceptOrder(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.orders.Accept(r.Context(), orderID(r)); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) RejectOrder(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.orders.Reject(r.Context(), orderID(r)); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		c.lg.Errorf("failed to parse multipart form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	draft := panel.ShippingDraft{
		CourierName:           r.FormValue("courierName"),
		TrackingNumber:        r.FormValue("trackingNumber"),
		EstimatedDeliveryDate: r.FormValue("estimatedDeliveryDate"),
		Notes:                 r.FormValue("notes"),
	}

	images, err := c.prepareProofImages(r.MultipartForm.File["proofImages"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if apiErr := c.orders.SubmitShipping(r.Context(), orderID(r), draft, images); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) UpdateProof(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		c.lg.Errorf("failed to parse multipart form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	images, err := c.prepareProofImages(r.MultipartForm.File["proofImages"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if apiErr := c.orders.UpdateProof(r.Context(), orderID(r), images); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

type sendMessageDTO struct {
	Message string `json:"message"`
}

func (c *Controller) SendMessage(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[sendMessageDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.orders.SendMessage(r.Context(), orderID(r), body.Message); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, c.orders.Snapshot(), http.StatusOK)
}

func (c *Controller) prepareProofImages(headers []*multipart.FileHeader) ([]model.ProofImage, error) {
	images := make([]model.ProofImage, 0, len(headers))

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}

		img, err := proof.Prepare(f, header.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}

		images = append(images, img)
	}

	return images, nil
}
