package panel

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/payingzee/sellerpanel/internal/model"
)

const (
	DefaultPollInterval = 30 * time.Second

	successNoticeTTL = 3 * time.Second
	errorNoticeTTL   = 5 * time.Second
)

// SellerAPI is everything the orders view needs from the backend.
type SellerAPI interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetPerformance(ctx context.Context) (*model.PerformanceMetrics, error)
	AcceptOrder(ctx context.Context, id string) error
	RejectOrder(ctx context.Context, id string) error
	SubmitShipping(ctx context.Context, id string, sub model.ShippingSubmission) error
	SendMessage(ctx context.Context, id, text string) error
}

// ShippingDraft is the shipping form buffer. Courier, tracking number and
// delivery date are mandatory before any request is dispatched.
type ShippingDraft struct {
	CourierName           string `json:"courierName" validate:"required"`
	TrackingNumber        string `json:"trackingNumber" validate:"required"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate" validate:"required"`
	Notes                 string `json:"notes"`
}

// Orders owns all mutable state of the orders view. The browser's
// single-threaded event loop becomes a mutex here; upstream calls run
// outside the lock so the view stays responsive while requests are in
// flight.
//
// The list and the selected detail are independent snapshots that may
// transiently disagree with each other and with the backend; every
// mutation re-fetches authoritative state instead of patching locally.
type Orders struct {
	api SellerAPI
	lg  *zap.SugaredLogger

	mu       sync.Mutex
	orders   []model.Order
	selected *model.Order
	metrics  *model.PerformanceMetrics
	loading  bool

	filter StatusFilter
	search string
	sortBy SortKey

	modals        Modals
	shippingDraft ShippingDraft
	messageDraft  string

	success      string
	err          string
	successTimer *time.Timer
	errTimer     *time.Timer
	successTTL   time.Duration
	errTTL       time.Duration

	// Fetch generations. A response older than the last applied one is
	// discarded so a slow poll cannot overwrite a fresher manual fetch.
	listSeq       uint64
	listApplied   uint64
	detailSeq     uint64
	detailApplied uint64

	pollInterval time.Duration
	stopPoll     chan struct{}

	validate *validator.Validate
	now      func() time.Time
}

func NewOrders(api SellerAPI, lg *zap.SugaredLogger, pollInterval time.Duration) *Orders {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Orders{
		api:          api,
		lg:           lg,
		orders:       []model.Order{},
		filter:       FilterAll,
		sortBy:       SortNewest,
		successTTL:   successNoticeTTL,
		errTTL:       errorNoticeTTL,
		pollInterval: pollInterval,
		validate:     validator.New(),
		now:          time.Now,
	}
}

// Mount fetches the initial list, fetches performance metrics once and
// starts the periodic list poll. Metrics are deliberately not re-fetched
// by the poll.
func (p *Orders) Mount(ctx context.Context) {
	p.mu.Lock()
	if p.stopPoll != nil {
		p.mu.Unlock()
		return
	}
	p.stopPoll = make(chan struct{})
	stop := p.stopPoll
	p.mu.Unlock()

	p.Refresh(ctx)
	p.loadMetrics(ctx)

	ticker := time.NewTicker(p.pollInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				p.Refresh(ctx)
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()
}

// Unmount cancels the poll and the notification timers so nothing fires
// against a torn-down view.
func (p *Orders) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopPoll != nil {
		close(p.stopPoll)
		p.stopPoll = nil
	}

	if p.successTimer != nil {
		p.successTimer.Stop()
		p.successTimer = nil
	}
	if p.errTimer != nil {
		p.errTimer.Stop()
		p.errTimer = nil
	}

	p.success = ""
	p.err = ""
}

// Refresh re-fetches the order list. A failed fetch empties the list so
// the view renders a defined empty state instead of stale data.
func (p *Orders) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.listSeq++
	seq := p.listSeq
	p.loading = true
	p.mu.Unlock()

	orders, err := p.api.ListOrders(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq < p.listApplied {
		return // a newer response already landed
	}
	p.listApplied = seq
	p.loading = false

	if err != nil {
		p.lg.Errorf("list orders: %v", err)
		p.orders = []model.Order{}
		p.setError(model.UserMessage(err, model.ErrLoadOrdersMessage))
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	p.orders = orders
}

func (p *Orders) loadMetrics(ctx context.Context) {
	metrics, err := p.api.GetPerformance(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.lg.Errorf("load performance metrics: %v", err)
		p.setError(model.UserMessage(err, model.ErrLoadMetricsMessage))
		return
	}

	p.metrics = metrics
}

// OpenDetail fetches the order and opens the detail view. The list's
// loading flag is not touched by detail fetches.
func (p *Orders) OpenDetail(ctx context.Context, id string) *model.APIError {
	if apiErr := p.fetchDetail(ctx, id); apiErr != nil {
		return apiErr
	}

	p.mu.Lock()
	p.modals.Detail = true
	p.mu.Unlock()

	return nil
}

func (p *Orders) fetchDetail(ctx context.Context, id string) *model.APIError {
	p.mu.Lock()
	p.detailSeq++
	seq := p.detailSeq
	p.mu.Unlock()

	order, err := p.api.GetOrder(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq < p.detailApplied {
		return nil
	}
	p.detailApplied = seq

	if err != nil {
		p.lg.Errorf("get order %s: %v", id, err)
		msg := model.UserMessage(err, model.ErrLoadOrderMessage)
		p.setError(msg)
		return &model.APIError{Code: http.StatusBadGateway, Message: msg}
	}

	p.selected = order
	return nil
}

func (p *Orders) CloseDetail() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selected = nil
	p.modals = Modals{}
}

// Accept requests the pending→accepted transition, then re-reads the
// authoritative list and detail. Never optimistic: the backend may refuse.
func (p *Orders) Accept(ctx context.Context, id string) *model.APIError {
	if err := p.api.AcceptOrder(ctx, id); err != nil {
		return p.actionFailed("accept order "+id, err, model.ErrAcceptOrderMessage)
	}

	p.mu.Lock()
	p.setSuccess("Order accepted")
	refetchDetail := p.selected != nil && p.selected.ID == id
	p.mu.Unlock()

	p.Refresh(ctx)
	if refetchDetail {
		p.fetchDetail(ctx, id)
	}

	return nil
}

// Reject requests the pending→cancelled transition and closes the detail
// view.
func (p *Orders) Reject(ctx context.Context, id string) *model.APIError {
	if err := p.api.RejectOrder(ctx, id); err != nil {
		return p.actionFailed("reject order "+id, err, model.ErrRejectOrderMessage)
	}

	p.mu.Lock()
	p.setSuccess("Order rejected")
	p.mu.Unlock()

	p.Refresh(ctx)
	p.CloseDetail()

	return nil
}

// SubmitShipping validates the draft locally first; nothing is dispatched
// when a mandatory field is missing.
func (p *Orders) SubmitShipping(ctx context.Context, id string, draft ShippingDraft, images []model.ProofImage) *model.APIError {
	p.mu.Lock()
	p.shippingDraft = draft
	p.mu.Unlock()

	if err := p.validate.Struct(draft); err != nil {
		p.mu.Lock()
		p.setError(model.ErrShippingFieldsMessage)
		p.mu.Unlock()
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrShippingFieldsMessage}
	}

	sub := model.ShippingSubmission{
		CourierName:           draft.CourierName,
		TrackingNumber:        draft.TrackingNumber,
		EstimatedDeliveryDate: draft.EstimatedDeliveryDate,
		Notes:                 draft.Notes,
		ProofImages:           images,
	}

	if err := p.api.SubmitShipping(ctx, id, sub); err != nil {
		return p.actionFailed("submit shipping for "+id, err, model.ErrSubmitShippingMessage)
	}

	p.mu.Lock()
	p.setSuccess("Shipping details submitted")
	p.shippingDraft = ShippingDraft{}
	p.modals.Shipping = false
	p.mu.Unlock()

	p.Refresh(ctx)
	p.fetchDetail(ctx, id)

	return nil
}

// UpdateProof re-uploads additional proof images for a shipped order by
// re-posting the existing shipping record with the new images attached.
// The status does not change.
func (p *Orders) UpdateProof(ctx context.Context, id string, images []model.ProofImage) *model.APIError {
	p.mu.Lock()
	var shipping *model.ShippingInfo
	if p.selected != nil && p.selected.ID == id {
		shipping = p.selected.Shipping
	}
	p.mu.Unlock()

	if shipping == nil {
		p.mu.Lock()
		p.setError(model.ErrNoShippingRecord.Error())
		p.mu.Unlock()
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNoShippingRecord.Error()}
	}

	sub := model.ShippingSubmission{
		CourierName:           shipping.CourierName,
		TrackingNumber:        shipping.TrackingNumber,
		EstimatedDeliveryDate: shipping.EstimatedDeliveryDate,
		Notes:                 shipping.Notes,
		ProofImages:           images,
	}

	if err := p.api.SubmitShipping(ctx, id, sub); err != nil {
		return p.actionFailed("update proof for "+id, err, model.ErrUpdateProofMessage)
	}

	p.mu.Lock()
	p.setSuccess("Proof of shipment updated")
	p.modals.Proof = false
	p.mu.Unlock()

	p.fetchDetail(ctx, id)

	return nil
}

// SendMessage appends to the buyer-message thread. Whitespace-only text
// is refused locally.
func (p *Orders) SendMessage(ctx context.Context, id, text string) *model.APIError {
	if strings.TrimSpace(text) == "" {
		p.mu.Lock()
		p.setError(model.ErrEmptyMessageMessage)
		p.mu.Unlock()
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrEmptyMessageMessage}
	}

	if err := p.api.SendMessage(ctx, id, text); err != nil {
		return p.actionFailed("send message for "+id, err, model.ErrSendMessageMessage)
	}

	p.mu.Lock()
	p.setSuccess("Message sent")
	p.messageDraft = ""
	p.modals.Message = false
	p.mu.Unlock()

	p.fetchDetail(ctx, id)

	return nil
}

// SetControls updates the filter/search/sort triple driving the visible
// list. Purely local, no network.
func (p *Orders) SetControls(filter StatusFilter, query string, sortBy SortKey) *model.APIError {
	if !filter.valid() {
		return &model.APIError{Code: http.StatusBadRequest, Message: "unknown status filter"}
	}
	if !sortBy.valid() {
		return &model.APIError{Code: http.StatusBadRequest, Message: "unknown sort key"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.filter = filter
	p.search = query
	p.sortBy = sortBy

	return nil
}

// UpdateDrafts stores form buffers so a re-render does not lose typed input.
func (p *Orders) UpdateDrafts(shipping *ShippingDraft, message *string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if shipping != nil {
		p.shippingDraft = *shipping
	}
	if message != nil {
		p.messageDraft = *message
	}
}

// SetModal opens or closes one of the orders view modals. The flags are
// advisory; the UI opens one at a time by convention.
func (p *Orders) SetModal(modal string, open bool) *model.APIError {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch modal {
	case "detail":
		p.modals.Detail = open
		if !open {
			p.selected = nil
		}
	case "shipping":
		p.modals.Shipping = open
	case "proof":
		p.modals.Proof = open
	case "message":
		p.modals.Message = open
	default:
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrUnknownModal.Error()}
	}

	return nil
}

func (p *Orders) actionFailed(op string, err error, fallback string) *model.APIError {
	p.lg.Errorf("%s: %v", op, err)

	msg := model.UserMessage(err, fallback)

	p.mu.Lock()
	p.setError(msg)
	p.mu.Unlock()

	return &model.APIError{Code: http.StatusBadGateway, Message: msg}
}

// setSuccess replaces the single success slot and re-arms its dismiss
// timer. Callers hold p.mu.
func (p *Orders) setSuccess(msg string) {
	p.success = msg

	if p.successTimer != nil {
		p.successTimer.Stop()
	}
	p.successTimer = time.AfterFunc(p.successTTL, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.success = ""
	})
}

// setError replaces the single error slot and re-arms its dismiss timer.
// Callers hold p.mu.
func (p *Orders) setError(msg string) {
	p.err = msg

	if p.errTimer != nil {
		p.errTimer.Stop()
	}
	p.errTimer = time.AfterFunc(p.errTTL, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.err = ""
	})
}
