package panel

import (
	"net/http"
	"sync"

	"github.com/payingzee/sellerpanel/internal/model"
	"github.com/payingzee/sellerpanel/pgk/session"
)

type Tab string

const (
	TabOverview Tab = "overview"
	TabOrders   Tab = "orders"
	TabDisputes Tab = "disputes"
	TabWallet   Tab = "wallet"
	TabSocial   Tab = "social"
	TabSettings Tab = "settings"
	TabSupport  Tab = "support"
)

var tabs = []Tab{TabOverview, TabOrders, TabDisputes, TabWallet, TabSocial, TabSettings, TabSupport}

const storeLinkBase = "https://paying-zee.com/store/"

// SessionReader exposes what the shell shows about the signed-in seller.
type SessionReader interface {
	Info() *session.Info
}

// Shell holds the dashboard chrome: which of the seven views is active
// and the two modal flags that do not belong to the orders view. The
// wallet, social, settings and support views are static and make no
// upstream calls; disputes are handled by an external collaborator.
type Shell struct {
	sessions SessionReader

	mu              sync.Mutex
	active          Tab
	withdrawalModal bool
	shareModal      bool
}

func NewShell(sessions SessionReader) *Shell {
	return &Shell{
		sessions: sessions,
		active:   TabOverview,
	}
}

func (s *Shell) SelectTab(tab Tab) *model.APIError {
	valid := false
	for _, t := range tabs {
		if t == tab {
			valid = true
			break
		}
	}
	if !valid {
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrUnknownTab.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = tab
	return nil
}

func (s *Shell) SetModal(modal string, open bool) *model.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch modal {
	case "withdrawal":
		s.withdrawalModal = open
	case "share":
		s.shareModal = open
	default:
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrUnknownModal.Error()}
	}

	return nil
}

// ShellView is a point-in-time render of the dashboard chrome.
type ShellView struct {
	ActiveTab       Tab    `json:"activeTab"`
	Tabs            []Tab  `json:"tabs"`
	WithdrawalModal bool   `json:"withdrawalModal"`
	ShareModal      bool   `json:"shareModal"`
	Seller          string `json:"seller,omitempty"`
	StoreLink       string `json:"storeLink,omitempty"`
}

func (s *Shell) Snapshot() ShellView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := ShellView{
		ActiveTab:       s.active,
		Tabs:            tabs,
		WithdrawalModal: s.withdrawalModal,
		ShareModal:      s.shareModal,
	}

	if s.sessions != nil {
		if info := s.sessions.Info(); info != nil {
			view.Seller = info.Seller
			view.StoreLink = storeLinkBase + info.Seller
		}
	}

	return view
}
