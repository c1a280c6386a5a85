package orderflow

import (
	"errors"

	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/inventory"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/salelog"
)

// ErrUnknownProduct is returned when an action names a product id that is
// not in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// ErrEmptyCart is returned when checkout is attempted with nothing in the
// cart; the presentation layer hides the action in that case.
var ErrEmptyCart = errors.New("cart is empty")

// ErrPromptPending is returned when a navigation or checkout action
// arrives while a prompt is waiting for an answer.
var ErrPromptPending = errors.New("a prompt is pending")

// ErrNoPrompt is returned when a prompt answer arrives and the matching
// prompt is not open.
var ErrNoPrompt = errors.New("no such prompt is pending")

// ErrNoActiveCategory is returned when finish-selection is signalled from
// the main screen, where no category is active.
var ErrNoActiveCategory = errors.New("no active category")

// Flow is the order-composition state machine. It drives category
// navigation and the prompt sequence, mutates the cart on operator
// actions, and on confirmation commits the cart to the sale log and the
// inventory ledger as one logical step.
//
// Flow is not safe for concurrent use; the presentation layer feeds it one
// fully-formed action at a time.
type Flow struct {
	view   View
	prompt Prompt

	cart   *cart.Cart
	ledger *inventory.Ledger
	sales  *salelog.Log
	logger *zap.Logger
}

// New creates a flow at its rest state: main screen, empty cart, no
// prompt.
func New(c *cart.Cart, ledger *inventory.Ledger, sales *salelog.Log, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		view:   ViewMain,
		cart:   c,
		ledger: ledger,
		sales:  sales,
		logger: logger,
	}
}

// View returns the current navigation state.
func (f *Flow) View() View { return f.view }

// Prompt returns the pending prompt, or nil when none is open.
func (f *Flow) Prompt() Prompt { return f.prompt }

// Cart exposes the active cart for rendering.
func (f *Flow) Cart() *cart.Cart { return f.cart }

// Navigate moves to a child view of the current screen. Moving along an
// edge that does not exist is a no-op, mirroring buttons that are simply
// not on the screen.
func (f *Flow) Navigate(v View) error {
	if f.prompt != nil {
		return ErrPromptPending
	}
	if parent[v] == f.view {
		f.view = v
	}
	return nil
}

// Back returns to the parent view. Main has no parent, so back from it
// does nothing.
func (f *Flow) Back() error {
	if f.prompt != nil {
		return ErrPromptPending
	}
	if p, ok := parent[f.view]; ok {
		f.view = p
	}
	return nil
}

// Add puts one unit of the product in the cart.
func (f *Flow) Add(productID string) error {
	p, ok := catalog.Lookup(productID)
	if !ok {
		return ErrUnknownProduct
	}
	f.cart.Add(p)
	return nil
}

// Remove takes one unit of the product out of the cart.
func (f *Flow) Remove(productID string) {
	f.cart.Remove(productID)
}

// FinishSelection is the operator signalling they are done picking from
// the current category. It raises the AddMore prompt for the top-level
// category the current view belongs to.
func (f *Flow) FinishSelection() error {
	if f.prompt != nil {
		return ErrPromptPending
	}
	cat, ok := topCategory(f.view)
	if !ok {
		return ErrNoActiveCategory
	}
	f.prompt = AddMore{Category: cat}
	return nil
}

// AnswerAddMore resolves the AddMore prompt. Yes returns to the pending
// category's hub, keeping the operator in the add-more cycle; no advances
// to the cross-sell question for that category.
func (f *Flow) AnswerAddMore(more bool) error {
	p, ok := f.prompt.(AddMore)
	if !ok {
		return ErrNoPrompt
	}
	if more {
		f.prompt = nil
		f.view = categoryHub(p.Category)
		return nil
	}
	f.prompt = CrossSell{Category: p.Category}
	return nil
}

// AnswerCrossSell resolves the CrossSell prompt. Yes navigates to the
// opposite category's hub; no returns to the main screen. Either way the
// pending category is cleared.
func (f *Flow) AnswerCrossSell(other bool) error {
	p, ok := f.prompt.(CrossSell)
	if !ok {
		return ErrNoPrompt
	}
	f.prompt = nil
	if other {
		f.view = categoryHub(p.Category.Opposite())
	} else {
		f.view = ViewMain
	}
	return nil
}

// Checkout raises the Confirm prompt for a non-empty cart. It is a
// floating action, available from any navigation state.
func (f *Flow) Checkout() error {
	if f.prompt != nil {
		return ErrPromptPending
	}
	if f.cart.Empty() {
		return ErrEmptyCart
	}
	f.prompt = Confirm{}
	return nil
}

// ConfirmSale commits the cart: the sale is appended to the log and its
// lines applied to the inventory ledger as one logical step. If either
// write fails the other is rolled back, the cart is kept, and the Confirm
// prompt stays open so the operator can retry or cancel. On success the
// FinalTotal prompt is raised; the cart is cleared when it is dismissed.
func (f *Flow) ConfirmSale() (salelog.Sale, error) {
	if _, ok := f.prompt.(Confirm); !ok {
		return salelog.Sale{}, ErrNoPrompt
	}

	lines := f.cart.Lines()
	total := f.cart.Total()

	before := f.ledger.Snapshot()
	if err := f.ledger.ApplySale(lines); err != nil {
		return salelog.Sale{}, err
	}

	sale, err := f.sales.Record(lines, total)
	if err != nil {
		if rerr := f.ledger.Restore(before); rerr != nil {
			f.logger.Error("inventory rollback failed after sale log error",
				zap.Error(rerr))
		}
		return salelog.Sale{}, err
	}

	f.prompt = FinalTotal{Total: sale.Total}
	f.logger.Info("order confirmed",
		zap.String("sale_id", sale.ID),
		zap.Float64("total", sale.Total),
	)
	return sale, nil
}

// CancelConfirm dismisses the Confirm prompt, leaving the cart and the
// navigation state exactly as they were.
func (f *Flow) CancelConfirm() error {
	if _, ok := f.prompt.(Confirm); !ok {
		return ErrNoPrompt
	}
	f.prompt = nil
	return nil
}

// DismissFinalTotal closes the FinalTotal prompt, clears the cart, and
// resets navigation to the main screen — the post-sale rest state.
func (f *Flow) DismissFinalTotal() error {
	if _, ok := f.prompt.(FinalTotal); !ok {
		return ErrNoPrompt
	}
	f.prompt = nil
	f.cart.Clear()
	f.view = ViewMain
	return nil
}

// Reset abandons the session: cart cleared, navigation back to main, any
// prompt dropped. The sale log and inventory are untouched.
func (f *Flow) Reset() {
	f.prompt = nil
	f.cart.Clear()
	f.view = ViewMain
}
