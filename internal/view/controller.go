// Package view drives the ledger detail table: filtering, pagination,
// live search/jump and the create/update/delete orchestration against the
// backend.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kundendash-dev/kundendash/internal/auditlog"
	"github.com/kundendash-dev/kundendash/internal/id"
	"github.com/kundendash-dev/kundendash/internal/ledger"
	"github.com/kundendash-dev/kundendash/internal/model"
)

// Backend is the slice of the REST surface the controller drives.
type Backend interface {
	Transactions(ctx context.Context, caseID string) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, caseID string, tx model.Transaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, caseID, transactionID string, tx model.Transaction) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

var (
	// ErrRowConfirmed rejects edits and deletes on rows locked by a balance
	// confirmation.
	ErrRowConfirmed = errors.New("buchung ist durch Saldenbestätigung gesperrt")
	// ErrRowNotFound means the transaction id is not in the cached row set.
	ErrRowNotFound = errors.New("buchung nicht gefunden")
)

// DefaultPageSize matches the table's initial rows-per-page choice.
const DefaultPageSize = 10

// PageSizes are the offered rows-per-page options.
var PageSizes = []int{10, 20, 50}

// Options configures a Controller.
type Options struct {
	// InfoMode renders read-only: no mutations and no jump-to-end on load.
	InfoMode bool
	// PageSize defaults to DefaultPageSize when zero.
	PageSize int
	// User stamps geaendertVon on mutations and the audit trail.
	User string
	// Audit, when non-nil, records every successful mutation.
	Audit *auditlog.Writer
}

// Controller holds the view state of one customer/case ledger. It is the
// client's cached view of the backend row set: rebuilt on Load, patched and
// fully resequenced on every mutation.
type Controller struct {
	backend Backend
	caseID  string

	infoMode bool
	pageSize int
	user     string
	audit    *auditlog.Writer

	// gen guards against a slow Load landing after a newer one started.
	gen int

	rows []model.Transaction
	term string
	page int
}

// NewController creates a Controller for one customer2CaseAndTypeId.
func NewController(backend Backend, caseID string, opts Options) *Controller {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		backend:  backend,
		caseID:   caseID,
		infoMode: opts.InfoMode,
		pageSize: pageSize,
		user:     opts.User,
		audit:    opts.Audit,
	}
}

// Load fetches and reconciles the full row set. Unless in info mode, the
// view jumps to the last page so the most recent booking is visible. A load
// superseded by a newer one discards its result.
func (c *Controller) Load(ctx context.Context) error {
	gen := c.gen + 1
	c.gen = gen

	rows, err := c.backend.Transactions(ctx, c.caseID)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}
	if gen != c.gen {
		// A newer Load started while this one was in flight.
		return nil
	}

	c.rows = ledger.Reconcile(rows)
	if !c.infoMode && len(c.rows) > 0 {
		c.page = LastPage(len(c.Filtered()), c.pageSize)
	}
	return nil
}

// CaseID returns the customer/case pairing this controller is bound to.
func (c *Controller) CaseID() string { return c.caseID }

// Rows returns the full reconciled row set in creation order.
func (c *Controller) Rows() []model.Transaction { return c.rows }

// Filtered returns the rows matching the current filter term.
func (c *Controller) Filtered() []model.Transaction {
	return Filter(c.rows, c.term)
}

// VisibleRows returns the current page of the filtered rows.
func (c *Controller) VisibleRows() []model.Transaction {
	return Paginate(c.Filtered(), c.page, c.pageSize)
}

// Page returns the current zero-based page index.
func (c *Controller) Page() int { return c.page }

// PageCount returns the number of pages of the filtered set, at least 1.
func (c *Controller) PageCount() int {
	return LastPage(len(c.Filtered()), c.pageSize) + 1
}

// PageSize returns the current rows-per-page setting.
func (c *Controller) PageSize() int { return c.pageSize }

// Term returns the current filter term.
func (c *Controller) Term() string { return c.term }

// SetPage moves to a page, clamped into the valid range.
func (c *Controller) SetPage(page int) {
	c.page = ClampPage(page, len(c.Filtered()), c.pageSize)
}

// SetPageSize changes rows per page and resets to the first page.
func (c *Controller) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	c.pageSize = size
	c.page = 0
}

// SetFilter changes the filter term and re-clamps the page.
func (c *Controller) SetFilter(term string) {
	c.term = term
	c.page = ClampPage(c.page, len(c.Filtered()), c.pageSize)
}

// JumpResult locates the first row matching a live search term.
type JumpResult struct {
	Row   model.Transaction
	Index int
	Page  int
}

// JumpTo finds the first row whose searchable fields contain term, in index
// order over the full sequence, and moves the view to its page. A blank term
// is a no-op.
func (c *Controller) JumpTo(term string) (JumpResult, bool) {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return JumpResult{}, false
	}

	for i, row := range c.rows {
		for _, f := range SearchFields {
			if strings.Contains(strings.ToLower(row.Value(f)), lower) {
				c.page = i / c.pageSize
				return JumpResult{Row: row, Index: i, Page: c.page}, true
			}
		}
	}
	return JumpResult{}, false
}

// NewDraft returns a fresh row seeded with the last row's saldo and a draft
// placeholder id. The backend replaces both on create.
func (c *Controller) NewDraft() model.Transaction {
	return model.Transaction{
		TransactionID: id.NewDraftID(),
		Saldo:         c.lastSaldo(),
	}
}

// Create submits a new booking. The saldo sent to the backend is the last
// row's saldo plus this row's delivery minus its pickup; the backend response
// (with the assigned id and authoritative saldo) replaces the draft. The full
// sequence is resequenced and the view jumps to the last page.
func (c *Controller) Create(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	if c.infoMode {
		return model.Transaction{}, errors.New("anlegen im Info-Modus nicht möglich")
	}

	draft.Saldo = c.lastSaldo().Add(draft.LieferungZS).Sub(draft.AbholungZS)
	c.stamp(&draft)

	saved, err := c.backend.CreateTransaction(ctx, c.caseID, draft)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("creating transaction: %w", err)
	}

	rows := append(append([]model.Transaction(nil), c.rows...), saved)
	c.rows = ledger.Reconcile(rows)
	c.page = LastPage(len(c.Filtered()), c.pageSize)

	c.record(auditlog.ActionCreate, saved.TransactionID, saved.Buchungsinfo)
	return saved, nil
}

// Update replaces the editable fields of an unconfirmed row. The backend
// response replaces the cached row and the whole sequence is resequenced so
// downstream running balances stay correct.
func (c *Controller) Update(ctx context.Context, transactionID string, tx model.Transaction) (model.Transaction, error) {
	if c.infoMode {
		return model.Transaction{}, errors.New("bearbeiten im Info-Modus nicht möglich")
	}

	idx := c.indexOf(transactionID)
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("updating %s: %w", transactionID, ErrRowNotFound)
	}
	if c.rows[idx].Confirmed() {
		return model.Transaction{}, fmt.Errorf("updating %s: %w", transactionID, ErrRowConfirmed)
	}

	c.stamp(&tx)

	saved, err := c.backend.UpdateTransaction(ctx, c.caseID, transactionID, tx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("updating transaction: %w", err)
	}

	rows := append([]model.Transaction(nil), c.rows...)
	rows[idx] = saved
	c.rows = ledger.Reconcile(rows)

	c.record(auditlog.ActionUpdate, saved.TransactionID, saved.Buchungsinfo)
	return saved, nil
}

// Delete removes an unconfirmed row. The caller is responsible for the
// destructive-action confirmation; the controller enforces the lock, removes
// the row from the cache, resequences, and re-clamps the page.
func (c *Controller) Delete(ctx context.Context, transactionID string) error {
	if c.infoMode {
		return errors.New("löschen im Info-Modus nicht möglich")
	}

	idx := c.indexOf(transactionID)
	if idx < 0 {
		return fmt.Errorf("deleting %s: %w", transactionID, ErrRowNotFound)
	}
	if c.rows[idx].Confirmed() {
		return fmt.Errorf("deleting %s: %w", transactionID, ErrRowConfirmed)
	}

	if err := c.backend.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	rows := append([]model.Transaction(nil), c.rows...)
	rows = append(rows[:idx], rows[idx+1:]...)
	c.rows = ledger.Reconcile(rows)
	c.page = min(c.page, LastPage(len(c.Filtered()), c.pageSize))

	c.record(auditlog.ActionDelete, transactionID, "")
	return nil
}

// Get returns a cached row by transaction id.
func (c *Controller) Get(transactionID string) (model.Transaction, bool) {
	idx := c.indexOf(transactionID)
	if idx < 0 {
		return model.Transaction{}, false
	}
	return c.rows[idx], true
}

func (c *Controller) indexOf(transactionID string) int {
	for i, r := range c.rows {
		if r.TransactionID == transactionID {
			return i
		}
	}
	return -1
}

func (c *Controller) lastSaldo() decimal.Decimal {
	if len(c.rows) == 0 {
		return decimal.Zero
	}
	return c.rows[len(c.rows)-1].Saldo
}

func (c *Controller) stamp(tx *model.Transaction) {
	tx.GeaendertVon = c.user
	tx.GeaendertAm = time.Now().Format(time.RFC3339)
}

func (c *Controller) record(action, transactionID, details string) {
	if c.audit == nil {
		return
	}
	// Audit failures must not break the mutation that already succeeded.
	_ = c.audit.Append(auditlog.Entry{
		Timestamp:     time.Now(),
		User:          c.user,
		Action:        action,
		TransactionID: transactionID,
		Details:       details,
	})
}
