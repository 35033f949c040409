// Package forms ties drafts to the backend: the product create/update form
// with its submission lifecycle, plus thin wrappers for the simple CRUD
// screens (categories, blogs, sliders).
package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/sonikrishna9/Tenda-admin/client"
	"github.com/sonikrishna9/Tenda-admin/draft"
	"github.com/sonikrishna9/Tenda-admin/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	// ErrNoImage means the create flow was submitted without any staged image.
	ErrNoImage = errors.New("at least one product image is required")
	// ErrSubmitFailed wraps a backend rejection of an otherwise valid submit.
	ErrSubmitFailed = errors.New("submit failed")
)

// ProductForm drives one create or update flow: Editing until Submit, locked
// while the request is in flight, discarded on success, editable again with
// everything intact on failure.
type ProductForm struct {
	api       *client.Client
	draft     *draft.Draft
	productID uint
	onSuccess func()
}

// NewProductForm starts an empty create flow.
func NewProductForm(api *client.Client, opts ...draft.Option) *ProductForm {
	return &ProductForm{api: api, draft: draft.New(opts...)}
}

// LoadProductForm fetches an existing product and hydrates an update flow.
func LoadProductForm(ctx context.Context, api *client.Client, id uint, opts ...draft.Option) (*ProductForm, error) {
	res, err := api.Do(ctx, "GET", fmt.Sprintf("api/product/details/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Product models.Product `json:"product"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", id, err)
	}
	return &ProductForm{
		api:       api,
		draft:     draft.FromRecord(&payload.Product, opts...),
		productID: id,
	}, nil
}

// Draft exposes the form's editable state.
func (f *ProductForm) Draft() *draft.Draft {
	return f.draft
}

// OnSuccess registers the navigation callback fired after a successful
// submit.
func (f *ProductForm) OnSuccess(fn func()) {
	f.onSuccess = fn
}

type productRules struct {
	Title          string `validate:"required"`
	Description    string `validate:"required"`
	ParentCategory string `validate:"required"`
}

func (f *ProductForm) validateCreate() error {
	sc := f.draft.Scalars()
	rules := productRules{
		Title:          sc.Title,
		Description:    sc.Description,
		ParentCategory: sc.ParentCategory,
	}
	if err := validate.Struct(rules); err != nil {
		return err
	}
	if len(f.draft.Pending(draft.Images)) == 0 && len(f.draft.Displayed(draft.Images)) == 0 {
		return ErrNoImage
	}
	return nil
}

// Submit issues exactly one request. Validation failures never reach the
// network; any transport or backend failure leaves the draft untouched for
// retry.
func (f *ProductForm) Submit(ctx context.Context) error {
	if f.productID == 0 {
		if err := f.validateCreate(); err != nil {
			return err
		}
	}
	sub, err := f.draft.Assemble()
	if err != nil {
		return err
	}
	if err := f.draft.BeginSubmit(); err != nil {
		return err
	}

	method, path := "POST", "api/product/createproduct"
	if f.productID != 0 {
		method, path = "PUT", fmt.Sprintf("api/product/update/%d", f.productID)
	}

	res, err := f.api.Do(ctx, method, path, sub)
	if err != nil {
		f.draft.EndSubmit(false)
		return err
	}
	if !res.Success {
		f.draft.EndSubmit(false)
		msg := res.Message
		if msg == "" {
			msg = "backend rejected the request"
		}
		return fmt.Errorf("%w: %s", ErrSubmitFailed, msg)
	}

	f.draft.EndSubmit(true)
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}

// ProductList is the read side of the products screen.
type ProductList struct {
	api *client.Client
}

func NewProductList(api *client.Client) *ProductList {
	return &ProductList{api: api}
}

func (l *ProductList) All(ctx context.Context) ([]models.Product, error) {
	res, err := l.api.Do(ctx, "GET", "api/product/allproducts", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Products []models.Product `json:"products"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return payload.Products, nil
}

func (l *ProductList) Delete(ctx context.Context, id uint) error {
	_, err := l.api.Do(ctx, "DELETE", fmt.Sprintf("api/product/delete/%d", id), nil)
	return err
}
