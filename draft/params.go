package draft

import (
	"fmt"

	"github.com/sonikrishna9/Tenda-admin/models"
)

// AddGroup appends an empty parameter group with one blank row, expanded.
func (d *Draft) AddGroup() error {
	if err := d.mutable(); err != nil {
		return err
	}
	d.params = append(d.params, ParameterGroup{
		Items: []models.ParameterItem{{}},
		Open:  true,
	})
	return nil
}

// ToggleGroup flips the expanded flag. UI-only, never serialized.
func (d *Draft) ToggleGroup(group int) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	d.params[group].Open = !d.params[group].Open
	return nil
}

func (d *Draft) SetGroupTitle(group int, title string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	d.params[group].Title = title
	return nil
}

func (d *Draft) DeleteGroup(group int) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	d.params = append(d.params[:group], d.params[group+1:]...)
	return nil
}

func (d *Draft) AddItem(group int) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	d.params[group].Items = append(d.params[group].Items, models.ParameterItem{})
	return nil
}

func (d *Draft) DeleteItem(group, item int) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	items := d.params[group].Items
	if item < 0 || item >= len(items) {
		return fmt.Errorf("%w: item %d", ErrIndexRange, item)
	}
	d.params[group].Items = append(items[:item], items[item+1:]...)
	return nil
}

// UpdateItem sets one field of a row; field is "title" or "subtitle".
func (d *Draft) UpdateItem(group, item int, field, value string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if group < 0 || group >= len(d.params) {
		return fmt.Errorf("%w: group %d", ErrIndexRange, group)
	}
	if item < 0 || item >= len(d.params[group].Items) {
		return fmt.Errorf("%w: item %d", ErrIndexRange, item)
	}
	switch field {
	case "title":
		d.params[group].Items[item].Title = value
	case "subtitle":
		d.params[group].Items[item].Subtitle = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Parameters returns a deep copy of the parameter tree.
func (d *Draft) Parameters() []ParameterGroup {
	out := make([]ParameterGroup, len(d.params))
	for i, g := range d.params {
		out[i] = ParameterGroup{
			Title: g.Title,
			Items: append([]models.ParameterItem(nil), g.Items...),
			Open:  g.Open,
		}
	}
	return out
}
