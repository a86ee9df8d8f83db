package http

import (
	"items-api/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name       string         `json:"name" binding:"required,max=255"`
	Attributes map[string]any `json:"-"` // every other body field
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:       r.Name,
		Attributes: r.Attributes,
	}
}

// ---

type updateReq struct {
	ID         string         `json:"-"` // populated from URI param
	Name       *string        `json:"name" binding:"omitempty,max=255"`
	Attributes map[string]any `json:"-"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return item.ErrInvalidID
	}
	return nil
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:         r.ID,
		Name:       r.Name,
		Attributes: r.Attributes,
	}
}

// --- Response DTOs ---

// itemResp renders an Item as a flat JSON object: attributes next to the model fields.
type itemResp map[string]any

func newItemResp(it item.Item) itemResp {
	resp := make(itemResp, len(it.Attributes)+4)
	for k, v := range it.Attributes {
		resp[k] = v
	}
	resp[item.FieldID] = it.ID
	resp[item.FieldName] = it.Name
	resp[item.FieldCreatedAt] = it.CreatedAt
	resp[item.FieldUpdatedAt] = it.UpdatedAt
	return resp
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}
