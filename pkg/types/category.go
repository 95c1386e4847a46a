package types

// Category classifies contacts. Name is required; Description is optional.
// A category cannot be deleted while any contact references its id.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Genre classifies books. It has the same shape and deletion rules as
// Category and shares the reference-count logic in the store.
type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}
