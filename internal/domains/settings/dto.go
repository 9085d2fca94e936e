package settings

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpdateSettingsReq struct {
	Data json.RawMessage `json:"data"`
	// Version must match the stored row for the write to apply.
	Version int64 `json:"version"`
}

func (r UpdateSettingsReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data, validation.Required, validation.By(validJSON)),
		validation.Field(&r.Version, validation.Min(0)),
	)
}

func validJSON(value interface{}) error {
	raw, ok := value.(json.RawMessage)
	if !ok || !json.Valid(raw) {
		return validation.NewError("validation_data", "data must be a valid JSON document")
	}
	return nil
}
