package settings

import (
	"encoding/json"
	"time"
)

// Settings is the single row of site-wide configuration. Data is an
// opaque JSON document owned by the back-office UI; Version increments
// on every successful write and guards against lost updates.
type Settings struct {
	Data      json.RawMessage `json:"data"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}
