package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// UnreadMessageCountNotification is the name under which the messaging
// ledger keeps a recipient's unread counter.
const UnreadMessageCountNotification = "unread_message_count"

// Notification is a per-user, replace-by-name notification slot. At most one
// live row exists per (user, name) pair; inserting under an existing name
// deletes prior rows first. Timestamp is float unix seconds so clients can
// poll incrementally with ?since=<float>.
type Notification struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:128;index"`
	UserID    uint           `json:"user_id" gorm:"index"`
	Timestamp float64        `json:"timestamp" gorm:"index"`
	Payload   datatypes.JSON `json:"data"`
}

// Data decodes the JSON payload into v.
func (n *Notification) Data(v any) error {
	return json.Unmarshal(n.Payload, v)
}
