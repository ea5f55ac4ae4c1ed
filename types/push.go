package types

const PushTypeNotification = "send_notification"

// PushPayload 推送到用户频道的消息体
type PushPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
