package analytics

import "time"

// TopicClickRegistered is the topic for click events emitted by the API.
const TopicClickRegistered = "click.registered"

// ClickEvent represents a single registered click. Events are observed
// for monitoring only; no durable per-click history is accumulated.
type ClickEvent struct {
	Country     string    `json:"country"`
	TotalClicks int64     `json:"totalClicks"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
	RequestID   string    `json:"requestId"`
	ClickedAt   time.Time `json:"clickedAt"`
}
