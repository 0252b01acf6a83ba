package models

import (
	"database/sql"
	"time"
)

type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Delivery is the outcome of one recipient within a broadcast.
type Delivery struct {
	ID                string         `db:"id" json:"id"`
	BroadcastID       string         `db:"broadcast_id" json:"broadcast_id"`
	BatchID           sql.NullString `db:"batch_id" json:"batch_id,omitempty"`
	PhoneNumber       string         `db:"phone_number" json:"phone_number"`
	Status            DeliveryStatus `db:"status" json:"status"`
	ProviderMessageID sql.NullString `db:"provider_message_id" json:"provider_message_id,omitempty"`
	Attempts          int            `db:"attempts" json:"attempts"`
	Error             sql.NullString `db:"error" json:"error,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
}

// DeliveryResult is what the wire client reports for a single recipient.
type DeliveryResult struct {
	Delivered  bool
	MessageID  string
	Attempts   int
	StatusCode int
	// Permanent is set when the provider rejected the request (4xx) and
	// retrying would not help.
	Permanent bool
	Err       error
}

// WhatsAppTextRequest is the Cloud API payload for a text message.
type WhatsAppTextRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             WhatsAppText `json:"text"`
}

type WhatsAppText struct {
	Body string `json:"body"`
}

type WhatsAppMediaLink struct {
	Link string `json:"link"`
}

// WhatsAppResponse is the subset of the Cloud API response we read.
type WhatsAppResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}
