package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/jsonx"
)

var ErrEmptyPayload = errors.New("event payload is empty")

// Envelope wraps every payload put on the bus. EventID is generated once at
// staging time and survives redelivery, so consumers may use it as a dedup key.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	Producer     string          `json:"producer"`
	PartitionKey string          `json:"partition_key"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Payload      json.RawMessage `json:"payload"`
}

func New(eventType, producer, partitionKey string, payload any) (*Envelope, error) {
	if eventType == "" {
		return nil, errors.New("event type is required")
	}
	body, err := jsonx.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return &Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		Producer:     producer,
		PartitionKey: partitionKey,
		OccurredAt:   time.Now().UTC(),
		Payload:      body,
	}, nil
}

// StableID derives a deterministic event id from parts. Events re-emitted for
// the same fact reuse it, so consumer dedup ledgers absorb the replay.
func StableID(parts ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(parts, ":"))).String()
}

func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := jsonx.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventID == "" || env.EventType == "" {
		return nil, errors.New("envelope missing event id or type")
	}
	return &env, nil
}

func (e *Envelope) Encode() ([]byte, error) {
	return jsonx.Marshal(e)
}

// Bind decodes the payload into v.
func (e *Envelope) Bind(v any) error {
	if len(e.Payload) == 0 {
		return ErrEmptyPayload
	}
	if err := jsonx.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.EventType, err)
	}
	return nil
}
