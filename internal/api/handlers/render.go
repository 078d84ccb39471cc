package handlers

import (
	"workorder.io/engine/ent"
)

// orderView is the JSON shape rendered for an *ent.Order.
type orderView struct {
	ID                 string                 `json:"id"`
	Type               string                 `json:"type"`
	State              string                 `json:"state"`
	Priority           int                    `json:"priority"`
	Payload            map[string]interface{} `json:"payload"`
	Meta               map[string]interface{} `json:"meta,omitempty"`
	RequestedByType    string                 `json:"requested_by_type,omitempty"`
	RequestedByID      string                 `json:"requested_by_id,omitempty"`
	AppliedAt          *string                `json:"applied_at,omitempty"`
	CompletedAt        *string                `json:"completed_at,omitempty"`
	LastTransitionedAt *string                `json:"last_transitioned_at,omitempty"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

func renderOrder(o *ent.Order) orderView {
	v := orderView{
		ID:              o.ID,
		Type:            o.Type,
		State:           string(o.State),
		Priority:        o.Priority,
		Payload:         o.Payload,
		Meta:            o.Meta,
		RequestedByType: o.RequestedByType,
		RequestedByID:   o.RequestedByID,
		CreatedAt:       o.CreatedAt.Format(timeFormat),
		UpdatedAt:       o.UpdatedAt.Format(timeFormat),
	}
	if o.AppliedAt != nil {
		v.AppliedAt = formatTime(o.AppliedAt)
	}
	if o.CompletedAt != nil {
		v.CompletedAt = formatTime(o.CompletedAt)
	}
	if o.LastTransitionedAt != nil {
		v.LastTransitionedAt = formatTime(o.LastTransitionedAt)
	}
	return v
}

func renderOrders(orders []*ent.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, renderOrder(o))
	}
	return out
}

// itemView is the JSON shape rendered for an *ent.Item.
type itemView struct {
	ID              string                 `json:"id"`
	OrderID         string                 `json:"order_id"`
	Type            string                 `json:"type"`
	State           string                 `json:"state"`
	Input           map[string]interface{} `json:"input,omitempty"`
	Result          map[string]interface{} `json:"result,omitempty"`
	AssembledResult map[string]interface{} `json:"assembled_result,omitempty"`
	PartsRequired   []string               `json:"parts_required,omitempty"`
	PartsState      map[string]interface{} `json:"parts_state,omitempty"`
	Attempts        int                    `json:"attempts"`
	MaxAttempts     int                    `json:"max_attempts"`
	LeasedBy        *string                `json:"leased_by,omitempty"`
	LeaseExpiresAt  *string                `json:"lease_expires_at,omitempty"`
	LastHeartbeatAt *string                `json:"last_heartbeat_at,omitempty"`
	AcceptedAt      *string                `json:"accepted_at,omitempty"`
	Error           map[string]interface{} `json:"error,omitempty"`
}

func renderItem(it *ent.Item) itemView {
	v := itemView{
		ID:              it.ID,
		OrderID:         it.OrderID,
		Type:            it.Type,
		State:           string(it.State),
		Input:           it.Input,
		Result:          it.Result,
		AssembledResult: it.AssembledResult,
		PartsRequired:   it.PartsRequired,
		PartsState:      it.PartsState,
		Attempts:        it.Attempts,
		MaxAttempts:     it.MaxAttempts,
		LeasedBy:        it.LeasedBy,
		Error:           it.Error,
	}
	if it.LeaseExpiresAt != nil {
		v.LeaseExpiresAt = formatTime(it.LeaseExpiresAt)
	}
	if it.LastHeartbeatAt != nil {
		v.LastHeartbeatAt = formatTime(it.LastHeartbeatAt)
	}
	if it.AcceptedAt != nil {
		v.AcceptedAt = formatTime(it.AcceptedAt)
	}
	return v
}

func renderItems(items []*ent.Item) []itemView {
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, renderItem(it))
	}
	return out
}

// partView is the JSON shape rendered for an *ent.ItemPart.
type partView struct {
	ID          string                 `json:"id"`
	ItemID      string                 `json:"item_id"`
	PartKey     string                 `json:"part_key"`
	Seq         int                    `json:"seq"`
	Status      string                 `json:"status"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	Evidence    map[string]interface{} `json:"evidence,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Errors      map[string]interface{} `json:"errors,omitempty"`
	Checksum    string                 `json:"checksum,omitempty"`
	SubmittedBy string                 `json:"submitted_by,omitempty"`
	CreatedAt   string                 `json:"created_at"`
}

func renderPart(p *ent.ItemPart) partView {
	return partView{
		ID:          p.ID,
		ItemID:      p.ItemID,
		PartKey:     p.PartKey,
		Seq:         p.Seq,
		Status:      string(p.Status),
		Payload:     p.Payload,
		Evidence:    p.Evidence,
		Notes:       p.Notes,
		Errors:      p.Errors,
		Checksum:    p.Checksum,
		SubmittedBy: p.SubmittedBy,
		CreatedAt:   p.CreatedAt.Format(timeFormat),
	}
}

func renderParts(parts []*ent.ItemPart) []partView {
	out := make([]partView, 0, len(parts))
	for _, p := range parts {
		out = append(out, renderPart(p))
	}
	return out
}

// eventView is the JSON shape rendered for an *ent.Event.
type eventView struct {
	ID        string                 `json:"id"`
	OrderID   string                 `json:"order_id"`
	ItemID    *string                `json:"item_id,omitempty"`
	Event     string                 `json:"event"`
	ActorType string                 `json:"actor_type,omitempty"`
	ActorID   string                 `json:"actor_id,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Diff      map[string]interface{} `json:"diff,omitempty"`
	Message   string                 `json:"message,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func renderEvent(ev *ent.Event) eventView {
	return eventView{
		ID:        ev.ID,
		OrderID:   ev.OrderID,
		ItemID:    ev.ItemID,
		Event:     ev.Event,
		ActorType: ev.ActorType,
		ActorID:   ev.ActorID,
		Payload:   ev.Payload,
		Diff:      ev.Diff,
		Message:   ev.Message,
		CreatedAt: ev.CreatedAt.Format(timeFormat),
	}
}

func renderEvents(events []*ent.Event) []eventView {
	out := make([]eventView, 0, len(events))
	for _, ev := range events {
		out = append(out, renderEvent(ev))
	}
	return out
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t interface{ Format(string) string }) *string {
	s := t.Format(timeFormat)
	return &s
}
