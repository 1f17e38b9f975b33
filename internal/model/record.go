// Package model defines the persisted record types and the read-only corpus types.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Meta is the header the record store synthesizes on append.
type Meta struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Stamp assigns the synthesized id and creation time.
func (m *Meta) Stamp(id int64, at time.Time) {
	m.ID = id
	m.Timestamp = at
}

// Header returns the record header.
func (m Meta) Header() Meta { return m }

// RecordType tags the divination history variant.
type RecordType string

const (
	RecordQuick RecordType = "quick"
	RecordCoin  RecordType = "coin"
	RecordAI    RecordType = "ai"
)

// ValidRecordTypes are the allowed history record types.
var ValidRecordTypes = map[RecordType]bool{
	RecordQuick: true,
	RecordCoin:  true,
	RecordAI:    true,
}

// Method labels stored alongside each record type.
const (
	MethodQuick = "快速占卜"
	MethodCoin  = "铜钱占卜"
	MethodAI    = "AI智能问卦"
)

// DivinationRecord is one entry of the divination history.
type DivinationRecord struct {
	Meta
	Type       RecordType `json:"type"`
	HexagramID int        `json:"hexagramId"`
	Method     string     `json:"method"`
	Question   string     `json:"question,omitempty"`
	AIResponse string     `json:"aiResponse,omitempty"`
	Details    string     `json:"details,omitempty"`
}

// NewQuickRecord builds a quick divination record.
func NewQuickRecord(hexagramID int) DivinationRecord {
	return DivinationRecord{Type: RecordQuick, HexagramID: hexagramID, Method: MethodQuick}
}

// NewCoinRecord builds a coin divination record from the six thrown lines.
func NewCoinRecord(hexagramID int, lines []string) DivinationRecord {
	return DivinationRecord{
		Type:       RecordCoin,
		HexagramID: hexagramID,
		Method:     MethodCoin,
		Details:    strings.Join(lines, ", "),
	}
}

// NewAIRecord builds a consultation record.
func NewAIRecord(hexagramID int, question, response string) DivinationRecord {
	return DivinationRecord{
		Type:       RecordAI,
		HexagramID: hexagramID,
		Method:     MethodAI,
		Question:   question,
		AIResponse: response,
	}
}

// Validate checks that the record matches the shape of its type.
func (r DivinationRecord) Validate() error {
	if !ValidRecordTypes[r.Type] {
		return fmt.Errorf("unknown record type %q", r.Type)
	}
	if r.HexagramID <= 0 {
		return fmt.Errorf("hexagramId must be positive, got %d", r.HexagramID)
	}
	switch r.Type {
	case RecordCoin:
		if r.Details == "" {
			return fmt.Errorf("coin record requires details")
		}
	case RecordAI:
		if strings.TrimSpace(r.Question) == "" {
			return fmt.Errorf("ai record requires a question")
		}
		if r.AIResponse == "" {
			return fmt.Errorf("ai record requires a response")
		}
	}
	return nil
}
