package customer

import (
	"fmt"
	"strings"
)

// Status is the workflow stage of a customer record.
type Status int

const (
	StatusNeedsAction Status = iota
	StatusQuoted
	StatusInProgress
	StatusDone
)

// AllStatuses lists the statuses in button order.
var AllStatuses = []Status{StatusNeedsAction, StatusQuoted, StatusInProgress, StatusDone}

var statusLabels = map[Status]string{
	StatusNeedsAction: "要対応",
	StatusQuoted:      "見積もり済",
	StatusInProgress:  "作業中",
	StatusDone:        "完了",
}

var statusIdentifiers = map[Status]string{
	StatusNeedsAction: "needs-action",
	StatusQuoted:      "quoted",
	StatusInProgress:  "in-progress",
	StatusDone:        "done",
}

// Label is both the display text and the wire value.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return ""
}

// String returns the English identifier.
func (s Status) String() string {
	if id, ok := statusIdentifiers[s]; ok {
		return id
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus accepts a label or an English identifier.
func ParseStatus(text string) (Status, error) {
	text = strings.TrimSpace(text)
	for _, s := range AllStatuses {
		if text == statusLabels[s] || strings.EqualFold(text, statusIdentifiers[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", text)
}

// MarshalText writes the wire label.
func (s Status) MarshalText() ([]byte, error) {
	l := s.Label()
	if l == "" {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(l), nil
}

// UnmarshalText parses a wire label.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
