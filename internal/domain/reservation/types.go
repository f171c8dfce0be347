package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusActive   Status = "active"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRejected:
		return true
	default:
		return false
	}
}
