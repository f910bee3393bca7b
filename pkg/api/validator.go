package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var ErrInvalidPayload = errors.New("invalid payload")

func (p DirectionPayload) Validate() error {
	if p.Dir < 0 || p.Dir > 5 {
		return fmt.Errorf("%w: direction %d is out of range 0..5", ErrInvalidPayload, p.Dir)
	}
	return nil
}
