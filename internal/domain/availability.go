package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chefdechef/booking-service/pkg/types"
)

// AvailabilityPolicy определяет, какие статусы блокируют дату
type AvailabilityPolicy string

const (
	// PolicyActive дата занята, пока есть заявка pending или confirmed
	PolicyActive AvailabilityPolicy = "active"
	// PolicyActiveAndCompleted дополнительно блокирует даты проведенных выступлений
	PolicyActiveAndCompleted AvailabilityPolicy = "active_and_completed"
)

// DefaultAvailabilityPolicy политика по умолчанию
const DefaultAvailabilityPolicy = PolicyActive

var ErrUnknownAvailabilityPolicy = errors.New("domain: unknown availability policy")

// ParseAvailabilityPolicy parses the configured policy name; empty means default
func ParseAvailabilityPolicy(s string) (AvailabilityPolicy, error) {
	switch AvailabilityPolicy(s) {
	case "":
		return DefaultAvailabilityPolicy, nil
	case PolicyActive, PolicyActiveAndCompleted:
		return AvailabilityPolicy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAvailabilityPolicy, s)
	}
}

// BlockingStatuses статусы, которые делают дату недоступной
func (p AvailabilityPolicy) BlockingStatuses() []BookingStatus {
	if p == PolicyActiveAndCompleted {
		return []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted}
	}
	return []BookingStatus{StatusPending, StatusConfirmed}
}

// Blocks reports whether a booking in status s makes its date unavailable
func (p AvailabilityPolicy) Blocks(s BookingStatus) bool {
	for _, st := range p.BlockingStatuses() {
		if st == s {
			return true
		}
	}
	return false
}

// AvailabilitySet множество недоступных для новых заявок дат
type AvailabilitySet struct {
	dates map[types.Date]struct{}
}

// NewAvailabilitySet строит множество из проекций (дата, статус)
func NewAvailabilitySet(entries []DateStatus, policy AvailabilityPolicy) *AvailabilitySet {
	set := &AvailabilitySet{dates: make(map[types.Date]struct{}, len(entries))}
	for _, e := range entries {
		if e.EventDate.IsZero() || !policy.Blocks(e.Status) {
			continue
		}
		set.dates[e.EventDate] = struct{}{}
	}
	return set
}

// Contains reports whether the date is unavailable
func (s *AvailabilitySet) Contains(d types.Date) bool {
	if s == nil {
		return false
	}
	_, ok := s.dates[d]
	return ok
}

// Len returns the number of unavailable dates
func (s *AvailabilitySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dates)
}

// Dates returns the unavailable dates in ascending order
func (s *AvailabilitySet) Dates() []types.Date {
	if s == nil {
		return []types.Date{}
	}
	out := make([]types.Date, 0, len(s.dates))
	for d := range s.dates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

var (
	// ErrDateRequired дата события не указана
	ErrDateRequired = errors.New("domain: event date is required")
	// ErrDateInPast дата события раньше сегодняшнего дня
	ErrDateInPast = errors.New("domain: event date is in the past")
	// ErrDateUnavailable на дату уже есть активная заявка
	ErrDateUnavailable = errors.New("domain: event date is unavailable")
)

// ValidateCandidate проверяет дату новой заявки относительно today и множества
func (s *AvailabilitySet) ValidateCandidate(d, today types.Date) error {
	switch {
	case d.IsZero():
		return ErrDateRequired
	case d.Before(today):
		return ErrDateInPast
	case s.Contains(d):
		return ErrDateUnavailable
	}
	return nil
}
