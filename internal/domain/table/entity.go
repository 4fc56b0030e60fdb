// Package table holds the read-only snapshot of a restaurant table as served
// by the companion table service. This service never persists tables.
package table

import "errors"

var (
	ErrInvalidTableID  = errors.New("table id must be a positive integer")
	ErrInvalidCapacity = errors.New("seating capacity must be a positive integer")
)

type Table struct {
	id              int64
	seatingCapacity int
	isActive        bool
}

func NewTable(id int64, seatingCapacity int, isActive bool) (*Table, error) {
	if id <= 0 {
		return nil, ErrInvalidTableID
	}
	if seatingCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		id:              id,
		seatingCapacity: seatingCapacity,
		isActive:        isActive,
	}, nil
}

func (t *Table) ID() int64            { return t.id }
func (t *Table) SeatingCapacity() int { return t.seatingCapacity }
func (t *Table) IsActive() bool       { return t.isActive }

func (t *Table) CanSeat(guests int) bool {
	return guests <= t.seatingCapacity
}
