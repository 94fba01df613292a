package entity

import "time"

// AttendanceEntry marca de asistencia de un empleado. ClockOut queda nil
// mientras el turno está abierto.
type AttendanceEntry struct {
	ID       string     `bson:"_id"`
	UserID   string     `bson:"user_id"`
	BranchID string     `bson:"branch_id"`
	ClockIn  time.Time  `bson:"clock_in"`
	ClockOut *time.Time `bson:"clock_out,omitempty"`
}
