package models

// Zone is one of the two fixed service areas buses and stops belong to.
type Zone string

const (
	ZoneSouth Zone = "south"
	ZoneNorth Zone = "north"
)

func (z Zone) Valid() bool {
	return z == ZoneSouth || z == ZoneNorth
}

// ScheduleKind is the direction of a scheduled bus event.
type ScheduleKind string

const (
	KindDeparture ScheduleKind = "departure"
	KindArrival   ScheduleKind = "arrival"
)

func (k ScheduleKind) Valid() bool {
	return k == KindDeparture || k == KindArrival
}

// ScheduleStatus: green = on time, yellow = delayed, red = out of service.
type ScheduleStatus string

const (
	StatusGreen  ScheduleStatus = "green"
	StatusYellow ScheduleStatus = "yellow"
	StatusRed    ScheduleStatus = "red"
)

func (s ScheduleStatus) Valid() bool {
	return s == StatusGreen || s == StatusYellow || s == StatusRed
}

// NotificationKind classifies notifications for client rendering.
type NotificationKind string

const (
	NotifInfo    NotificationKind = "info"
	NotifWarning NotificationKind = "warning"
	NotifAlert   NotificationKind = "alert"
	NotifSuccess NotificationKind = "success"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case NotifInfo, NotifWarning, NotifAlert, NotifSuccess:
		return true
	}
	return false
}
