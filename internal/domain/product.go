package domain

import "time"

// DeviceStatus reports device reachability.
type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
)

// Product is a device registered to a customer account.
type Product struct {
	ID           int64
	CustomerID   int64
	Name         string
	Type         string
	SerialNumber string
	Status       DeviceStatus
	Firmware     string
	Location     string
	LastActive   time.Time
}
