package entities

import (
	"math"
	"strconv"
	"strings"
)

// ServiceType is the requested transport direction. Both are one-way.
type ServiceType string

const (
	ServiceTypePickup   ServiceType = "pickup_one_way"
	ServiceTypeDelivery ServiceType = "delivery_one_way"
)

// VehicleType exists for forward compatibility; only standard is priced.
type VehicleType string

const VehicleTypeStandard VehicleType = "standard"

// ShipmentForm is the structured shipment description, filled either by the
// document-extraction normalizer or manually field by field. Missing fields
// are empty strings, never absent keys.
type ShipmentForm struct {
	Service           ShipmentService `json:"service"`
	Vehicle           ShipmentVehicle `json:"vehicle"`
	SellingDealership DealershipParty `json:"selling_dealership"`
	BuyingDealership  DealershipParty `json:"buying_dealership"`
	PickupLocation    ShipmentPlace   `json:"pickup_location"`
	DropoffLocation   DropoffPlace    `json:"dropoff_location"`
	Transaction       ShipmentTxn     `json:"transaction"`
	Authorization     ShipmentAuth    `json:"authorization"`
	DealerNotes       string          `json:"dealer_notes,omitempty"`
	DraftSource       string          `json:"draft_source,omitempty"`
}

type ShipmentService struct {
	ServiceType ServiceType `json:"service_type"`
	VehicleType VehicleType `json:"vehicle_type"`
}

type ShipmentVehicle struct {
	VIN           string `json:"vin"`
	Year          string `json:"year"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	Transmission  string `json:"transmission"`
	OdometerKm    string `json:"odometer_km"`
	ExteriorColor string `json:"exterior_color"`
}

type DealershipParty struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}

type ShipmentPlace struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// DropoffPlace carries optional coordinates. Lat/Lng are strings as entered
// or extracted; Coordinates() validates and parses them.
type DropoffPlace struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address"`
	Lat         string `json:"lat,omitempty"`
	Lng         string `json:"lng,omitempty"`
	ServiceArea string `json:"service_area,omitempty"`
}

// Coordinates parses and validates the drop-off lat/lng. It returns ok=false
// when either value is missing, non-numeric or out of range, or when both are
// exactly zero (treated as "unset").
func (p DropoffPlace) Coordinates() (lat, lng float64, ok bool) {
	latRaw := strings.TrimSpace(p.Lat)
	lngRaw := strings.TrimSpace(p.Lng)
	if latRaw == "" || lngRaw == "" {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lng, errLng := strconv.ParseFloat(lngRaw, 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	if lat == 0 && lng == 0 {
		return 0, 0, false
	}
	return lat, lng, true
}

type ShipmentTxn struct {
	TransactionID     string `json:"transaction_id"`
	ReleaseFormNumber string `json:"release_form_number"`
	ReleaseDate       string `json:"release_date,omitempty"`
	ArrivalDate       string `json:"arrival_date,omitempty"`
}

type ShipmentAuth struct {
	ReleasedByName string `json:"released_by_name"`
	ReleasedToName string `json:"released_to_name"`
}
