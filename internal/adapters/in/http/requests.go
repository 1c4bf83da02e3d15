package http

import "time"

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	ClientID            string     `json:"client_id"`
	CargoDescription    string     `json:"cargo_description"`
	Weight              float64    `json:"weight"`
	AddressFrom         string     `json:"address_from"`
	AddressTo           string     `json:"address_to"`
	PlannedDeliveryDate *time.Time `json:"planned_delivery_date,omitempty"`
	Cost                float64    `json:"cost"`
	Notes               string     `json:"notes,omitempty"`
	VehicleID           *string    `json:"vehicle_id,omitempty"`
	DriverID            *string    `json:"driver_id,omitempty"`
}

type assignTransportRequest struct {
	VehicleID        string     `json:"vehicle_id"`
	DriverID         string     `json:"driver_id"`
	PlannedStartTime *time.Time `json:"planned_start_time,omitempty"`
	PlannedEndTime   *time.Time `json:"planned_end_time,omitempty"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type createClientRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type createUserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type createVehicleRequest struct {
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	LicensePlate      string  `json:"license_plate"`
	Capacity          float64 `json:"capacity"`
	NextMaintenanceKm int     `json:"next_maintenance_km"`
	CurrentMileage    int     `json:"current_mileage"`
}

type createDriverRequest struct {
	UserID          *string `json:"user_id,omitempty"`
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone,omitempty"`
	LicenseNumber   string  `json:"license_number"`
	ExperienceYears int     `json:"experience_years"`
}

type addWarehouseItemRequest struct {
	CargoName   string     `json:"cargo_name"`
	Quantity    int        `json:"quantity"`
	StorageZone string     `json:"storage_zone"`
	Volume      float64    `json:"volume"`
	ArrivalDate *time.Time `json:"arrival_date,omitempty"`
}

type reserveWarehouseItemRequest struct {
	OrderID string `json:"order_id"`
}
