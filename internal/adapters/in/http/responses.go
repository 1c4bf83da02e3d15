package http

import (
	"time"

	"logistrans/internal/core/application/usecases/queries"
)

type createdResponse struct {
	ID string `json:"id"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type orderResponse struct {
	ID                  string     `json:"id"`
	Number              string     `json:"number"`
	ClientName          string     `json:"client_name"`
	CargoDescription    string     `json:"cargo_description"`
	Weight              float64    `json:"weight"`
	AddressFrom         string     `json:"address_from"`
	AddressTo           string     `json:"address_to"`
	OrderDate           time.Time  `json:"order_date"`
	PlannedDeliveryDate *time.Time `json:"planned_delivery_date,omitempty"`
	ActualDeliveryDate  *time.Time `json:"actual_delivery_date,omitempty"`
	Cost                float64    `json:"cost"`
	Status              string     `json:"status"`
}

func toOrderResponses(rows []queries.GetOrdersQueryResponse) []orderResponse {
	out := make([]orderResponse, len(rows))
	for i, row := range rows {
		out[i] = orderResponse{
			ID:                  row.ID.String(),
			Number:              row.Number,
			ClientName:          row.ClientName,
			CargoDescription:    row.CargoDescription,
			Weight:              row.Weight,
			AddressFrom:         row.AddressFrom,
			AddressTo:           row.AddressTo,
			OrderDate:           row.OrderDate,
			PlannedDeliveryDate: row.PlannedDeliveryDate,
			ActualDeliveryDate:  row.ActualDeliveryDate,
			Cost:                row.Cost,
			Status:              row.Status,
		}
	}
	return out
}

type historyEntryResponse struct {
	ID        string    `json:"id"`
	OldStatus *string   `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

func toHistoryResponses(rows []queries.GetOrderHistoryQueryResponse) []historyEntryResponse {
	out := make([]historyEntryResponse, len(rows))
	for i, row := range rows {
		out[i] = historyEntryResponse{
			ID:        row.ID.String(),
			OldStatus: row.OldStatus,
			NewStatus: row.NewStatus,
			ChangedBy: row.ChangedBy,
			ChangedAt: row.ChangedAt,
			Note:      row.Note,
		}
	}
	return out
}

type routeResponse struct {
	ID               string     `json:"id"`
	OrderNumber      string     `json:"order_number"`
	DriverName       string     `json:"driver_name"`
	VehiclePlate     string     `json:"vehicle_plate"`
	StartPoint       string     `json:"start_point"`
	EndPoint         string     `json:"end_point"`
	Status           string     `json:"status"`
	PlannedStartTime *time.Time `json:"planned_start_time,omitempty"`
	PlannedEndTime   *time.Time `json:"planned_end_time,omitempty"`
	ActualStartTime  *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime    *time.Time `json:"actual_end_time,omitempty"`
	DistanceKm       *float64   `json:"distance_km,omitempty"`
}

func toRouteResponses(rows []queries.GetRoutesQueryResponse) []routeResponse {
	out := make([]routeResponse, len(rows))
	for i, row := range rows {
		out[i] = routeResponse{
			ID:               row.ID.String(),
			OrderNumber:      row.OrderNumber,
			DriverName:       row.DriverName,
			VehiclePlate:     row.VehiclePlate,
			StartPoint:       row.StartPoint,
			EndPoint:         row.EndPoint,
			Status:           row.Status,
			PlannedStartTime: row.PlannedStartTime,
			PlannedEndTime:   row.PlannedEndTime,
			ActualStartTime:  row.ActualStartTime,
			ActualEndTime:    row.ActualEndTime,
			DistanceKm:       row.DistanceKm,
		}
	}
	return out
}

type vehicleResponse struct {
	ID                  string     `json:"id"`
	Brand               string     `json:"brand"`
	Model               string     `json:"model"`
	LicensePlate        string     `json:"license_plate"`
	Capacity            float64    `json:"capacity"`
	CurrentMileage      int        `json:"current_mileage"`
	NextMaintenanceKm   int        `json:"next_maintenance_km"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
}

func toVehicleResponses(rows []queries.GetAvailableVehiclesQueryResponse) []vehicleResponse {
	out := make([]vehicleResponse, len(rows))
	for i, row := range rows {
		out[i] = vehicleResponse{
			ID:                  row.ID.String(),
			Brand:               row.Brand,
			Model:               row.Model,
			LicensePlate:        row.LicensePlate,
			Capacity:            row.Capacity,
			CurrentMileage:      row.CurrentMileage,
			NextMaintenanceKm:   row.NextMaintenanceKm,
			LastMaintenanceDate: row.LastMaintenanceDate,
		}
	}
	return out
}

type driverResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone,omitempty"`
	LicenseNumber   string `json:"license_number"`
	ExperienceYears int    `json:"experience_years"`
}

func toDriverResponses(rows []queries.GetAvailableDriversQueryResponse) []driverResponse {
	out := make([]driverResponse, len(rows))
	for i, row := range rows {
		out[i] = driverResponse{
			ID:              row.ID.String(),
			FullName:        row.FullName,
			Phone:           row.Phone,
			LicenseNumber:   row.LicenseNumber,
			ExperienceYears: row.ExperienceYears,
		}
	}
	return out
}

type warehouseItemResponse struct {
	ID            string     `json:"id"`
	CargoName     string     `json:"cargo_name"`
	Quantity      int        `json:"quantity"`
	StorageZone   string     `json:"storage_zone"`
	Volume        float64    `json:"volume"`
	Status        string     `json:"status"`
	ArrivalDate   time.Time  `json:"arrival_date"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	OrderNumber   *string    `json:"order_number,omitempty"`
}

func toWarehouseItemResponses(rows []queries.GetWarehouseItemsQueryResponse) []warehouseItemResponse {
	out := make([]warehouseItemResponse, len(rows))
	for i, row := range rows {
		out[i] = warehouseItemResponse{
			ID:            row.ID.String(),
			CargoName:     row.CargoName,
			Quantity:      row.Quantity,
			StorageZone:   row.StorageZone,
			Volume:        row.Volume,
			Status:        row.Status,
			ArrivalDate:   row.ArrivalDate,
			DepartureDate: row.DepartureDate,
			OrderNumber:   row.OrderNumber,
		}
	}
	return out
}

type notificationResponse struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	Category    string    `json:"category"`
	IsRead      bool      `json:"is_read"`
	OrderNumber *string   `json:"order_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toNotificationResponses(rows []queries.GetNotificationsQueryResponse) []notificationResponse {
	out := make([]notificationResponse, len(rows))
	for i, row := range rows {
		out[i] = notificationResponse{
			ID:          row.ID.String(),
			Message:     row.Message,
			Category:    row.Category,
			IsRead:      row.IsRead,
			OrderNumber: row.OrderNumber,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out
}

type dashboardResponse struct {
	OrdersByStatus   map[string]int `json:"orders_by_status"`
	FreeVehicles     int            `json:"free_vehicles"`
	AvailableDrivers int            `json:"available_drivers"`
	ActiveRoutes     int            `json:"active_routes"`
	StoredItems      int            `json:"stored_items"`
}

type reportRowResponse struct {
	OrderID            string    `json:"order_id"`
	Number             string    `json:"number"`
	ClientName         string    `json:"client_name"`
	DriverName         *string   `json:"driver_name,omitempty"`
	VehiclePlate       *string   `json:"vehicle_plate,omitempty"`
	Cost               float64   `json:"cost"`
	OrderDate          time.Time `json:"order_date"`
	ActualDeliveryDate time.Time `json:"actual_delivery_date"`
}

func toReportResponses(rows []queries.GetDeliveryReportQueryResponse) []reportRowResponse {
	out := make([]reportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = reportRowResponse{
			OrderID:            row.OrderID.String(),
			Number:             row.Number,
			ClientName:         row.ClientName,
			DriverName:         row.DriverName,
			VehiclePlate:       row.VehiclePlate,
			Cost:               row.Cost,
			OrderDate:          row.OrderDate,
			ActualDeliveryDate: row.ActualDeliveryDate,
		}
	}
	return out
}
