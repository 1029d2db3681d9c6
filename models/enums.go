package models

import (
	"regexp"

	"hotel-ops-backend/utils"
)

// Employee roles
const (
	RoleAdmin                   = "ADMIN"
	RoleGeneralManager          = "GENERAL_MANAGER"
	RoleManager                 = "MANAGER"
	RoleAccommodationSupervisor = "ACCOMMODATION_SUPERVISOR"
	RoleReception               = "RECEPTION"
	RoleWaiter                  = "WAITER"
)

var EmployeeRoles = []string{
	RoleAdmin, RoleGeneralManager, RoleManager, RoleAccommodationSupervisor, RoleReception, RoleWaiter,
}

// BookingRoles may register a book.
var BookingRoles = []string{RoleAdmin, RoleGeneralManager, RoleAccommodationSupervisor, RoleReception}

// Room types
const (
	RoomSingle = "SINGLE"
	RoomDouble = "DOUBLE"
	RoomTwin   = "TWIN"
	RoomTriple = "TRIPLE"
	RoomSuite  = "SUITE"
)

var RoomTypes = []string{RoomSingle, RoomDouble, RoomTwin, RoomTriple, RoomSuite}

// Order statuses
const (
	OrderPending    = "PENDING"
	OrderInProgress = "IN_PROGRESS"
	OrderServed     = "SERVED"
	OrderPaid       = "PAID"
	OrderCancelled  = "CANCELLED"
)

var OrderStatuses = []string{OrderPending, OrderInProgress, OrderServed, OrderPaid, OrderCancelled}

// Order line statuses
const (
	ItemPending   = "PENDING"
	ItemPreparing = "PREPARING"
	ItemReady     = "READY"
	ItemServed    = "SERVED"
	ItemCancelled = "CANCELLED"
)

var OrderItemStatuses = []string{ItemPending, ItemPreparing, ItemReady, ItemServed, ItemCancelled}

// Meal plans
const (
	MealRoomOnly        = "ROOM_ONLY"
	MealBedAndBreakfast = "BED_AND_BREAKFAST"
	MealHalfBoard       = "HALF_BOARD"
	MealFullBoard       = "FULL_BOARD"
)

var MealPlans = []string{MealRoomOnly, MealBedAndBreakfast, MealHalfBoard, MealFullBoard}

var phonePattern = regexp.MustCompile(`^[+]?\d{1,3}[ -]?\d{5,14}$`)

// IsValidPhoneNumber reports whether s looks like an international phone number.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

func IsValidEmployeeRole(value, name string, raise bool) (bool, error) {
	return utils.IsOneOf(value, EmployeeRoles, name, raise)
}

func IsValidRoomType(value, name string, raise bool) (bool, error) {
	return utils.IsOneOf(value, RoomTypes, name, raise)
}

func IsValidMealPlan(value, name string, raise bool) (bool, error) {
	return utils.IsOneOf(value, MealPlans, name, raise)
}

func IsValidOrderStatus(value, name string, raise bool) (bool, error) {
	return utils.IsOneOf(value, OrderStatuses, name, raise)
}

func IsValidOrderItemStatus(value, name string, raise bool) (bool, error) {
	return utils.IsOneOf(value, OrderItemStatuses, name, raise)
}
