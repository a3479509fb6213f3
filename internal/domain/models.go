package domain

import "time"

// Enumerations
const (
	RoleOwner UserRole = "owner"
	RoleStaff UserRole = "staff"

	CategoryBeans InventoryCategory = "beans"
	CategoryMilk  InventoryCategory = "milk"
	CategorySyrup InventoryCategory = "syrup"
	CategoryCups  InventoryCategory = "cups"
	CategoryOther InventoryCategory = "other"

	EventMarket    EventType = "market"
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventPrivate   EventType = "private"
	EventPopup     EventType = "popup"
	EventOther     EventType = "other"

	StatusInquiry      EventStatus = "inquiry"
	StatusProposalSent EventStatus = "proposal_sent"
	StatusBooked       EventStatus = "booked"
	StatusCompleted    EventStatus = "completed"
	StatusCancelled    EventStatus = "cancelled"
)

type UserRole string
type InventoryCategory string
type EventType string
type EventStatus string

// Money is an amount in integer cents.
type Money struct {
	Amount   int64
	Currency string
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         UserRole
	IsGoogle     bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type InventoryItem struct {
	ID               int64
	Name             string
	Category         InventoryCategory
	Unit             string
	Quantity         int
	ReorderThreshold int
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type InventoryAdjustment struct {
	ID        int64
	ItemID    int64
	Change    int
	Remaining int
	Kind      string
	Note      string
	CreatedAt time.Time
}

// Event is one calendar entry. A weekly-recurring submission creates a
// batch of events sharing every field except Date.
type Event struct {
	ID          int64
	Title       string
	Date        time.Time
	Location    string
	Type        EventType
	ClientName  string
	ClientEmail string
	ClientPhone string
	Status      EventStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Goal is a monthly target. Month is "YYYY-MM".
type Goal struct {
	ID        int64
	Title     string
	Month     string
	IsDone    bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// CashSession is one business day's drawer reconciliation. Opening and
// closing totals are derived from denomination counts at save time; net
// cash is re-derived from the stored components and never persisted.
type CashSession struct {
	ID           int64
	SessionDate  time.Time
	OpeningTotal Money
	ClosingTotal Money
	StallFee     Money
	Payouts      Money
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
