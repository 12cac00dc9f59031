package entity

// NodeType discriminates a physical station from a route served out of it
type NodeType string

const (
	NodeStation NodeType = "STATION"
	NodeRoute   NodeType = "ROUTE"
)

// DayCode is the short weekday label stored in a route's workDays
type DayCode string

const (
	Monday    DayCode = "Lun"
	Tuesday   DayCode = "Mar"
	Wednesday DayCode = "Mer"
	Thursday  DayCode = "Jeu"
	Friday    DayCode = "Ven"
	Saturday  DayCode = "Sam"
	Sunday    DayCode = "Dim"
)

// WeekDays lists the day codes from Monday to Sunday
var WeekDays = []DayCode{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is a known day code
func (d DayCode) Valid() bool {
	for _, day := range WeekDays {
		if day == d {
			return true
		}
	}
	return false
}

// Station is a node of a company network. A STATION is a physical place,
// a ROUTE is a trip from PointA to PointB optionally attached to a parent STATION.
type Station struct {
	ID          string   `json:"id" bson:"id"`
	ParentID    string   `json:"parentId,omitempty" bson:"parentId,omitempty"`
	CompanyID   string   `json:"companyId" bson:"companyId"`
	CompanyName string   `json:"companyName" bson:"companyName"`
	Type        NodeType `json:"type" bson:"type"`
	Name        string   `json:"name" bson:"name"`
	PhotoURL    string   `json:"photoUrl" bson:"photoUrl"`
	Location    string   `json:"location" bson:"location"`
	MapLink     string   `json:"mapLink,omitempty" bson:"mapLink,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`

	// Station
	OpeningTime string `json:"openingTime,omitempty" bson:"openingTime,omitempty"`
	ClosingTime string `json:"closingTime,omitempty" bson:"closingTime,omitempty"`

	// Route
	PointA         string    `json:"pointA,omitempty" bson:"pointA,omitempty"`
	PointB         string    `json:"pointB,omitempty" bson:"pointB,omitempty"`
	DeparturePoint string    `json:"departurePoint,omitempty" bson:"departurePoint,omitempty"`
	WorkDays       []DayCode `json:"workDays" bson:"workDays"`
	DepartureHours []string  `json:"departureHours,omitempty" bson:"departureHours,omitempty"`
	ArrivalHours   []string  `json:"arrivalHours,omitempty" bson:"arrivalHours,omitempty"`
	Price          float64   `json:"price,omitempty" bson:"price,omitempty"`
	PricePremium   float64   `json:"pricePremium,omitempty" bson:"pricePremium,omitempty"`
}

// IsRoute reports whether the node is a ROUTE
func (s *Station) IsRoute() bool {
	return s.Type == NodeRoute
}

// RunsOn reports whether the route operates on the given day.
// An empty schedule means the route runs every day.
func (s *Station) RunsOn(day DayCode) bool {
	if len(s.WorkDays) == 0 {
		return true
	}
	for _, d := range s.WorkDays {
		if d == day {
			return true
		}
	}
	return false
}
