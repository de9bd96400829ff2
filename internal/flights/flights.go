// Package flights holds the static departure board served by the FlightInfoBot tool.
package flights

// NoFlightInfo is returned for any city that is not on the board
const NoFlightInfo = "No flight information available for the specified city."

// Departure is a single row of the departure board
type Departure struct {
	City   string `json:"city" yaml:"city"`
	Status string `json:"status" yaml:"status"`
}

// board is the departure table in display order. Never mutated after init.
var board = []Departure{
	{City: "Los Angeles", Status: "AA1234 Departing at 9:30 AM"},
	{City: "Chicago", Status: "DL2478 Departing at 10:00 AM"},
	{City: "New York", Status: "UA5678 Departing at 11:15 AM"},
	{City: "Miami", Status: "SW4321 Departing at 1:45 PM"},
	{City: "San Francisco", Status: "BA8765 Departing at 2:30 PM"},
	{City: "Seattle", Status: "AS3456 Departing at 3:00 PM"},
	{City: "Boston", Status: "FR7890 Departing at 4:20 PM"},
	{City: "Dallas", Status: "VX6543 Departing at 5:10 PM"},
}

var byCity = func() map[string]string {
	m := make(map[string]string, len(board))
	for _, d := range board {
		m[d.City] = d.Status
	}
	return m
}()

// Lookup returns the flight status for city, or NoFlightInfo if the city is
// unknown. Matching is exact and case-sensitive.
func Lookup(city string) string {
	if status, ok := byCity[city]; ok {
		return status
	}
	return NoFlightInfo
}

// Known reports whether city has an entry on the board
func Known(city string) bool {
	_, ok := byCity[city]
	return ok
}

// Cities returns the known cities in board order
func Cities() []string {
	cities := make([]string, 0, len(board))
	for _, d := range board {
		cities = append(cities, d.City)
	}
	return cities
}

// Departures returns a copy of the board
func Departures() []Departure {
	out := make([]Departure, len(board))
	copy(out, board)
	return out
}
