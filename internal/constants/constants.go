package constants

import "time"

var APIConfig = struct {
	CatalogBaseURL   string
	CatalogTimeout   time.Duration
	CatalogUserAgent string
	MaxErrorBody     int
}{
	CatalogBaseURL:   "https://pokeapi.co/api/v2/pokemon",
	CatalogTimeout:   10 * time.Second,
	CatalogUserAgent: "pokedex-lookup-go/1.0",
	MaxErrorBody:     512, // bytes of a failed response kept for logging
}

var UnitConversion = struct {
	CentimetersPerDecimeter float64
	CentimetersPerInch      float64
	InchesPerFoot           float64
	KilogramsPerHectogram   float64
	PoundsPerKilogram       float64
}{
	CentimetersPerDecimeter: 10,
	CentimetersPerInch:      2.54,
	InchesPerFoot:           12,
	KilogramsPerHectogram:   0.1,
	PoundsPerKilogram:       2.20462,
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}{
	ReadHeaderTimeout: 5 * time.Second,
	ReadTimeout:       15 * time.Second,
	WriteTimeout:      30 * time.Second, // covers one catalog round trip
	ShutdownTimeout:   10 * time.Second,
}
