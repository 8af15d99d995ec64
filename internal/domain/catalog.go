package domain

import "strconv"

// Tone is the display colour family used for badges.
type Tone string

const (
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	TonePurple Tone = "purple"
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneGray   Tone = "gray"
)

// Priority enumerates request urgency.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

var priorityTones = map[Priority]Tone{
	PriorityHigh:   ToneRed,
	PriorityMedium: ToneYellow,
	PriorityLow:    ToneGreen,
}

// Priorities lists priorities from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p belongs to the catalog.
func (p Priority) Valid() bool {
	_, ok := priorityTones[p]
	return ok
}

// Tone returns the display tone for p.
func (p Priority) Tone() Tone {
	if tone, ok := priorityTones[p]; ok {
		return tone
	}
	return ToneGray
}

// Level is the 1-3 complexity tier of a request.
type Level int

const (
	LevelSimple      Level = 1 // simple tasks and training
	LevelSupport     Level = 2 // support and fixes
	LevelDevelopment Level = 3 // development and automation
)

// Levels lists every level.
var Levels = []Level{LevelSimple, LevelSupport, LevelDevelopment}

// Valid reports whether l is within 1-3.
func (l Level) Valid() bool {
	return l >= LevelSimple && l <= LevelDevelopment
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// RequestType classifies the work requested.
type RequestType string

const (
	TypeSupport     RequestType = "Soporte"
	TypeImprovement RequestType = "Mejora"
	TypeDevelopment RequestType = "Desarrollo"
	TypeTraining    RequestType = "Capacitación"
)

// RequestTypes lists every request type.
var RequestTypes = []RequestType{TypeSupport, TypeImprovement, TypeDevelopment, TypeTraining}

// Channel is where a request came in.
type Channel string

const (
	ChannelSystem       Channel = "Sistema"
	ChannelGoogleSheets Channel = "Google Sheets"
	ChannelEmail        Channel = "Correo Electrónico"
	ChannelWhatsApp     Channel = "WhatsApp"
)

// Channels lists every intake channel.
var Channels = []Channel{ChannelSystem, ChannelGoogleSheets, ChannelEmail, ChannelWhatsApp}

// SortKey is a list ordering; a leading "-" means descending.
type SortKey string

const DefaultSort SortKey = "-created_at"

// SortKeys lists every supported ordering.
var SortKeys = []SortKey{
	"-created_at", "created_at",
	"-requested_at", "requested_at",
	"status", "-status",
	"department", "-department",
	"priority", "-priority",
	"level", "-level",
}

// Departments lists the organisational units a request can belong to.
var Departments = []string{
	"Administración",
	"Contabilidad y Finanzas",
	"Comercial",
	"Inventario",
	"Informática",
	"Facturación",
	"Expedición",
	"Calidad",
	"Transporte y Distribución",
	"Mantenimiento",
	"Punto de Venta",
	"Almacén",
	"Picker and Packer",
	"Estibadores",
}
